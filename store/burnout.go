package store

import (
	"github.com/jinzhu/gorm"

	"github.com/openwellness/burnout-api/schema"
)

// burnout main datastore
type BurnoutCore interface {
	Ping() error

	// Department registry
	CreateDepartment(name string, expectedHeadcount int) (*schema.Department, error)
	ListDepartments() ([]schema.Department, error)
	SetDepartmentHeadcount(name string, headcount int) error

	HeadcountProvider
}

// BurnoutStore is an implementation of BurnoutCore
type BurnoutStore struct {
	ormDB *gorm.DB
}

func NewBurnoutStore(ormDB *gorm.DB) *BurnoutStore {
	return &BurnoutStore{
		ormDB: ormDB,
	}
}

// Ping is to check the storage health status
func (s *BurnoutStore) Ping() error {
	return s.ormDB.DB().Ping()
}
