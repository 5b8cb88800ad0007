package store

import (
	"github.com/jinzhu/gorm"
	log "github.com/sirupsen/logrus"

	"github.com/openwellness/burnout-api/schema"
)

// CreateDepartment registers a department and its expected headcount.
func (s *BurnoutStore) CreateDepartment(name string, expectedHeadcount int) (*schema.Department, error) {
	d := schema.Department{
		Name:              name,
		ExpectedHeadcount: expectedHeadcount,
	}

	if err := s.ormDB.Create(&d).Error; err != nil {
		return nil, err
	}

	return &d, nil
}

// ListDepartments returns every registered department.
func (s *BurnoutStore) ListDepartments() ([]schema.Department, error) {
	var departments []schema.Department
	if err := s.ormDB.Order("name").Find(&departments).Error; err != nil {
		return nil, err
	}
	return departments, nil
}

// SetDepartmentHeadcount updates the expected headcount of a
// registered department.
func (s *BurnoutStore) SetDepartmentHeadcount(name string, headcount int) error {
	return s.ormDB.Model(schema.Department{}).
		Where("name = ?", name).
		Update("expected_headcount", headcount).Error
}

// DepartmentHeadcount reports the expected headcount used for the
// participation rate of the daily rollup. Unregistered departments
// report no headcount, which makes the aggregation fall back to its
// placeholder rate.
func (s *BurnoutStore) DepartmentHeadcount(department string) (int, bool) {
	var d schema.Department
	if err := s.ormDB.Where("name = ?", department).First(&d).Error; err != nil {
		if !gorm.IsRecordNotFoundError(err) {
			log.WithField("prefix", "postgres").WithError(err).Error("query department headcount")
		}
		return 0, false
	}
	return d.ExpectedHeadcount, true
}
