package schema

import (
	"time"
)

// Department is the registry entry for a department, kept in postgres.
// ExpectedHeadcount feeds the participation rate of the daily rollup;
// a department that has not reported a headcount yet falls back to a
// configured default fraction.
type Department struct {
	Name              string    `json:"name" gorm:"primary_key"`
	ExpectedHeadcount int       `json:"expected_headcount"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
