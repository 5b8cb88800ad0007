package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openwellness/burnout-api/store"
)

type aggregateQueryParams struct {
	Start       string   `form:"start"`
	End         string   `form:"end"`
	Departments []string `form:"department"`
}

func rangeErrorResponse(err error) (int, ErrorResponse) {
	switch err {
	case store.ErrInvalidDate:
		return http.StatusBadRequest, errorInvalidDate
	case store.ErrInvalidDateRange:
		return http.StatusBadRequest, errorInvalidDateRange
	default:
		return http.StatusInternalServerError, errorAggregateQuery
	}
}

// departmentAggregates serves dashboard range queries over the
// per-department rollup, ordered by (date, department).
func (s *Server) departmentAggregates(c *gin.Context) {
	var params aggregateQueryParams
	if err := c.Bind(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	rows, err := s.mongoStore.ListDepartmentAggregates(params.Start, params.End, params.Departments)
	if err != nil {
		status, resp := rangeErrorResponse(err)
		abortWithEncoding(c, status, resp, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"aggregates": rows})
}

// organizationAggregates serves dashboard range queries over the
// org-wide rollup, ordered by date.
func (s *Server) organizationAggregates(c *gin.Context) {
	var params aggregateQueryParams
	if err := c.Bind(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	rows, err := s.mongoStore.ListOrganizationAggregates(params.Start, params.End)
	if err != nil {
		status, resp := rangeErrorResponse(err)
		abortWithEncoding(c, status, resp, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"aggregates": rows})
}

func (s *Server) listDepartments(c *gin.Context) {
	departments, err := s.store.ListDepartments()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"departments": departments})
}
