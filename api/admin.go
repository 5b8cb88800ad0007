package api

import (
	"net/http"

	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/gin-gonic/gin"

	"github.com/openwellness/burnout-api/consts"
)

// adminRecomputeAggregates is an internal only api to re-run the daily
// rollup for a date, e.g. after a transient aggregation failure.
func (s *Server) adminRecomputeAggregates(c *gin.Context) {
	var params struct {
		Date string `json:"date"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if _, err := consts.ParseDate(params.Date); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidDate, err)
		return
	}

	if s.background == nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	if _, err := s.background.SendTask(&tasks.Signature{
		Name: "update_aggregates",
		Args: []tasks.Arg{
			{Type: "string", Value: params.Date},
		},
	}); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(200, gin.H{"result": "OK"})
}

// adminCreateDepartment registers a department and its expected
// headcount for participation tracking.
func (s *Server) adminCreateDepartment(c *gin.Context) {
	var params struct {
		Name              string `json:"name"`
		ExpectedHeadcount int    `json:"expected_headcount"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if params.Name == "" || params.ExpectedHeadcount < 0 {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	department, err := s.store.CreateDepartment(params.Name, params.ExpectedHeadcount)
	if err != nil {
		abortWithEncoding(c, http.StatusConflict, errorDepartmentTaken, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"department": department})
}

func (s *Server) adminSetHeadcount(c *gin.Context) {
	var params struct {
		ExpectedHeadcount int `json:"expected_headcount"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if params.ExpectedHeadcount < 0 {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	if err := s.store.SetDepartmentHeadcount(c.Param("name"), params.ExpectedHeadcount); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(200, gin.H{"result": "OK"})
}
