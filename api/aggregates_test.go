package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/openwellness/burnout-api/api/mocks"
	"github.com/openwellness/burnout-api/schema"
	"github.com/openwellness/burnout-api/store"
)

func TestDepartmentAggregates(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)

	s := Server{
		mongoStore: m,
	}

	m.EXPECT().ListDepartmentAggregates("2023-11-01", "2023-11-07", []string{"Engineering"}).Return([]schema.DepartmentAggregate{
		{
			Date:           "2023-11-06",
			Department:     "Engineering",
			AvgStress:      6.5,
			TotalCheckouts: 2,
			RiskLowCount:   1,
			RiskHighCount:  1,
			RiskLowPct:     0.5,
			RiskHighPct:    0.5,
		},
	}, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", s.departmentAggregates)

	req := httptest.NewRequest("GET", "/?start=2023-11-01&end=2023-11-07&department=Engineering", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp struct {
		Aggregates []schema.DepartmentAggregate `json:"aggregates"`
	}
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &jResp))
	assert.Len(t, jResp.Aggregates, 1)
	assert.Equal(t, 0.5, jResp.Aggregates[0].RiskHighPct)
}

func TestOrganizationAggregatesEmptyRange(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)

	s := Server{
		mongoStore: m,
	}

	m.EXPECT().ListOrganizationAggregates("2001-01-01", "2001-01-31").Return([]schema.OrganizationAggregate{}, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", s.organizationAggregates)

	req := httptest.NewRequest("GET", "/?start=2001-01-01&end=2001-01-31", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "an empty range is not an error")

	var jResp struct {
		Aggregates []schema.OrganizationAggregate `json:"aggregates"`
	}
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &jResp))
	assert.Empty(t, jResp.Aggregates)
}

func TestOrganizationAggregatesInvalidRange(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)

	s := Server{
		mongoStore: m,
	}

	m.EXPECT().ListOrganizationAggregates("2023-11-10", "2023-11-01").Return(nil, store.ErrInvalidDateRange).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", s.organizationAggregates)

	req := httptest.NewRequest("GET", "/?start=2023-11-10&end=2023-11-01", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")

	var jResp ErrorResponse
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &jResp))
	assert.Equal(t, int64(1013), jResp.Code)
}
