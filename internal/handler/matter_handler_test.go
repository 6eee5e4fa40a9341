package handler_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mattervault/internal/config"
	"mattervault/internal/domain"
	"mattervault/internal/handler"
	"mattervault/internal/query"
	"mattervault/internal/service"
	"mattervault/mocks"
)

func setupMatterRouter(svc service.MatterService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	api := &config.APIConfig{DefaultPageSize: 10, MaxPageSize: 50}
	h := handler.NewMatterHandler(svc, api)

	r := gin.New()
	r.GET("/api/v1/matters", h.List)
	r.GET("/api/v1/matters/:id", h.GetByID)
	return r
}

func TestMatterList_EnvelopeAndLinks(t *testing.T) {
	svc := new(mocks.MockMatterService)

	records, err := shapeTestMatters(2)
	require.NoError(t, err)
	svc.On("List", mock.Anything, mock.MatchedBy(func(opts service.ListOptions) bool {
		return opts.PageNumber == 2 && opts.PageSize == 10
	})).Return(&query.Page[query.ShapedRecord]{
		Items:       records,
		CurrentPage: 2,
		PageSize:    10,
		TotalCount:  35,
		TotalPages:  4,
	}, nil)

	r := setupMatterRouter(svc)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/matters?pageNumber=2", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool              `json:"success"`
		Data    []json.RawMessage `json:"data"`
		Meta    *handler.PagMeta  `json:"meta"`
		Links   *handler.PagLinks `json:"links"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Len(t, resp.Data, 2)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, 2, resp.Meta.CurrentPage)
	assert.Equal(t, 4, resp.Meta.TotalPages)
	assert.True(t, resp.Meta.HasPrevious)
	assert.True(t, resp.Meta.HasNext)
	require.NotNil(t, resp.Links)
	assert.Contains(t, resp.Links.NextPage, "pageNumber=3")
	assert.Contains(t, resp.Links.PreviousPage, "pageNumber=1")
}

func TestMatterList_UnknownSortFieldNamesOffender(t *testing.T) {
	svc := new(mocks.MockMatterService)
	svc.On("List", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: priority", query.ErrUnknownSortField))

	r := setupMatterRouter(svc)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/matters?orderBy=priority", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "UNKNOWN_SORT_FIELD")
	assert.Contains(t, w.Body.String(), "priority")
}

func TestMatterGetByID_NotFound(t *testing.T) {
	svc := new(mocks.MockMatterService)
	matterID := uuid.New()
	svc.On("GetByID", mock.Anything, matterID).Return(nil, domain.ErrMatterNotFound)

	r := setupMatterRouter(svc)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/matters/"+matterID.String(), nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "MATTER_NOT_FOUND")
}

func TestMatterGetByID_InvalidID(t *testing.T) {
	svc := new(mocks.MockMatterService)

	r := setupMatterRouter(svc)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/matters/not-a-uuid", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_ID")
	svc.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

// shapeTestMatters builds shaped records through the real shaping path so
// the handler test serializes what production serializes.
func shapeTestMatters(n int) ([]query.ShapedRecord, error) {
	shaper := query.NewShaper[domain.Matter](
		query.FieldAccessor[domain.Matter]{Name: "id", Get: func(m domain.Matter) any { return m.ID }},
		query.FieldAccessor[domain.Matter]{Name: "name", Get: func(m domain.Matter) any { return m.Name }},
	)
	matters := make([]domain.Matter, n)
	for i := range matters {
		matters[i] = domain.Matter{ID: uuid.New(), Name: "matter"}
	}
	return shaper.Shape(matters, "")
}
