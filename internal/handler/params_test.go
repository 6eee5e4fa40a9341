package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"mattervault/internal/config"
	"mattervault/internal/query"
)

func testContext(t *testing.T, url string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, url, nil)
	return c
}

func TestParseListOptions_Defaults(t *testing.T) {
	api := &config.APIConfig{DefaultPageSize: 10, MaxPageSize: 50}
	c := testContext(t, "/api/v1/matters")

	opts := parseListOptions(c, api)

	assert.Equal(t, 1, opts.PageNumber)
	assert.Equal(t, 10, opts.PageSize)
	assert.Empty(t, opts.OrderBy)
	assert.Empty(t, opts.Fields)
}

func TestParseListOptions_ClampsPageSize(t *testing.T) {
	api := &config.APIConfig{DefaultPageSize: 10, MaxPageSize: 50}
	c := testContext(t, "/api/v1/matters?pageSize=500&pageNumber=2")

	opts := parseListOptions(c, api)

	assert.Equal(t, 2, opts.PageNumber)
	assert.Equal(t, 50, opts.PageSize)
}

func TestParseListOptions_PassesNonPositiveThrough(t *testing.T) {
	// Zero and negative values reach the engine unchanged so the request
	// fails with a named parameter error instead of being silently fixed.
	api := &config.APIConfig{DefaultPageSize: 10, MaxPageSize: 50}
	c := testContext(t, "/api/v1/matters?pageNumber=0&pageSize=-5")

	opts := parseListOptions(c, api)

	assert.Equal(t, 0, opts.PageNumber)
	assert.Equal(t, -5, opts.PageSize)
}

func TestParseListOptions_CarriesOrderByAndFields(t *testing.T) {
	api := &config.APIConfig{DefaultPageSize: 10, MaxPageSize: 50}
	c := testContext(t, "/api/v1/users?orderBy=name%20desc,age&fields=id,name")

	opts := parseListOptions(c, api)

	assert.Equal(t, "name desc,age", opts.OrderBy)
	assert.Equal(t, "id,name", opts.Fields)
}

func TestPageLinks(t *testing.T) {
	c := testContext(t, "/api/v1/matters?pageNumber=2&pageSize=10&orderBy=name")

	page := &query.Page[query.ShapedRecord]{CurrentPage: 2, PageSize: 10, TotalCount: 35, TotalPages: 4}
	links := pageLinks(c, page)

	assert.Contains(t, links.Current, "pageNumber=2")
	assert.Contains(t, links.NextPage, "pageNumber=3")
	assert.Contains(t, links.PreviousPage, "pageNumber=1")
	assert.Contains(t, links.NextPage, "orderBy=name")
}

func TestPageLinks_FirstAndLastPage(t *testing.T) {
	c := testContext(t, "/api/v1/matters")

	first := pageLinks(c, &query.Page[query.ShapedRecord]{CurrentPage: 1, PageSize: 10, TotalCount: 15, TotalPages: 2})
	assert.Empty(t, first.PreviousPage)
	assert.NotEmpty(t, first.NextPage)

	last := pageLinks(c, &query.Page[query.ShapedRecord]{CurrentPage: 2, PageSize: 10, TotalCount: 15, TotalPages: 2})
	assert.NotEmpty(t, last.PreviousPage)
	assert.Empty(t, last.NextPage)
}
