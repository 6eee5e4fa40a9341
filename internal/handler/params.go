package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"mattervault/internal/config"
	"mattervault/internal/query"
	"mattervault/internal/service"
)

// parseListOptions reads the shared listing parameters from the query
// string. Missing or malformed page numbers fall back to defaults; the
// engine still rejects explicit zero or negative values. A pageSize above
// the configured maximum is capped silently, never rejected.
func parseListOptions(c *gin.Context, api *config.APIConfig) service.ListOptions {
	opts := service.ListOptions{
		OrderBy:    c.Query("orderBy"),
		Fields:     c.Query("fields"),
		PageNumber: 1,
		PageSize:   api.DefaultPageSize,
	}

	if raw := c.Query("pageNumber"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			opts.PageNumber = n
		}
	}
	if raw := c.Query("pageSize"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			opts.PageSize = n
		}
	}
	if opts.PageSize > api.MaxPageSize {
		opts.PageSize = api.MaxPageSize
	}
	return opts
}

// pageLinks builds the navigation URLs for a result page by rewriting the
// pageNumber parameter of the request's own URL.
func pageLinks(c *gin.Context, page *query.Page[query.ShapedRecord]) PagLinks {
	links := PagLinks{Current: pageURL(c, page.CurrentPage)}
	if page.HasNext() {
		links.NextPage = pageURL(c, page.CurrentPage+1)
	}
	if page.HasPrevious() {
		links.PreviousPage = pageURL(c, page.CurrentPage-1)
	}
	return links
}

func pageURL(c *gin.Context, pageNumber int) string {
	u := *c.Request.URL
	q := u.Query()
	q.Set("pageNumber", strconv.Itoa(pageNumber))
	u.RawQuery = q.Encode()
	return u.String()
}
