// Package response renders the result envelope shared by every JSON
// endpoint.
package response

import (
	"net/http"

	"conectone/internal/domain/repository"

	"github.com/labstack/echo/v4"
)

// Result is the unified API response envelope.
type Result struct {
	Succeeded bool     `json:"succeeded"`
	Messages  []string `json:"messages"`
	Data      any      `json:"data,omitempty"`
}

// PagedResult extends Result with paging metadata for list endpoints.
type PagedResult struct {
	Succeeded   bool     `json:"succeeded"`
	Messages    []string `json:"messages"`
	Data        any      `json:"data"`
	TotalCount  int64    `json:"totalCount"`
	CurrentPage int      `json:"currentPage"`
	PageSize    int      `json:"pageSize"`
	TotalPages  int      `json:"totalPages"`
}

// Success renders a successful envelope.
func Success(c echo.Context, statusCode int, data any, messages ...string) error {
	if messages == nil {
		messages = []string{}
	}

	return c.JSON(statusCode, Result{
		Succeeded: true,
		Messages:  messages,
		Data:      data,
	})
}

// Created renders a 201 envelope.
func Created(c echo.Context, data any, messages ...string) error {
	return Success(c, http.StatusCreated, data, messages...)
}

// OK renders a 200 envelope.
func OK(c echo.Context, data any, messages ...string) error {
	return Success(c, http.StatusOK, data, messages...)
}

// Paged renders a repository page with its paging metadata.
func Paged[T any](c echo.Context, page repository.Page[T]) error {
	items := page.Items
	if items == nil {
		items = []T{}
	}

	return c.JSON(http.StatusOK, PagedResult{
		Succeeded:   true,
		Messages:    []string{},
		Data:        items,
		TotalCount:  page.TotalCount,
		CurrentPage: page.CurrentPage,
		PageSize:    page.PageSize,
		TotalPages:  page.TotalPages(),
	})
}

// Failure renders an error envelope.
func Failure(c echo.Context, statusCode int, messages ...string) error {
	if messages == nil {
		messages = []string{http.StatusText(statusCode)}
	}

	return c.JSON(statusCode, Result{
		Succeeded: false,
		Messages:  messages,
	})
}

// BindingError renders a 400 envelope for malformed request payloads.
func BindingError(c echo.Context, message string) error {
	return Failure(c, http.StatusBadRequest, message)
}
