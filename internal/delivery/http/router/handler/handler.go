// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"strconv"

	"conectone/internal/delivery/http/response"
	"conectone/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.OK(c, map[string]string{"status": "ok"})
}

// pathUUID parses a UUID path parameter.
func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}

	return id, nil
}

// pageQuery reads paging parameters from the query string. Zero values are
// normalized by the repository layer.
func pageQuery(c echo.Context) usecase.PageQuery {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	pageSize, _ := strconv.Atoi(c.QueryParam("pageSize"))

	return usecase.PageQuery{
		Page:     page,
		PageSize: pageSize,
		Search:   c.QueryParam("search"),
	}
}
