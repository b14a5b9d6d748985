// Package handler contains the HTTP handlers for the application.
package handler

import (
	"strconv"

	domainerrors "notaspro/internal/domain/errors"
	"notaspro/internal/usecase"

	"github.com/labstack/echo/v4"
)

const defaultListLimit = 100

// pathID parses the :id path parameter as an unsigned integer.
func pathID(c echo.Context) (uint, error) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, domainerrors.ErrValidationFailed.WithDetails("id must be a positive integer")
	}

	return uint(id), nil
}

// listInput parses offset/limit query parameters with defaults.
func listInput(c echo.Context) (*usecase.ListInput, error) {
	input := &usecase.ListInput{Offset: 0, Limit: defaultListLimit}

	if raw := c.QueryParam("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("offset must be a non-negative integer")
		}
		input.Offset = offset
	}
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("limit must be a non-negative integer")
		}
		input.Limit = limit
	}

	return input, nil
}
