package handler

import (
	"net/http"

	"notaspro/internal/delivery/http/response"
	"notaspro/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// GuardianHandler holds dependencies for guardian profile handlers.
type GuardianHandler struct {
	uc usecase.GuardianUsecase
}

// NewGuardianHandler is the constructor for GuardianHandler, injected by Fx.
func NewGuardianHandler(uc usecase.GuardianUsecase) *GuardianHandler {
	return &GuardianHandler{uc: uc}
}

// Create registers a guardian profile.
func (h *GuardianHandler) Create(c echo.Context) error {
	var req createProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid guardian input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	guardian, err := h.uc.Create(c.Request().Context(), &usecase.CreateProfileInput{
		Name:   req.Name,
		UserID: req.UserID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, guardian, "Guardian created")
}

// Get returns one guardian by ID.
func (h *GuardianHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	guardian, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, guardian, "")
}

// List returns guardians with offset/limit pagination.
func (h *GuardianHandler) List(c echo.Context) error {
	input, err := listInput(c)
	if err != nil {
		return err
	}

	guardians, err := h.uc.List(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, guardians, "")
}

// Update applies a partial update to a guardian profile.
func (h *GuardianHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid guardian input")
	}

	guardian, err := h.uc.Update(c.Request().Context(), id, &usecase.UpdateProfileInput{Name: req.Name})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, guardian, "Guardian updated")
}

// Delete removes a guardian profile.
func (h *GuardianHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Guardian deleted")
}
