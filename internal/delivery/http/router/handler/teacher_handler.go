package handler

import (
	"net/http"

	"notaspro/internal/delivery/http/response"
	"notaspro/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TeacherHandler holds dependencies for teacher profile handlers.
type TeacherHandler struct {
	uc usecase.TeacherUsecase
}

// NewTeacherHandler is the constructor for TeacherHandler, injected by Fx.
func NewTeacherHandler(uc usecase.TeacherUsecase) *TeacherHandler {
	return &TeacherHandler{uc: uc}
}

type createProfileRequest struct {
	Name   string `json:"name" validate:"required"`
	UserID uint   `json:"user_id" validate:"required"`
}

type updateProfileRequest struct {
	Name *string `json:"name"`
}

// Create registers a teacher profile.
func (h *TeacherHandler) Create(c echo.Context) error {
	var req createProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid teacher input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	teacher, err := h.uc.Create(c.Request().Context(), &usecase.CreateProfileInput{
		Name:   req.Name,
		UserID: req.UserID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, teacher, "Teacher created")
}

// Get returns one teacher by ID.
func (h *TeacherHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	teacher, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, teacher, "")
}

// List returns teachers with offset/limit pagination.
func (h *TeacherHandler) List(c echo.Context) error {
	input, err := listInput(c)
	if err != nil {
		return err
	}

	teachers, err := h.uc.List(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, teachers, "")
}

// Update applies a partial update to a teacher profile.
func (h *TeacherHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid teacher input")
	}

	teacher, err := h.uc.Update(c.Request().Context(), id, &usecase.UpdateProfileInput{Name: req.Name})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, teacher, "Teacher updated")
}

// Delete removes a teacher profile.
func (h *TeacherHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Teacher deleted")
}
