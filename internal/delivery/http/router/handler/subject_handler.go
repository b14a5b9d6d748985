package handler

import (
	"net/http"

	"notaspro/internal/delivery/http/response"
	"notaspro/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SubjectHandler holds dependencies for subject handlers.
type SubjectHandler struct {
	uc usecase.SubjectUsecase
}

// NewSubjectHandler is the constructor for SubjectHandler, injected by Fx.
func NewSubjectHandler(uc usecase.SubjectUsecase) *SubjectHandler {
	return &SubjectHandler{uc: uc}
}

type createSubjectRequest struct {
	Name          string `json:"name" validate:"required"`
	Description   string `json:"description"`
	AcademicGrade string `json:"academic_grade"`
}

type updateSubjectRequest struct {
	Name          *string `json:"name"`
	Description   *string `json:"description"`
	AcademicGrade *string `json:"academic_grade"`
}

// Create registers a subject.
func (h *SubjectHandler) Create(c echo.Context) error {
	var req createSubjectRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid subject input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	subject, err := h.uc.Create(c.Request().Context(), &usecase.CreateSubjectInput{
		Name:          req.Name,
		Description:   req.Description,
		AcademicGrade: req.AcademicGrade,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, subject, "Subject created")
}

// Get returns one subject by ID.
func (h *SubjectHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	subject, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, subject, "")
}

// List returns subjects with offset/limit pagination.
func (h *SubjectHandler) List(c echo.Context) error {
	input, err := listInput(c)
	if err != nil {
		return err
	}

	subjects, err := h.uc.List(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, subjects, "")
}

// Update applies a partial update to a subject.
func (h *SubjectHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateSubjectRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid subject input")
	}

	subject, err := h.uc.Update(c.Request().Context(), id, &usecase.UpdateSubjectInput{
		Name:          req.Name,
		Description:   req.Description,
		AcademicGrade: req.AcademicGrade,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, subject, "Subject updated")
}

// Delete removes a subject.
func (h *SubjectHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Subject deleted")
}
