package handler

import (
	"net/http"

	"notaspro/internal/delivery/http/response"
	"notaspro/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// StudentHandler holds dependencies for student profile handlers.
type StudentHandler struct {
	uc usecase.StudentUsecase
}

// NewStudentHandler is the constructor for StudentHandler, injected by Fx.
func NewStudentHandler(uc usecase.StudentUsecase) *StudentHandler {
	return &StudentHandler{uc: uc}
}

type createStudentRequest struct {
	Name          string `json:"name" validate:"required"`
	AcademicGrade string `json:"academic_grade"`
	UserID        uint   `json:"user_id" validate:"required"`
	GuardianID    *uint  `json:"guardian_id"`
}

type updateStudentRequest struct {
	Name          *string `json:"name"`
	AcademicGrade *string `json:"academic_grade"`
	GuardianID    *uint   `json:"guardian_id"`
}

// Create registers a student profile.
func (h *StudentHandler) Create(c echo.Context) error {
	var req createStudentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid student input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	student, err := h.uc.Create(c.Request().Context(), &usecase.CreateStudentInput{
		Name:          req.Name,
		AcademicGrade: req.AcademicGrade,
		UserID:        req.UserID,
		GuardianID:    req.GuardianID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, student, "Student created")
}

// Get returns one student by ID.
func (h *StudentHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	student, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, student, "")
}

// List returns students with offset/limit pagination.
func (h *StudentHandler) List(c echo.Context) error {
	input, err := listInput(c)
	if err != nil {
		return err
	}

	students, err := h.uc.List(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, students, "")
}

// Update applies a partial update to a student profile.
func (h *StudentHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateStudentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid student input")
	}

	student, err := h.uc.Update(c.Request().Context(), id, &usecase.UpdateStudentInput{
		Name:          req.Name,
		AcademicGrade: req.AcademicGrade,
		GuardianID:    req.GuardianID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, student, "Student updated")
}

// Delete removes a student profile.
func (h *StudentHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Student deleted")
}
