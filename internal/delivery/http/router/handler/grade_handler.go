package handler

import (
	"net/http"
	"time"

	"notaspro/internal/delivery/http/response"
	domainerrors "notaspro/internal/domain/errors"
	"notaspro/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// assignedAtLayout is the date-only wire format for grade assignment dates.
const assignedAtLayout = "2006-01-02"

// GradeHandler holds dependencies for grade handlers.
type GradeHandler struct {
	uc usecase.GradeUsecase
}

// NewGradeHandler is the constructor for GradeHandler, injected by Fx.
func NewGradeHandler(uc usecase.GradeUsecase) *GradeHandler {
	return &GradeHandler{uc: uc}
}

type createGradeRequest struct {
	StudentID  uint     `json:"student_id" validate:"required"`
	SubjectID  uint     `json:"subject_id" validate:"required"`
	Score      *float64 `json:"score" validate:"required"`
	AssignedAt string   `json:"assigned_at"`
}

type updateGradeRequest struct {
	Score      *float64 `json:"score"`
	AssignedAt *string  `json:"assigned_at"`
}

// parseAssignedAt accepts a date-only value or a full RFC 3339 timestamp.
func parseAssignedAt(raw string) (time.Time, error) {
	if t, err := time.Parse(assignedAtLayout, raw); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}

	return time.Time{}, domainerrors.ErrValidationFailed.WithDetails("assigned_at must be YYYY-MM-DD or RFC 3339")
}

// Create records a grade. assigned_at defaults to today when omitted.
func (h *GradeHandler) Create(c echo.Context) error {
	var req createGradeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid grade input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input := &usecase.CreateGradeInput{
		StudentID: req.StudentID,
		SubjectID: req.SubjectID,
		Score:     *req.Score,
	}
	if req.AssignedAt != "" {
		assignedAt, err := parseAssignedAt(req.AssignedAt)
		if err != nil {
			return err
		}
		input.AssignedAt = assignedAt
	}

	grade, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, grade, "Grade recorded")
}

// Get returns one grade by ID.
func (h *GradeHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	grade, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, grade, "")
}

// List returns grades with offset/limit pagination.
func (h *GradeHandler) List(c echo.Context) error {
	input, err := listInput(c)
	if err != nil {
		return err
	}

	grades, err := h.uc.List(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, grades, "")
}

// ListByStudent returns every grade for one student.
func (h *GradeHandler) ListByStudent(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	grades, err := h.uc.ListByStudent(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, grades, "")
}

// Update applies a partial update to a grade.
func (h *GradeHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateGradeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid grade input")
	}

	input := &usecase.UpdateGradeInput{Score: req.Score}
	if req.AssignedAt != nil {
		assignedAt, err := parseAssignedAt(*req.AssignedAt)
		if err != nil {
			return err
		}
		input.AssignedAt = &assignedAt
	}

	grade, err := h.uc.Update(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, grade, "Grade updated")
}

// Delete removes a grade.
func (h *GradeHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Grade deleted")
}
