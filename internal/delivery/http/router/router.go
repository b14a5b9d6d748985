// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"notaspro/internal/delivery/http/middleware"
	"notaspro/internal/delivery/http/router/handler"
	"notaspro/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers and middleware injected by Fx.
type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	UserHandler     *handler.UserHandler
	StudentHandler  *handler.StudentHandler
	TeacherHandler  *handler.TeacherHandler
	GuardianHandler *handler.GuardianHandler
	SubjectHandler  *handler.SubjectHandler
	GradeHandler    *handler.GradeHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
//
// Public: health, the password token flow, and the bootstrap escape hatch.
// The bootstrap route stays registered forever; the store decides whether
// it still works. Everything else requires a bearer token; writes are
// additionally gated by role.
func (r *router) RegisterRoutes(e *echo.Echo) {
	auth := r.params.AuthMiddleware
	adminOnly := auth.RequireRole(entity.AdminRoles())
	gradingOnly := auth.RequireRole(entity.GradingRoles())

	e.GET("/health", handler.HealthCheck)
	e.POST("/token", r.params.AuthHandler.Token)
	e.POST("/bootstrap/admin", r.params.AuthHandler.BootstrapAdmin)

	userGroup := e.Group("/users", auth.Authenticate)
	{
		userGroup.GET("", r.params.UserHandler.List)
		userGroup.GET("/:id", r.params.UserHandler.Get)
		userGroup.POST("", r.params.UserHandler.Create, adminOnly)
		userGroup.PUT("/:id", r.params.UserHandler.Update, adminOnly)
		userGroup.DELETE("/:id", r.params.UserHandler.Delete, adminOnly)
	}

	studentGroup := e.Group("/students", auth.Authenticate)
	{
		studentGroup.GET("", r.params.StudentHandler.List)
		studentGroup.GET("/:id", r.params.StudentHandler.Get)
		studentGroup.POST("", r.params.StudentHandler.Create, adminOnly)
		studentGroup.PUT("/:id", r.params.StudentHandler.Update, adminOnly)
		studentGroup.DELETE("/:id", r.params.StudentHandler.Delete, adminOnly)
	}

	teacherGroup := e.Group("/teachers", auth.Authenticate)
	{
		teacherGroup.GET("", r.params.TeacherHandler.List)
		teacherGroup.GET("/:id", r.params.TeacherHandler.Get)
		teacherGroup.POST("", r.params.TeacherHandler.Create, adminOnly)
		teacherGroup.PUT("/:id", r.params.TeacherHandler.Update, adminOnly)
		teacherGroup.DELETE("/:id", r.params.TeacherHandler.Delete, adminOnly)
	}

	guardianGroup := e.Group("/guardians", auth.Authenticate)
	{
		guardianGroup.GET("", r.params.GuardianHandler.List)
		guardianGroup.GET("/:id", r.params.GuardianHandler.Get)
		guardianGroup.POST("", r.params.GuardianHandler.Create, adminOnly)
		guardianGroup.PUT("/:id", r.params.GuardianHandler.Update, adminOnly)
		guardianGroup.DELETE("/:id", r.params.GuardianHandler.Delete, adminOnly)
	}

	subjectGroup := e.Group("/subjects", auth.Authenticate)
	{
		subjectGroup.GET("", r.params.SubjectHandler.List)
		subjectGroup.GET("/:id", r.params.SubjectHandler.Get)
		subjectGroup.POST("", r.params.SubjectHandler.Create, gradingOnly)
		subjectGroup.PUT("/:id", r.params.SubjectHandler.Update, gradingOnly)
		subjectGroup.DELETE("/:id", r.params.SubjectHandler.Delete, gradingOnly)
	}

	gradeGroup := e.Group("/grades", auth.Authenticate)
	{
		gradeGroup.GET("", r.params.GradeHandler.List)
		gradeGroup.GET("/:id", r.params.GradeHandler.Get)
		gradeGroup.GET("/student/:id", r.params.GradeHandler.ListByStudent)
		gradeGroup.POST("", r.params.GradeHandler.Create, gradingOnly)
		gradeGroup.PUT("/:id", r.params.GradeHandler.Update, gradingOnly)
		gradeGroup.DELETE("/:id", r.params.GradeHandler.Delete, gradingOnly)
	}
}
