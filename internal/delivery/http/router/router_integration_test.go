package router

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"notaspro/config"
	custommiddleware "notaspro/internal/delivery/http/middleware"
	"notaspro/internal/delivery/http/router/handler"
	"notaspro/internal/delivery/http/validator"
	"notaspro/internal/domain/entity"
	"notaspro/internal/infra/auth"
	"notaspro/internal/infra/persistence/memory"
	"notaspro/internal/usecase"
	"notaspro/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testApp struct {
	echo  *echo.Echo
	store *memory.Store
}

// newTestApp wires the full HTTP surface over the in-memory store, the real
// bcrypt hasher, and real JWT signing.
func newTestApp(t *testing.T) *testApp {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := memory.NewStore()
	hasher := auth.NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: 4}})
	tokenSvc, err := auth.NewJWTServiceWithTTL("integration-secret", time.Minute)
	require.NoError(t, err)

	authUC := impl.NewAuthService(impl.AuthServiceParams{
		TxManager:    store.TxManager(),
		UserRepo:     store.Users(),
		Hasher:       hasher,
		TokenService: tokenSvc,
		Logger:       logger,
	})
	userUC := impl.NewUserService(impl.UserServiceParams{
		UserRepo: store.Users(),
		RoleRepo: store.Roles(),
		Hasher:   hasher,
		Logger:   logger,
	})
	studentUC := impl.NewStudentService(impl.StudentServiceParams{
		StudentRepo:  store.Students(),
		GuardianRepo: store.Guardians(),
		Logger:       logger,
	})
	teacherUC := impl.NewTeacherService(impl.TeacherServiceParams{
		TeacherRepo: store.Teachers(),
		Logger:      logger,
	})
	guardianUC := impl.NewGuardianService(impl.GuardianServiceParams{
		GuardianRepo: store.Guardians(),
		Logger:       logger,
	})
	subjectUC := impl.NewSubjectService(impl.SubjectServiceParams{
		SubjectRepo: store.Subjects(),
		Logger:      logger,
	})
	gradeUC := impl.NewGradeService(impl.GradeServiceParams{
		GradeRepo:   store.Grades(),
		StudentRepo: store.Students(),
		SubjectRepo: store.Subjects(),
		Logger:      logger,
	})
	seeder := impl.NewRoleSeeder(impl.RoleSeederParams{RoleRepo: store.Roles(), Logger: logger})
	require.NoError(t, seeder.EnsureDefaultRoles(context.Background()))

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = custommiddleware.NewErrorMiddleware(logger).HandleHTTPError

	NewRouter(RouterParams{
		AuthHandler:     handler.NewAuthHandler(authUC),
		UserHandler:     handler.NewUserHandler(userUC),
		StudentHandler:  handler.NewStudentHandler(studentUC),
		TeacherHandler:  handler.NewTeacherHandler(teacherUC),
		GuardianHandler: handler.NewGuardianHandler(guardianUC),
		SubjectHandler:  handler.NewSubjectHandler(subjectUC),
		GradeHandler:    handler.NewGradeHandler(gradeUC),
		AuthMiddleware:  custommiddleware.NewAuthMiddleware(authUC),
	}).RegisterRoutes(e)

	app := &testApp{echo: e, store: store}
	app.seedCredential(t, userUC, "profe", entity.RoleTeacher)
	app.seedCredential(t, userUC, "carlos", entity.RoleStudent)
	app.seedCredential(t, userUC, "rectora", entity.RoleAdministrator)

	return app
}

func (app *testApp) seedCredential(t *testing.T, userUC usecase.UserUsecase, username string, role entity.RoleName) {
	t.Helper()
	_, err := userUC.Create(context.Background(), &usecase.CreateUserInput{
		Username: username,
		Password: username + "-pw",
		Role:     role,
		IsActive: true,
	})
	require.NoError(t, err)
}

func (app *testApp) request(method, path, token string, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.echo.ServeHTTP(rec, req)

	return rec
}

// login runs the form-encoded password flow and returns the access token.
func (app *testApp) login(t *testing.T, username, password string) string {
	t.Helper()
	form := url.Values{"username": {username}, "password": {password}}
	req := httptest.NewRequest(http.MethodPost, "/token", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	app.echo.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var payload struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
		ExpiresIn   int64  `json:"expires_in"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	require.Equal(t, "bearer", payload.TokenType)
	require.Positive(t, payload.ExpiresIn)
	require.NotEmpty(t, payload.AccessToken)

	return payload.AccessToken
}

func TestHealthEndpoint(t *testing.T) {
	app := newTestApp(t)

	rec := app.request(http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTokenFlow_BadPassword(t *testing.T) {
	app := newTestApp(t)

	form := url.Values{"username": {"profe"}, "password": {"wrong"}}
	req := httptest.NewRequest(http.MethodPost, "/token", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	app.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))
}

func TestGradeCreation_RoleGates(t *testing.T) {
	app := newTestApp(t)
	adminToken := app.login(t, "rectora", "rectora-pw")

	rec := app.request(http.MethodPost, "/students", adminToken,
		`{"name":"Carlos","academic_grade":"5","user_id":2}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	teacherToken := app.login(t, "profe", "profe-pw")
	rec = app.request(http.MethodPost, "/subjects", teacherToken,
		`{"name":"Matemáticas","academic_grade":"5"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	// A teacher may record grades.
	rec = app.request(http.MethodPost, "/grades", teacherToken,
		`{"student_id":1,"subject_id":1,"score":4.5}`)
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	// A student may not.
	studentToken := app.login(t, "carlos", "carlos-pw")
	rec = app.request(http.MethodPost, "/grades", studentToken,
		`{"student_id":1,"subject_id":1,"score":5.0}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// But any authenticated user may read them.
	rec = app.request(http.MethodGet, "/grades/student/1", studentToken, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProtectedRoutes_RequireToken(t *testing.T) {
	app := newTestApp(t)

	rec := app.request(http.MethodGet, "/grades", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))

	rec = app.request(http.MethodGet, "/grades", "garbage-token", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUserCRUD_AdminGate(t *testing.T) {
	app := newTestApp(t)
	teacherToken := app.login(t, "profe", "profe-pw")

	rec := app.request(http.MethodPost, "/users", teacherToken,
		`{"username":"nuevo","password":"pw","role":"estudiante"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	adminToken := app.login(t, "rectora", "rectora-pw")
	rec = app.request(http.MethodPost, "/users", adminToken,
		`{"username":"nuevo","password":"pw","role":"estudiante"}`)
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	// The password hash never leaves the service.
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestBootstrapAdmin_SingleUse(t *testing.T) {
	app := newTestApp(t)

	rec := app.request(http.MethodPost, "/bootstrap/admin", "",
		`{"username":"root","password":"first-admin"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = app.request(http.MethodPost, "/bootstrap/admin", "",
		`{"username":"root2","password":"second-admin"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// The first admin can log in and use admin-gated routes.
	rootToken := app.login(t, "root", "first-admin")
	rec = app.request(http.MethodPost, "/users", rootToken,
		`{"username":"otra","password":"pw","role":"acudiente"}`)
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestRevokedCredential_TokenStopsWorking(t *testing.T) {
	app := newTestApp(t)
	adminToken := app.login(t, "rectora", "rectora-pw")
	teacherToken := app.login(t, "profe", "profe-pw")

	// Deactivate the teacher; the outstanding token must fail on next use.
	rec := app.request(http.MethodPut, "/users/1", adminToken, `{"is_active":false}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = app.request(http.MethodGet, "/grades", teacherToken, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
