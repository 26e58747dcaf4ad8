package bootstrap

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/interconnect/backend/internal/app/repositories/memory"
	"github.com/interconnect/backend/internal/config"
	"github.com/interconnect/backend/internal/pkg/auth"
	"github.com/interconnect/backend/internal/seed"
)

func TestMain(m *testing.M) {
	auth.BcryptCost = bcrypt.MinCost
	os.Exit(m.Run())
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Server.Mode = "test"
	cfg.Server.RequestTimeout = "15s"
	cfg.Server.AllowedOrigins = []string{"http://localhost:3000"}
	cfg.Database.Driver = config.DriverMemory
	cfg.JWT.Secret = "integration-secret"
	cfg.JWT.AccessTokenExpiration = "1h"
	cfg.JWT.Issuer = "interconnect-test"
	cfg.RateLimit.RequestsPerSecond = 1000
	cfg.RateLimit.Burst = 1000
	cfg.Auth.AllowAdminRegistration = true
	cfg.Admin.Email = "admin@interconnect.dev"
	cfg.Admin.Password = "admin-pass"
	return cfg
}

type apiClient struct {
	t      *testing.T
	router *gin.Engine
}

func newAPI(t *testing.T) *apiClient {
	t.Helper()
	return newAPIWithConfig(t, testConfig())
}

func newAPIWithConfig(t *testing.T, cfg *config.Config) *apiClient {
	t.Helper()
	lgr := zerolog.Nop()

	repos := memory.NewRepositories()
	require.NoError(t, seed.CreateDefaultAdmin(context.Background(), repos.Users, seed.AdminAccount{
		Email:    cfg.Admin.Email,
		Password: cfg.Admin.Password,
	}, lgr))

	deps, err := BuildDependencies(cfg, nil, repos, lgr)
	require.NoError(t, err)
	gin.SetMode(gin.TestMode)
	router := SetupRouter(cfg, deps, lgr)
	gin.SetMode(gin.TestMode)
	return &apiClient{t: t, router: router}
}

// do sends a request and decodes a JSON response body into out when non-nil
func (a *apiClient) do(method, path, token string, body interface{}, out interface{}) int {
	a.t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(a.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	if out != nil {
		require.NoError(a.t, json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
	}
	return w.Code
}

type authBody struct {
	Token string `json:"token"`
	User  struct {
		ID   int64  `json:"id"`
		Role string `json:"role"`
	} `json:"user"`
}

type errorBody struct {
	Success bool `json:"success"`
	Error   struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (a *apiClient) register(name, email, role string) authBody {
	a.t.Helper()
	var resp authBody
	code := a.do(http.MethodPost, "/api/auth/register", "", map[string]string{
		"name": name, "email": email, "password": "secret123", "role": role,
	}, &resp)
	require.Equal(a.t, http.StatusCreated, code)
	require.NotEmpty(a.t, resp.Token)
	return resp
}

func (a *apiClient) login(email, password string) authBody {
	a.t.Helper()
	var resp authBody
	code := a.do(http.MethodPost, "/api/auth/login", "", map[string]string{"email": email, "password": password}, &resp)
	require.Equal(a.t, http.StatusOK, code)
	return resp
}

func TestMarketplaceFlow(t *testing.T) {
	api := newAPI(t)

	student := api.register("Ada Lovelace", "ada@example.com", "student")
	employer := api.register("Acme Corp", "hr@acme.io", "employer")
	rival := api.register("Globex", "hr@globex.io", "employer")
	admin := api.login("admin@interconnect.dev", "admin-pass")
	assert.Equal(t, "admin", admin.User.Role)

	// employer publishes a listing
	var created struct {
		Message    string `json:"message"`
		Internship struct {
			ID               int64  `json:"id"`
			Status           string `json:"status"`
			ApplicationCount int64  `json:"applicationCount"`
		} `json:"internship"`
	}
	code := api.do(http.MethodPost, "/api/employer/internships", employer.Token, map[string]interface{}{
		"title":        "Backend Intern",
		"company":      "Acme",
		"description":  "Build APIs in Go",
		"requirements": []string{"Go", "SQL"},
		"location":     "Remote",
		"stipend":      1500,
	}, &created)
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "Internship created successfully", created.Message)
	assert.Equal(t, "active", created.Internship.Status)
	listingID := created.Internship.ID

	// students cannot publish
	var denied errorBody
	code = api.do(http.MethodPost, "/api/employer/internships", student.Token, map[string]interface{}{
		"title": "x", "company": "y", "description": "z",
	}, &denied)
	assert.Equal(t, http.StatusForbidden, code)
	assert.False(t, denied.Success)

	// student browses and applies
	var listings []struct {
		ID       int64 `json:"id"`
		Employer struct {
			Name string `json:"name"`
		} `json:"employer"`
	}
	require.Equal(t, http.StatusOK, api.do(http.MethodGet, "/api/student/internships", student.Token, nil, &listings))
	require.Len(t, listings, 1)
	assert.Equal(t, "Acme Corp", listings[0].Employer.Name)

	var applied struct {
		Message     string `json:"message"`
		Application struct {
			ID     int64  `json:"id"`
			Status string `json:"status"`
		} `json:"application"`
	}
	code = api.do(http.MethodPost, "/api/student/applications", student.Token, map[string]interface{}{
		"internshipId": listingID, "coverLetter": "I love Go",
	}, &applied)
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "Application submitted successfully", applied.Message)
	assert.Equal(t, "pending", applied.Application.Status)

	var dup errorBody
	code = api.do(http.MethodPost, "/api/student/apply", student.Token, map[string]interface{}{"internshipId": listingID}, &dup)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "you have already applied for this internship", dup.Error.Message)

	var detail struct {
		ApplicationCount int64 `json:"applicationCount"`
	}
	require.Equal(t, http.StatusOK, api.do(http.MethodGet, fmt.Sprintf("/api/student/internships/%d", listingID), student.Token, nil, &detail))
	assert.Equal(t, int64(1), detail.ApplicationCount)

	// employer reviews
	var received []struct {
		ID      int64 `json:"id"`
		Student struct {
			Name string `json:"name"`
		} `json:"student"`
	}
	require.Equal(t, http.StatusOK, api.do(http.MethodGet, "/api/employer/applications", employer.Token, nil, &received))
	require.Len(t, received, 1)
	assert.Equal(t, "Ada Lovelace", received[0].Student.Name)

	statusPath := fmt.Sprintf("/api/employer/applications/%d/status", applied.Application.ID)
	assert.Equal(t, http.StatusForbidden, api.do(http.MethodPatch, statusPath, rival.Token, map[string]string{"status": "rejected"}, nil))
	assert.Equal(t, http.StatusBadRequest, api.do(http.MethodPatch, statusPath, employer.Token, map[string]string{"status": "withdrawn"}, nil))
	assert.Equal(t, http.StatusOK, api.do(http.MethodPatch, statusPath, employer.Token, map[string]string{"status": "interview"}, nil))

	var studentDash struct {
		Stats struct {
			Applications int64 `json:"applications"`
			Interviews   int64 `json:"interviews"`
		} `json:"stats"`
	}
	require.Equal(t, http.StatusOK, api.do(http.MethodGet, "/api/student/dashboard", student.Token, nil, &studentDash))
	assert.Equal(t, int64(1), studentDash.Stats.Applications)
	assert.Equal(t, int64(1), studentDash.Stats.Interviews)

	assert.Equal(t, http.StatusOK, api.do(http.MethodPatch, statusPath, employer.Token, map[string]string{"status": "accepted"}, nil))

	var reviewed []struct {
		ID     int64  `json:"id"`
		Status string `json:"status"`
	}
	require.Equal(t, http.StatusOK, api.do(http.MethodGet, "/api/employer/applications", employer.Token, nil, &reviewed))
	require.Len(t, reviewed, 1)
	assert.Equal(t, applied.Application.ID, reviewed[0].ID)
	assert.Equal(t, "accepted", reviewed[0].Status)

	var rivalReceived []struct{ ID int64 }
	require.Equal(t, http.StatusOK, api.do(http.MethodGet, "/api/employer/applications", rival.Token, nil, &rivalReceived))
	assert.Empty(t, rivalReceived)

	// closing hides the listing from students
	closePath := fmt.Sprintf("/api/employer/internships/%d/status", listingID)
	assert.Equal(t, http.StatusForbidden, api.do(http.MethodPatch, closePath, rival.Token, map[string]string{"status": "closed"}, nil))
	assert.Equal(t, http.StatusOK, api.do(http.MethodPatch, closePath, employer.Token, map[string]string{"status": "closed"}, nil))
	assert.Equal(t, http.StatusNotFound, api.do(http.MethodGet, fmt.Sprintf("/api/student/internships/%d", listingID), student.Token, nil, nil))
	assert.Equal(t, http.StatusOK, api.do(http.MethodGet, fmt.Sprintf("/api/employer/internships/%d", listingID), employer.Token, nil, nil))

	// admin views and deletes
	assert.Equal(t, http.StatusForbidden, api.do(http.MethodGet, "/api/admin/dashboard", employer.Token, nil, nil))

	var adminDash struct {
		Stats struct {
			TotalUsers int64 `json:"totalUsers"`
			Admins     int64 `json:"admins"`
		} `json:"stats"`
	}
	require.Equal(t, http.StatusOK, api.do(http.MethodGet, "/api/admin/dashboard", admin.Token, nil, &adminDash))
	assert.Equal(t, int64(4), adminDash.Stats.TotalUsers)
	assert.Equal(t, int64(1), adminDash.Stats.Admins)

	var users struct {
		Users []struct {
			Email string `json:"email"`
		} `json:"users"`
		Pagination struct {
			TotalItems int64 `json:"totalItems"`
		} `json:"pagination"`
	}
	require.Equal(t, http.StatusOK, api.do(http.MethodGet, "/api/admin/users?role=employer", admin.Token, nil, &users))
	assert.Equal(t, int64(2), users.Pagination.TotalItems)

	assert.Equal(t, http.StatusForbidden, api.do(http.MethodDelete, fmt.Sprintf("/api/admin/users/%d", admin.User.ID), admin.Token, nil, nil))
	assert.Equal(t, http.StatusOK, api.do(http.MethodDelete, fmt.Sprintf("/api/admin/users/%d", employer.User.ID), admin.Token, nil, nil))
	assert.Equal(t, http.StatusNotFound, api.do(http.MethodDelete, fmt.Sprintf("/api/admin/users/%d", employer.User.ID), admin.Token, nil, nil))

	// the deleted employer's token no longer works and their data is gone
	var gone errorBody
	assert.Equal(t, http.StatusUnauthorized, api.do(http.MethodGet, "/api/employer/dashboard", employer.Token, nil, &gone))
	assert.Equal(t, "token is not valid - user not found", gone.Error.Message)

	var mine []struct{ ID int64 }
	require.Equal(t, http.StatusOK, api.do(http.MethodGet, "/api/student/applications", student.Token, nil, &mine))
	assert.Empty(t, mine)
}

func TestAuthEndpoints(t *testing.T) {
	api := newAPI(t)
	student := api.register("Ada", "ada@example.com", "student")

	var me struct {
		User struct {
			Email string `json:"email"`
		} `json:"user"`
	}
	require.Equal(t, http.StatusOK, api.do(http.MethodGet, "/api/auth/me", student.Token, nil, &me))
	assert.Equal(t, "ada@example.com", me.User.Email)

	assert.Equal(t, http.StatusUnauthorized, api.do(http.MethodGet, "/api/auth/me", "", nil, nil))
	assert.Equal(t, http.StatusUnauthorized, api.do(http.MethodGet, "/api/student/dashboard", "forged.token.value", nil, nil))

	var dup errorBody
	code := api.do(http.MethodPost, "/api/auth/register", "", map[string]string{
		"name": "Ada Again", "email": "ADA@example.com", "password": "secret123", "role": "employer",
	}, &dup)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "user already exists", dup.Error.Message)

	assert.Equal(t, http.StatusBadRequest, api.do(http.MethodPost, "/api/auth/register", "", map[string]string{
		"name": "Eve", "email": "eve@example.com", "password": "secret123", "role": "teacher",
	}, nil))

	var bad errorBody
	code = api.do(http.MethodPost, "/api/auth/login", "", map[string]string{"email": "ada@example.com", "password": "nope"}, &bad)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Invalid credentials", bad.Error.Message)

	// employers cannot use the student portal
	employer := api.register("Acme", "hr@acme.io", "employer")
	assert.Equal(t, http.StatusForbidden, api.do(http.MethodGet, "/api/student/profile", employer.Token, nil, nil))
}

func TestAdminRegistration(t *testing.T) {
	t.Run("enabled", func(t *testing.T) {
		api := newAPI(t)
		admin := api.register("Grace", "grace@example.com", "admin")
		assert.Equal(t, "admin", admin.User.Role)
		assert.Equal(t, http.StatusOK, api.do(http.MethodGet, "/api/admin/dashboard", admin.Token, nil, nil))
	})

	t.Run("disabled", func(t *testing.T) {
		cfg := testConfig()
		cfg.Auth.AllowAdminRegistration = false
		api := newAPIWithConfig(t, cfg)

		var rejected errorBody
		code := api.do(http.MethodPost, "/api/auth/register", "", map[string]string{
			"name": "Grace", "email": "grace@example.com", "password": "secret123", "role": "admin",
		}, &rejected)
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "VAL_001", rejected.Error.Code)

		student := api.register("Ada", "ada@example.com", "student")
		assert.Equal(t, "student", student.User.Role)
	})
}

func TestStudentProfile(t *testing.T) {
	api := newAPI(t)
	student := api.register("Ada", "ada@example.com", "student")

	var profile struct {
		Name   string   `json:"name"`
		Skills []string `json:"skills"`
		GitHub string   `json:"github"`
	}
	code := api.do(http.MethodPut, "/api/student/profile", student.Token, map[string]interface{}{
		"name":   "Ada King",
		"skills": []string{"go", "postgres"},
		"github": "https://github.com/ada",
	}, &profile)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Ada King", profile.Name)
	assert.Equal(t, []string{"go", "postgres"}, profile.Skills)

	require.Equal(t, http.StatusOK, api.do(http.MethodGet, "/api/student/profile", student.Token, nil, &profile))
	assert.Equal(t, "https://github.com/ada", profile.GitHub)

	assert.Equal(t, http.StatusBadRequest, api.do(http.MethodPut, "/api/student/profile", student.Token, map[string]interface{}{
		"github": "not a url",
	}, nil))
}

func TestOperationalEndpoints(t *testing.T) {
	api := newAPI(t)

	var health struct {
		Status   string `json:"status"`
		Database string `json:"database"`
	}
	require.Equal(t, http.StatusOK, api.do(http.MethodGet, "/api/health", "", nil, &health))
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, config.DriverMemory, health.Database)

	w := httptest.NewRecorder()
	api.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `interconnect_http_requests_total{method="GET",route="/api/health",status="200"} 1`)

	w = httptest.NewRecorder()
	api.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/student/applications")

	req := httptest.NewRequest(http.MethodOptions, "/api/auth/login", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w = httptest.NewRecorder()
	api.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestBuildDependencies_RequiresRepositories(t *testing.T) {
	_, err := BuildDependencies(testConfig(), nil, nil, zerolog.Nop())
	assert.Error(t, err)
}
