package resource

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/sma-console/internal/client"
	"github.com/noah-isme/sma-console/internal/models"
	appErrors "github.com/noah-isme/sma-console/pkg/errors"
)

func testDeps(t *testing.T, handler func(*gin.Engine)) (Deps, *int) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	hits := 0
	r := gin.New()
	r.Use(func(c *gin.Context) { hits++; c.Next() })
	if handler != nil {
		handler(r)
	}
	server := httptest.NewServer(r)
	t.Cleanup(server.Close)

	api := client.New(client.Config{BaseURL: server.URL, Prefix: "/api/v1"})
	return Deps{API: api}, &hits
}

func TestUserDraftValidation(t *testing.T) {
	deps, hits := testDeps(t, nil)
	ctrl := Users(deps, nil)

	cases := []struct {
		name  string
		draft UserDraft
	}{
		{"missing name", UserDraft{Email: "a@b.com", Password: "secret123", ConfirmPassword: "secret123", Role: "ADMIN"}},
		{"bad email", UserDraft{FullName: "A", Email: "not-an-email", Password: "secret123", ConfirmPassword: "secret123", Role: "ADMIN"}},
		{"password mismatch", UserDraft{FullName: "A", Email: "a@b.com", Password: "secret123", ConfirmPassword: "different1", Role: "ADMIN"}},
		{"short password", UserDraft{FullName: "A", Email: "a@b.com", Password: "short", ConfirmPassword: "short", Role: "ADMIN"}},
		{"unknown role", UserDraft{FullName: "A", Email: "a@b.com", Password: "secret123", ConfirmPassword: "secret123", Role: "WIZARD"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ctrl.Create(context.Background(), tc.draft)
			require.Error(t, err)
			assert.ErrorIs(t, err, appErrors.ErrValidation)
		})
	}
	assert.Zero(t, *hits, "validation failures must not reach the network")
}

func TestGradeDraftValidation(t *testing.T) {
	deps, hits := testDeps(t, nil)
	ctrl := Grades(deps, nil)

	_, err := ctrl.Create(context.Background(), GradeDraft{StudentID: "s1", Subject: "Math", Semester: "1", Score: 101})
	require.Error(t, err)
	assert.ErrorIs(t, err, appErrors.ErrValidation)

	_, err = ctrl.Create(context.Background(), GradeDraft{Subject: "Math", Semester: "1", Score: 90})
	require.Error(t, err)
	assert.ErrorIs(t, err, appErrors.ErrValidation)

	assert.Zero(t, *hits)
}

func TestAcademicYearDraftValidation(t *testing.T) {
	deps, hits := testDeps(t, nil)
	ctrl := AcademicYears(deps, nil)

	start := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	_, err := ctrl.Create(context.Background(), AcademicYearDraft{Name: "2026/2027", StartDate: start, EndDate: start.AddDate(0, -1, 0)})
	require.Error(t, err)
	assert.ErrorIs(t, err, appErrors.ErrValidation)
	assert.Zero(t, *hits)
}

func TestUsersControllerRoundTrip(t *testing.T) {
	deps, _ := testDeps(t, func(r *gin.Engine) {
		r.GET("/api/v1/users", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"data": []models.User{
				{ID: "u1", FullName: "Ana Admin", Email: "ana@school.io", Role: models.RoleAdmin, Status: models.UserActive},
				{ID: "u2", FullName: "Tom Teacher", Email: "tom@school.io", Role: models.RoleTeacher, Status: models.UserPending},
			}})
		})
	})
	ctrl := Users(deps, nil)

	_, err := ctrl.Load(context.Background())
	require.NoError(t, err)

	view, err := ctrl.SetFilter("role", "TEACHER")
	require.NoError(t, err)
	require.Len(t, view, 1)
	assert.Equal(t, "u2", view[0].ID)

	stats := ctrl.Stats()
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.ByStatus[string(models.UserActive)])
	assert.Equal(t, 1, stats.ByStatus[string(models.UserPending)])
}

func TestStudentToggleTerminalStatus(t *testing.T) {
	deps, _ := testDeps(t, func(r *gin.Engine) {
		r.GET("/api/v1/students", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"data": []models.Student{
				{ID: "s1", NIS: "100", FullName: "Grace Grad", Status: models.StudentGraduated},
			}})
		})
	})
	ctrl := Students(deps, nil)

	_, err := ctrl.Load(context.Background())
	require.NoError(t, err)

	_, err = ctrl.ToggleStatus(context.Background(), "s1")
	require.Error(t, err)
	assert.ErrorIs(t, err, appErrors.ErrConflict)
}
