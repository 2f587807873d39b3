package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/sma-console/internal/session"
	appErrors "github.com/noah-isme/sma-console/pkg/errors"
)

// token with no expiry: header {alg:none}, payload {sub:"u1",role:"ADMIN"}
const testToken = "eyJhbGciOiJub25lIiwidHlwIjoiSldUIn0.eyJzdWIiOiJ1MSIsInJvbGUiOiJBRE1JTiJ9."

type echoRecord struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestClientAttachesBearerToken(t *testing.T) {
	var gotAuth, gotReqID string
	r := newRouter()
	r.GET("/api/v1/ping", func(c *gin.Context) {
		gotAuth = c.GetHeader("Authorization")
		gotReqID = c.GetHeader("X-Request-ID")
		c.JSON(http.StatusOK, gin.H{"data": echoRecord{ID: "1", Name: "pong"}})
	})
	server := httptest.NewServer(r)
	defer server.Close()

	sess, err := session.New(testToken)
	require.NoError(t, err)

	api := New(Config{
		BaseURL:   server.URL,
		Prefix:    "/api/v1",
		Session:   sess,
		Transport: WithRequestID(nil),
	})

	var out echoRecord
	require.NoError(t, api.Get(context.Background(), "/ping", &out))
	assert.Equal(t, "pong", out.Name)
	assert.Equal(t, "Bearer "+testToken, gotAuth)
	assert.NotEmpty(t, gotReqID)
}

func TestClientMapsAuthError(t *testing.T) {
	r := newRouter()
	r.GET("/api/v1/secret", func(c *gin.Context) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": gin.H{"code": "UNAUTHORIZED", "message": "token expired"}})
	})
	server := httptest.NewServer(r)
	defer server.Close()

	api := New(Config{BaseURL: server.URL, Prefix: "/api/v1"})
	err := api.Get(context.Background(), "/secret", &echoRecord{})
	require.Error(t, err)
	assert.ErrorIs(t, err, appErrors.ErrUnauthorized)
	assert.Contains(t, err.Error(), "token expired")
}

func TestClientMapsNotFound(t *testing.T) {
	r := newRouter()
	r.GET("/api/v1/items/9", func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"code": "NOT_FOUND", "message": "item not found"}})
	})
	server := httptest.NewServer(r)
	defer server.Close()

	api := New(Config{BaseURL: server.URL, Prefix: "/api/v1"})
	err := api.Get(context.Background(), "/items/9", &echoRecord{})
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
}

func TestClientTimeout(t *testing.T) {
	r := newRouter()
	r.GET("/api/v1/slow", func(c *gin.Context) {
		time.Sleep(200 * time.Millisecond)
		c.JSON(http.StatusOK, gin.H{"data": gin.H{}})
	})
	server := httptest.NewServer(r)
	defer server.Close()

	api := New(Config{BaseURL: server.URL, Prefix: "/api/v1"})
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := api.Get(ctx, "/slow", &echoRecord{})
	require.Error(t, err)
	assert.ErrorIs(t, err, appErrors.ErrTimeout)
}

func TestClientNetworkError(t *testing.T) {
	api := New(Config{BaseURL: "http://127.0.0.1:1", Prefix: "/api/v1", Timeout: time.Second})
	err := api.Get(context.Background(), "/nowhere", &echoRecord{})
	require.Error(t, err)
	assert.ErrorIs(t, err, appErrors.ErrNetwork)
}

func TestClientImportCSV(t *testing.T) {
	r := newRouter()
	r.POST("/api/v1/students/import/csv", func(c *gin.Context) {
		var req struct {
			CSVData string `json:"csv_data"`
		}
		require.NoError(t, c.BindJSON(&req))
		assert.Contains(t, req.CSVData, "name,email")
		c.JSON(http.StatusOK, gin.H{"data": gin.H{"created": 8, "failed": 2, "errors": []string{"row 3: bad email", "row 7: missing name"}}})
	})
	server := httptest.NewServer(r)
	defer server.Close()

	api := New(Config{BaseURL: server.URL, Prefix: "/api/v1"})
	result, err := api.ImportCSV(context.Background(), "students", "name,email\r\nA,a@b.com\r\n")
	require.NoError(t, err)
	assert.Equal(t, 8, result.Created)
	assert.Equal(t, 2, result.Failed)
	assert.Len(t, result.Errors, 2)
}

func TestClientDownloadCSV(t *testing.T) {
	r := newRouter()
	r.GET("/api/v1/students/export/csv", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/csv", []byte("name\r\nAlice\r\n"))
	})
	server := httptest.NewServer(r)
	defer server.Close()

	api := New(Config{BaseURL: server.URL, Prefix: "/api/v1"})
	payload, err := api.DownloadCSV(context.Background(), "students")
	require.NoError(t, err)
	assert.Equal(t, "name\r\nAlice\r\n", string(payload))
}

func TestMetricsTransportCountsRequests(t *testing.T) {
	r := newRouter()
	r.GET("/api/v1/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"data": gin.H{}})
	})
	server := httptest.NewServer(r)
	defer server.Close()

	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)
	api := New(Config{
		BaseURL:   server.URL,
		Prefix:    "/api/v1",
		Transport: WithMetrics(nil, metrics),
	})

	require.NoError(t, api.Get(context.Background(), "/ping", &echoRecord{}))
	require.NoError(t, api.Get(context.Background(), "/ping", &echoRecord{}))

	count := testutil.ToFloat64(metrics.requests.WithLabelValues(http.MethodGet, "200"))
	assert.Equal(t, float64(2), count)
}
