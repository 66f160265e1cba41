package httpserver_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voice-gpt-skill/config"
	"voice-gpt-skill/internal/apl"
	"voice-gpt-skill/internal/httpserver"
	"voice-gpt-skill/internal/middleware"
	"voice-gpt-skill/internal/model"
	"voice-gpt-skill/internal/router"
	skillHTTP "voice-gpt-skill/internal/skill/delivery/http"
	"voice-gpt-skill/internal/skill/usecase"
	"voice-gpt-skill/internal/test"
	"voice-gpt-skill/pkg/chatgpt"
	"voice-gpt-skill/pkg/log"
	"voice-gpt-skill/pkg/response"
)

type fixedChatGPT struct{}

func (fixedChatGPT) Complete(ctx context.Context, history []chatgpt.Turn, question string) string {
	return "fixed"
}

func newServer(t *testing.T, env model.Environment) *httpserver.HTTPServer {
	t.Helper()
	return newServerOnPort(t, env, 8080)
}

func newServerOnPort(t *testing.T, env model.Environment, port int) *httpserver.HTTPServer {
	t.Helper()

	l := log.NewNop()
	uc := usecase.New(l, fixedChatGPT{}, apl.New(l))
	r := router.New(l)

	srv, err := httpserver.New(l, httpserver.Config{
		Logger:       l,
		Port:         port,
		Mode:         gin.TestMode,
		Environment:  string(env),
		Model:        "gpt-test",
		Middleware:   middleware.New(l, config.SkillConfig{}),
		SkillHandler: skillHTTP.New(l, uc, r),
		TestHandler:  test.New(l, r, uc),
	})
	require.NoError(t, err)
	return srv
}

func serve(srv *httpserver.HTTPServer, method, path string, body []byte) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(method, path, bytes.NewReader(body)))
	return w
}

func TestNew_Validation(t *testing.T) {
	l := log.NewNop()

	_, err := httpserver.New(l, httpserver.Config{Port: 8080, Mode: gin.TestMode})
	assert.Error(t, err, "skill handler is required")

	_, err = httpserver.New(nil, httpserver.Config{Port: 8080, Mode: gin.TestMode})
	assert.Error(t, err)

	_, err = httpserver.New(l, httpserver.Config{Mode: gin.TestMode})
	assert.Error(t, err)
}

func TestSystemRoutes(t *testing.T) {
	srv := newServer(t, model.EnvironmentDevelopment)

	for _, path := range []string{"/health", "/ready", "/live"} {
		t.Run(path, func(t *testing.T) {
			w := serve(srv, http.MethodGet, path, nil)
			require.Equal(t, http.StatusOK, w.Code)

			var resp response.Resp
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			data := resp.Data.(map[string]any)
			assert.Equal(t, httpserver.ServiceName, data["service"])
			if path == "/ready" {
				assert.Equal(t, "gpt-test", data["model"])
			}
		})
	}
}

func TestRequestIDHeader(t *testing.T) {
	srv := newServer(t, model.EnvironmentDevelopment)

	w := serve(srv, http.MethodGet, "/health", nil)
	assert.NotEmpty(t, w.Header().Get(middleware.HeaderRequestID))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(middleware.HeaderRequestID, "caller-id")
	w = httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	assert.Equal(t, "caller-id", w.Header().Get(middleware.HeaderRequestID))
}

func TestSkillRoute(t *testing.T) {
	srv := newServer(t, model.EnvironmentProduction)

	body := []byte(`{"version":"1.0","session":{"new":true,"sessionId":"s1"},"request":{"type":"LaunchRequest","requestId":"r1","timestamp":"` +
		time.Now().UTC().Format(time.RFC3339) + `"}}`)
	w := serve(srv, http.MethodPost, "/alexa", body)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), usecase.SpeechLaunch)
}

func TestTestRoutes_HiddenInProduction(t *testing.T) {
	body := []byte(`{"request":"launch"}`)

	w := serve(newServer(t, model.EnvironmentDevelopment), http.MethodPost, "/test/utterance", body)
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(newServer(t, model.EnvironmentProduction), http.MethodPost, "/test/utterance", body)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func freePort(t *testing.T) int {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()
	return ln.Addr().(*net.TCPAddr).Port
}

func TestRun_StopsOnCancel(t *testing.T) {
	srv := newServerOnPort(t, model.EnvironmentDevelopment, freePort(t))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
