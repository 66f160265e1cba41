package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voice-gpt-skill/config"
	"voice-gpt-skill/pkg/log"
)

func TestCheckTimestamp(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	tolerance := 150 * time.Second

	tests := []struct {
		name string
		raw  string
		want error
	}{
		{"exact", "2024-05-01T12:00:00Z", nil},
		{"within past", "2024-05-01T11:58:00Z", nil},
		{"within future", "2024-05-01T12:02:00Z", nil},
		{"too old", "2024-05-01T11:50:00Z", ErrStaleTimestamp},
		{"too far ahead", "2024-05-01T12:10:00Z", ErrStaleTimestamp},
		{"missing", "", ErrMissingTimestamp},
		{"garbage", "yesterday", ErrInvalidTimestamp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkTimestamp(tt.raw, now, tolerance)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRateLimiter(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		rl := newRateLimiter(0)
		assert.Nil(t, rl)
		assert.NoError(t, rl.Allow("anyone"))
	})

	t.Run("burst then deny", func(t *testing.T) {
		rl := newRateLimiter(60) // burst 6
		for i := 0; i < 6; i++ {
			require.NoError(t, rl.Allow("user-a"), "request %d", i)
		}
		assert.ErrorIs(t, rl.Allow("user-a"), ErrRateLimited)

		// Keys are independent.
		assert.NoError(t, rl.Allow("user-b"))
	})

	t.Run("small limits keep a burst of one", func(t *testing.T) {
		rl := newRateLimiter(5)
		assert.NoError(t, rl.Allow("user"))
		assert.Error(t, rl.Allow("user"))
	})
}

func TestExtractIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/alexa", nil)
	req.RemoteAddr = "10.0.0.1:5555"
	assert.Equal(t, "10.0.0.1", extractIP(req))

	req.Header.Set("X-Real-IP", "10.0.0.2")
	assert.Equal(t, "10.0.0.2", extractIP(req))

	req.Header.Set("X-Forwarded-For", "192.168.1.9, 10.0.0.3")
	assert.Equal(t, "192.168.1.9", extractIP(req))
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mw := New(log.NewNop(), config.SkillConfig{})

	var seen string
	r := gin.New()
	r.Use(mw.RequestID())
	r.GET("/", func(c *gin.Context) {
		seen = log.RequestID(c.Request.Context())
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, w.Header().Get(HeaderRequestID))
}

func TestEnvelopeChecks_BodyStillReadable(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mw := New(log.NewNop(), config.SkillConfig{
		ApplicationID:      "amzn1.ask.skill.test",
		RateLimitPerMin:    60,
		TimestampTolerance: time.Minute,
	})

	r := gin.New()
	r.POST("/alexa", mw.VerifyApplication(), mw.VerifyTimestamp(), mw.RateLimit(), func(c *gin.Context) {
		var body map[string]any
		require.NoError(t, c.ShouldBindBodyWithJSON(&body))
		c.JSON(http.StatusOK, body)
	})

	payload := `{"session":{"application":{"applicationId":"amzn1.ask.skill.test"},"user":{"userId":"u1"}},` +
		`"request":{"type":"LaunchRequest","timestamp":"` + time.Now().UTC().Format(time.RFC3339) + `"}}`

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/alexa", strings.NewReader(payload)))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "LaunchRequest")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/alexa", strings.NewReader("{")))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
