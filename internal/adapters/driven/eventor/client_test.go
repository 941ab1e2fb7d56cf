package eventor

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/eventor-calendars/internal/core/domain"
)

const stubCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nEND:VCALENDAR\r\n"

func testQuery() domain.Query {
	return domain.Combination{
		Organisation:    domain.OrganisationNSW,
		Classifications: []domain.Classification{domain.ClassificationLocal, domain.ClassificationClub},
		Disciplines:     []domain.Discipline{domain.DisciplineFoot},
	}.Query(2026)
}

func TestNewClient_Defaults(t *testing.T) {
	c, err := NewClient(Config{})
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultBaseURL, c.baseURL.String())
	assert.Equal(t, time.Duration(0), c.http.Timeout)
}

func TestNewClient_InvalidBaseURL(t *testing.T) {
	_, err := NewClient(Config{BaseURL: "ftp://example.com/export"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = NewClient(Config{BaseURL: "http://[::1"})
	assert.Error(t, err)
}

func TestClient_URL(t *testing.T) {
	c, err := NewClient(Config{})
	require.NoError(t, err)

	assert.Equal(t,
		domain.DefaultBaseURL+"?classifications=4%2C5&disciplines=0&endDate=2026-12-31&organisations=5&startDate=2026-01-01",
		c.URL(testQuery()))
}

func TestClient_Fetch(t *testing.T) {
	var got url.Values
	var agent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/Events/ExportICalendarEvents", r.URL.Path)
		got = r.URL.Query()
		agent = r.UserAgent()
		w.Header().Set("Content-Type", "text/calendar")
		_, _ = w.Write([]byte(stubCalendar))
	}))
	defer srv.Close()

	c, err := NewClient(Config{
		BaseURL:   srv.URL + "/Events/ExportICalendarEvents",
		UserAgent: "eventor-calendars/test",
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, c.Fetch(context.Background(), testQuery(), &buf))

	assert.Equal(t, stubCalendar, buf.String())
	assert.Equal(t, "eventor-calendars/test", agent)
	assert.Equal(t, "2026-01-01", got.Get("startDate"))
	assert.Equal(t, "2026-12-31", got.Get("endDate"))
	assert.Equal(t, "5", got.Get("organisations"))
	assert.Equal(t, "4,5", got.Get("classifications"))
	assert.Equal(t, "0", got.Get("disciplines"))
}

func TestClient_Fetch_StatusError(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		notFound    bool
		rateLimited bool
	}{
		{name: "Not found", status: http.StatusNotFound, notFound: true},
		{name: "Too many requests", status: http.StatusTooManyRequests, rateLimited: true},
		{name: "Server error", status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				calls++
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			c, err := NewClient(Config{BaseURL: srv.URL})
			require.NoError(t, err)

			var buf bytes.Buffer
			err = c.Fetch(context.Background(), testQuery(), &buf)

			var statusErr *StatusError
			require.True(t, errors.As(err, &statusErr))
			assert.Equal(t, tt.status, statusErr.StatusCode)
			assert.Contains(t, statusErr.URL, srv.URL)
			assert.Equal(t, tt.notFound, IsNotFound(err))
			assert.Equal(t, tt.rateLimited, IsRateLimited(err))
			assert.Zero(t, buf.Len())
			assert.Equal(t, 1, calls, "requests are never retried")
		})
	}
}

func TestClient_Fetch_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	base := srv.URL
	srv.Close()

	c, err := NewClient(Config{BaseURL: base})
	require.NoError(t, err)

	err = c.Fetch(context.Background(), testQuery(), &bytes.Buffer{})
	assert.Error(t, err)
	assert.False(t, IsNotFound(err))
}

func TestClient_Fetch_CancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(stubCalendar))
	}))
	defer srv.Close()

	c, err := NewClient(Config{BaseURL: srv.URL, RequestsPerSecond: 1})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = c.Fetch(ctx, testQuery(), &bytes.Buffer{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRateLimiter(t *testing.T) {
	unlimited := NewRateLimiter(0)
	for i := 0; i < 100; i++ {
		assert.True(t, unlimited.Allow())
	}

	limited := NewRateLimiter(1)
	assert.True(t, limited.Allow())
	assert.False(t, limited.Allow())
}
