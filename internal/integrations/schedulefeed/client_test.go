package schedulefeed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestClient_FetchSchedule(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/timeslots/regular":
			_, _ = w.Write([]byte(`[{"id":1,"weekday":1,"start":"09:00","end":"10:00","enabled":true}]`))
		case "/timeslots/special":
			_, _ = w.Write([]byte(`[{"id":2,"date":"2026-09-01","start":"14:00","end":"15:00","enabled":true}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := NewClient(server.URL, 8*time.Second, "secret", nopLogger{})

	schedule, err := client.FetchSchedule(context.Background())
	require.NoError(t, err)
	require.Len(t, schedule.Regular, 1)
	require.Len(t, schedule.Special, 1)

	assert.Equal(t, int64(1), schedule.Regular[0].ID)
	assert.Equal(t, 1, schedule.Regular[0].Weekday)
	assert.Equal(t, "09:00", schedule.Regular[0].Start)
	assert.Equal(t, "2026-09-01", schedule.Special[0].Date)
}

func TestClient_FetchSchedule_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client := NewClient(server.URL, 50*time.Millisecond, "", nopLogger{})

	_, err := client.FetchSchedule(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestClient_FetchSchedule_Unreachable(t *testing.T) {
	// Закрытый сервер гарантированно недоступен
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL, time.Second, "", nopLogger{})

	_, err := client.FetchSchedule(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnreachable)
}

func TestClient_FetchSchedule_HTMLResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte("<html><body>Maintenance</body></html>"))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, "", nopLogger{})

	_, err := client.FetchSchedule(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnexpectedContentType)
}

func TestClient_FetchSchedule_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, "", nopLogger{})

	_, err := client.FetchSchedule(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrHTTPStatus)
}

func TestClient_FetchScheduleWithGracefulDegradation(t *testing.T) {
	t.Run("wraps any feed failure into ErrFeedDegraded", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		client := NewClient(server.URL, time.Second, "", nopLogger{})

		_, err := client.FetchScheduleWithGracefulDegradation(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrFeedDegraded)
	})

	t.Run("passes the schedule through on success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[]`))
		}))
		defer server.Close()

		client := NewClient(server.URL, time.Second, "", nopLogger{})

		schedule, err := client.FetchScheduleWithGracefulDegradation(context.Background())
		require.NoError(t, err)
		assert.Empty(t, schedule.Regular)
		assert.Empty(t, schedule.Special)
	})
}
