package practicum

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"homework_status_bot/internal/domain/homework"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_GetHomeworkStatuses(t *testing.T) {
	var (
		gotAuth     string
		gotFromDate string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		gotAuth = r.Header.Get("Authorization")
		gotFromDate = r.URL.Query().Get("from_date")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"homeworks":[{"homework_name":"hw1","status":"approved"}],"current_date":1000}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret", time.Second)
	answer, err := c.GetHomeworkStatuses(context.Background(), 1000)
	require.NoError(t, err)

	assert.Equal(t, "OAuth secret", gotAuth)
	assert.Equal(t, "1000", gotFromDate)

	homeworks, err := homework.CheckResponse(answer)
	require.NoError(t, err)
	require.Len(t, homeworks, 1)
}

func TestClient_ZeroCursorUsesNow(t *testing.T) {
	var gotFromDate string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotFromDate = r.URL.Query().Get("from_date")
		_, _ = w.Write([]byte(`{"homeworks":[]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret", time.Second)
	c.now = func() time.Time { return time.Unix(1700000000, 0) }

	_, err := c.GetHomeworkStatuses(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, "1700000000", gotFromDate)
}

func TestClient_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"code":"not_authenticated","message":"Учетные данные не были предоставлены."}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "bad", time.Second)
	answer, err := c.GetHomeworkStatuses(context.Background(), 1000)
	require.ErrorIs(t, err, homework.ErrFetch)
	assert.Contains(t, err.Error(), "HTTP 401")
	assert.Nil(t, answer)
}

func TestClient_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewClient(url, "secret", time.Second)
	_, err := c.GetHomeworkStatuses(context.Background(), 1000)
	require.ErrorIs(t, err, homework.ErrFetch)
}

func TestClient_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	c := NewClient(srv.URL, "secret", 50*time.Millisecond)
	_, err := c.GetHomeworkStatuses(context.Background(), 1000)
	require.ErrorIs(t, err, homework.ErrFetch)
}

func TestClient_InvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>maintenance</html>`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret", time.Second)
	_, err := c.GetHomeworkStatuses(context.Background(), 1000)
	require.ErrorIs(t, err, homework.ErrSchema)
	assert.NotErrorIs(t, err, homework.ErrFetch)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short"))
	long := strings.Repeat("x", maxErrorBody+10)
	assert.Equal(t, strings.Repeat("x", maxErrorBody)+"...", truncate(long))
}

func TestTruncate_CyrillicBody(t *testing.T) {
	// "x" shifts every two-byte rune so maxErrorBody lands mid-rune.
	body := "x" + strings.Repeat("ж", maxErrorBody)
	got := truncate(body)

	assert.True(t, utf8.ValidString(got))
	assert.True(t, strings.HasSuffix(got, "..."))
	assert.LessOrEqual(t, len(got), maxErrorBody+len("..."))
	assert.Equal(t, "x"+strings.Repeat("ж", (maxErrorBody-1)/2)+"...", got)
}

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient("", "secret", 0)
	assert.Equal(t, DefaultEndpoint, c.endpoint)
	assert.Equal(t, defaultTimeout, c.client.GetClient().Timeout)
}
