package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompleteReturnsOutput(t *testing.T) {
	var gotInput string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/chat", r.URL.Path)
		var req map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		gotInput, _ = req["input"].(string)
		json.NewEncoder(w).Encode(map[string]string{"agent": "auto", "output": `{"personalInfo":{}}`})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	out, err := c.Complete(context.Background(), "describe jane")
	require.NoError(t, err)
	assert.Equal(t, `{"personalInfo":{}}`, out)
	assert.Equal(t, "describe jane", gotInput)
}

func TestCompleteNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.Complete(context.Background(), "x")
	assert.ErrorContains(t, err, "status 500")
}

func TestCompleteBadEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json at all"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.Complete(context.Background(), "x")
	assert.ErrorContains(t, err, "envelope")
}

func TestCompleteRetriesTransportErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := NewClient(srv.URL)
	c.Backoff = time.Millisecond

	start := time.Now()
	_, err := c.Complete(context.Background(), "x")
	assert.Error(t, err)
	assert.Less(t, time.Since(start), time.Second, "test backoff must be used")
}

func TestCompleteHonorsContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := NewClient(srv.URL)
	c.Backoff = time.Minute

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := c.Complete(ctx, "x")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
