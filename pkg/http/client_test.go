package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendAndParse_JSONRoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "Bearer k", r.Header.Get("Authorization"))

		var in map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		_ = json.NewEncoder(w).Encode(map[string]string{"echo": in["subject"]})
	}))
	defer srv.Close()

	var out struct {
		Echo string `json:"echo"`
	}
	err := NewClient().SendAndParse(context.Background(), &RequestOptions{
		Method:  MethodPost,
		URL:     srv.URL,
		Headers: map[string]string{"Authorization": "Bearer k"},
		Body:    map[string]string{"subject": "hi"},
	}, &out)
	require.NoError(t, err)
	assert.Equal(t, "hi", out.Echo)
}

func TestSendAndParse_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(strings.Repeat("x", maxErrorBody+10)))
	}))
	defer srv.Close()

	err := NewClient().SendAndParse(context.Background(), &RequestOptions{Method: MethodPost, URL: srv.URL}, nil)
	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusTooManyRequests, se.Code)
	assert.Len(t, se.Body, maxErrorBody)
}

func TestSendAndParse_BadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	var out map[string]string
	err := NewClient().SendAndParse(context.Background(), &RequestOptions{Method: MethodPost, URL: srv.URL}, &out)
	assert.ErrorContains(t, err, "decode json")
}

func TestSendAndParse_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
	}))
	defer srv.Close()

	err := NewClient(WithTimeout(10*time.Millisecond)).
		SendAndParse(context.Background(), &RequestOptions{Method: MethodPost, URL: srv.URL}, nil)
	assert.ErrorContains(t, err, "request failed")
}
