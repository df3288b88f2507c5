package schemasync

import (
	"bytes"
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

	"github.com/vvka-141/erpbrain/internal/logging"
	"github.com/vvka-141/erpbrain/pkg/erpbrain"
)

func TestNewClient_Validation(t *testing.T) {
	log := logging.NewNullLogger()

	_, err := NewClient(ClientConfig{APIKey: "k"}, log)
	assert.ErrorIs(t, err, erpbrain.ErrInvalidConfig)

	_, err = NewClient(ClientConfig{Endpoint: "http://db:3000"}, log)
	assert.ErrorIs(t, err, erpbrain.ErrInvalidConfig)

	c, err := NewClient(ClientConfig{Endpoint: "http://db:3000/", APIKey: "k"}, log)
	require.NoError(t, err)
	assert.Equal(t, "http://db:3000/query", c.url)
	assert.Equal(t, erpbrain.DefaultQueryTimeout, c.httpClient.Timeout)
}

func TestClient_Query(t *testing.T) {
	var gotKey, gotType, gotPath string
	var gotBody map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-api-key")
		gotType = r.Header.Get("Content-Type")
		gotPath = r.Method + " " + r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write([]byte(`[{"COLUMN_NAME":"ID","DATA_LENGTH":22,"DATA_PRECISION":null}]`))
	}))
	defer srv.Close()

	c, err := NewClient(ClientConfig{Endpoint: srv.URL, APIKey: "secret"}, logging.NewNullLogger())
	require.NoError(t, err)

	rows, err := c.Query(context.Background(), "SELECT 1 FROM dual")
	require.NoError(t, err)

	assert.Equal(t, "secret", gotKey)
	assert.Equal(t, "application/json", gotType)
	assert.Equal(t, "POST /query", gotPath)
	assert.Equal(t, map[string]string{"sql": "SELECT 1 FROM dual"}, gotBody)

	require.Len(t, rows, 1)
	assert.Equal(t, "ID", rows[0]["COLUMN_NAME"])
	assert.Equal(t, json.Number("22"), rows[0]["DATA_LENGTH"])
	assert.Nil(t, rows[0]["DATA_PRECISION"])
}

func TestClient_Query_HTTPError(t *testing.T) {
	body := strings.Repeat("x", 500)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, body, http.StatusInternalServerError)
	}))
	defer srv.Close()

	var logs bytes.Buffer
	c, err := NewClient(ClientConfig{Endpoint: srv.URL, APIKey: "k"}, logging.NewWriterLogger(&logs, false))
	require.NoError(t, err)

	_, err = c.Query(context.Background(), "SELECT 1 FROM dual")
	require.Error(t, err)
	assert.ErrorIs(t, err, erpbrain.ErrQueryFailed)

	var qe *erpbrain.QueryError
	require.True(t, errors.As(err, &qe))
	assert.Equal(t, http.StatusInternalServerError, qe.Status)
	assert.Len(t, qe.Body, erpbrain.MaxErrorPreviewLength)

	assert.Contains(t, logs.String(), "Query failed: ")
	assert.Contains(t, logs.String(), "Response: xxx")
}

func TestClient_Query_BadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>`))
	}))
	defer srv.Close()

	c, err := NewClient(ClientConfig{Endpoint: srv.URL, APIKey: "k"}, logging.NewNullLogger())
	require.NoError(t, err)

	_, err = c.Query(context.Background(), "SELECT 1 FROM dual")
	assert.ErrorIs(t, err, erpbrain.ErrQueryFailed)
	assert.Contains(t, err.Error(), "decode response")
}

func TestClient_Query_Null(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`null`))
	}))
	defer srv.Close()

	c, err := NewClient(ClientConfig{Endpoint: srv.URL, APIKey: "k"}, logging.NewNullLogger())
	require.NoError(t, err)

	rows, err := c.Query(context.Background(), "SELECT 1 FROM dual")
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestClient_Query_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	defer srv.Close()

	c, err := NewClient(ClientConfig{Endpoint: srv.URL, APIKey: "k", Timeout: 20 * time.Millisecond}, logging.NewNullLogger())
	require.NoError(t, err)

	_, err = c.Query(context.Background(), "SELECT 1 FROM dual")
	assert.ErrorIs(t, err, erpbrain.ErrQueryFailed)
}

func TestWithRetries(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls < 3 {
			http.Error(w, "busy", http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	log := logging.NewNullLogger()
	c, err := NewClient(ClientConfig{Endpoint: srv.URL, APIKey: "k"}, log)
	require.NoError(t, err)

	q := WithRetries(c, fastRetries(3), log)
	rows, err := q.Query(context.Background(), "SELECT 1 FROM dual")
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.Equal(t, 3, calls)
}

func TestWithRetries_FatalStatus(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "ORA-00942", http.StatusBadRequest)
	}))
	defer srv.Close()

	log := logging.NewNullLogger()
	c, err := NewClient(ClientConfig{Endpoint: srv.URL, APIKey: "k"}, log)
	require.NoError(t, err)

	_, err = WithRetries(c, fastRetries(3), log).Query(context.Background(), "SELECT 1 FROM dual")
	assert.ErrorIs(t, err, erpbrain.ErrQueryFailed)
	assert.Equal(t, 1, calls)
}

func TestWithRetries_Disabled(t *testing.T) {
	c, err := NewClient(ClientConfig{Endpoint: "http://db:3000", APIKey: "k"}, logging.NewNullLogger())
	require.NoError(t, err)

	assert.Same(t, c, WithRetries(c, fastRetries(0), logging.NewNullLogger()))
}
