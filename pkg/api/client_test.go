package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rocketapi/pkg/errors"
	"rocketapi/pkg/logger"
)

// newEnvelope builds a RocketAPI envelope string around the given body
func newEnvelope(status string, statusCode int, contentType, body string) string {
	return fmt.Sprintf(`{"status":%q,"response":{"status_code":%d,"content_type":%q,"body":%s}}`,
		status, statusCode, contentType, body)
}

func newTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *Client) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient("test-token", 5*time.Second, logger.NewTestLogger())
	client.SetBaseURL(server.URL)
	return server, client
}

func TestNewClient(t *testing.T) {
	client := NewClient("test-token", 15*time.Second, nil)

	assert.NotNil(t, client)
	assert.NotNil(t, client.httpClient)
	assert.Equal(t, DefaultBaseURL, client.baseURL)
	assert.Equal(t, 15*time.Second, client.httpClient.Timeout)
	assert.NotNil(t, client.logger)
}

func TestSetBaseURL(t *testing.T) {
	client := NewClient("test-token", time.Second, nil)

	client.SetBaseURL("http://localhost:8080")
	assert.Equal(t, "http://localhost:8080/", client.baseURL)

	client.SetBaseURL("http://localhost:8080/")
	assert.Equal(t, "http://localhost:8080/", client.baseURL)
}

func TestRequestSendsTokenAndPayload(t *testing.T) {
	var gotAuth, gotContentType, gotPath string
	var gotPayload map[string]interface{}

	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, newEnvelope("done", http.StatusOK, "application/json", `{"user":{}}`))
	})

	_, err := client.Request(context.Background(), "instagram/user/get_info",
		map[string]interface{}{"username": "instagram"})
	require.NoError(t, err)

	assert.Equal(t, "Token test-token", gotAuth)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "/instagram/user/get_info", gotPath)
	assert.Equal(t, map[string]interface{}{"username": "instagram"}, gotPayload)
}

func TestRequestSuccess(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, newEnvelope("done", http.StatusOK, "application/json",
			`{"user":{"pk":123,"username":"instagram"}}`))
	})

	body, err := client.Request(context.Background(), "instagram/user/get_info",
		map[string]interface{}{"username": "instagram"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"user":{"pk":123,"username":"instagram"}}`, string(body))
}

func TestRequestErrorMapping(t *testing.T) {
	tests := []struct {
		name         string
		handler      http.HandlerFunc
		expectedKind errors.Kind
	}{
		{
			name: "http 404",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
			expectedKind: errors.KindNotFound,
		},
		{
			name: "http 500",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			expectedKind: errors.KindBadResponse,
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, "not json at all")
			},
			expectedKind: errors.KindBadResponse,
		},
		{
			name: "envelope status not done",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"status":"error","response":{}}`)
			},
			expectedKind: errors.KindBadResponse,
		},
		{
			name: "inner 404",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, newEnvelope("done", http.StatusNotFound, "application/json", `null`))
			},
			expectedKind: errors.KindNotFound,
		},
		{
			name: "inner 500",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, newEnvelope("done", http.StatusInternalServerError, "application/json", `null`))
			},
			expectedKind: errors.KindBadResponse,
		},
		{
			name: "inner non-json content type",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, newEnvelope("done", http.StatusOK, "text/html", `null`))
			},
			expectedKind: errors.KindBadResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, client := newTestServer(t, tt.handler)

			body, err := client.Request(context.Background(), "instagram/user/get_info",
				map[string]interface{}{"username": "ghost"})
			assert.Nil(t, body)
			require.Error(t, err)

			var apiErr *errors.Error
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.expectedKind, apiErr.Kind)
		})
	}
}

func TestRequestTransportFailure(t *testing.T) {
	// Point at a closed server to force a connection error
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewClient("test-token", time.Second, logger.NewTestLogger())
	client.SetBaseURL(url)

	_, err := client.Request(context.Background(), "instagram/search",
		map[string]interface{}{"query": "x"})
	require.Error(t, err)
	assert.True(t, errors.IsRequestError(err))
}

func TestRequestTimeout(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		fmt.Fprint(w, newEnvelope("done", http.StatusOK, "application/json", `{}`))
	})
	client.SetHTTPClient(&http.Client{Timeout: 20 * time.Millisecond})

	_, err := client.Request(context.Background(), "threads/user/get_feed",
		map[string]interface{}{"id": 1})
	require.Error(t, err)
	assert.True(t, errors.IsRequestError(err))
}

func TestRequestContextCancellation(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		fmt.Fprint(w, newEnvelope("done", http.StatusOK, "application/json", `{}`))
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := client.Request(ctx, "threads/user/get_feed", map[string]interface{}{"id": 1})
	require.Error(t, err)
	assert.True(t, errors.IsRequestError(err))
}

func TestLastResponseAndCounter(t *testing.T) {
	envelopeBody := newEnvelope("done", http.StatusOK, "application/json", `{"ok":true}`)
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, envelopeBody)
	})

	assert.Equal(t, uint64(0), client.Counter())
	assert.Nil(t, client.LastResponse())

	for i := 0; i < 3; i++ {
		_, err := client.Request(context.Background(), "instagram/search",
			map[string]interface{}{"query": "q"})
		require.NoError(t, err)
	}

	assert.Equal(t, uint64(3), client.Counter())
	assert.JSONEq(t, envelopeBody, string(client.LastResponse()))
}

func TestLastResponseRecordedOnAPIError(t *testing.T) {
	envelopeBody := newEnvelope("done", http.StatusNotFound, "application/json", `null`)
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, envelopeBody)
	})

	_, err := client.Request(context.Background(), "instagram/user/get_info",
		map[string]interface{}{"username": "ghost"})
	require.Error(t, err)

	// The envelope is still kept for debugging even when the call fails
	assert.Equal(t, uint64(1), client.Counter())
	assert.JSONEq(t, envelopeBody, string(client.LastResponse()))
}
