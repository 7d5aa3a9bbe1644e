package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Do_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, err := NewClient(server.URL)
	require.NoError(t, err)
	client.SetAccessToken("token-123")

	resp, err := client.Do(context.Background(), Request{Method: http.MethodGet, Path: "/api/v1/bookings"})
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Bearer token-123", gotAuth)
}

func TestClient_Do_RefreshesAndRetriesOnUnauthorized(t *testing.T) {
	var protectedCalls, refreshCalls atomic.Int32

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/bookings", func(w http.ResponseWriter, r *http.Request) {
		protectedCalls.Add(1)
		if r.Header.Get("Authorization") != "Bearer fresh-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]any{"data": []any{}})
	})
	mux.HandleFunc("/api/v1/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		refreshCalls.Add(1)
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{"access_token": "fresh-token", "expires_in": 900},
		})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client, err := NewClient(server.URL)
	require.NoError(t, err)
	client.SetAccessToken("stale-token")

	resp, err := client.Do(context.Background(), Request{Method: http.MethodGet, Path: "/api/v1/bookings"})
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int32(2), protectedCalls.Load())
	assert.Equal(t, int32(1), refreshCalls.Load())
	assert.Equal(t, "fresh-token", client.AccessToken())
}

func TestClient_Do_SessionExpiredWhenRefreshFails(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/bookings", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	mux.HandleFunc("/api/v1/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	expired := false
	client, err := NewClient(server.URL, WithSessionExpiredHandler(func() {
		expired = true
	}))
	require.NoError(t, err)
	client.SetAccessToken("stale-token")

	_, err = client.Do(context.Background(), Request{Method: http.MethodGet, Path: "/api/v1/bookings"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session expired")
	assert.True(t, expired)
	assert.Empty(t, client.AccessToken())
}

func TestClient_Do_RetriesOnlyOnce(t *testing.T) {
	var protectedCalls atomic.Int32

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/bookings", func(w http.ResponseWriter, r *http.Request) {
		protectedCalls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	})
	mux.HandleFunc("/api/v1/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{"access_token": "fresh-token", "expires_in": 900},
		})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client, err := NewClient(server.URL)
	require.NoError(t, err)
	client.SetAccessToken("stale-token")

	// リフレッシュに成功しても保護リソースが401を返し続ける場合、
	// 再試行は一度だけで、そのレスポンスをそのまま返す
	resp, err := client.Do(context.Background(), Request{Method: http.MethodGet, Path: "/api/v1/bookings"})
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, int32(2), protectedCalls.Load())
}

func TestClient_DoJSON_DecodesResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{"message": "GC Rental API v1"},
		})
	}))
	defer server.Close()

	client, err := NewClient(server.URL)
	require.NoError(t, err)

	var out struct {
		Data struct {
			Message string `json:"message"`
		} `json:"data"`
	}
	err = client.DoJSON(context.Background(), Request{Method: http.MethodGet, Path: "/api/v1/"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "GC Rental API v1", out.Data.Message)
}

func TestClient_DoJSON_ReturnsAPIErrorOnFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"code": "INVALID_REQUEST", "message": "invalid request"},
		})
	}))
	defer server.Close()

	client, err := NewClient(server.URL)
	require.NoError(t, err)

	err = client.DoJSON(context.Background(), Request{Method: http.MethodGet, Path: "/api/v1/apartments/bad"}, nil)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Contains(t, apiErr.Body, "INVALID_REQUEST")
}

func TestClient_SendsRefreshCookieFromJar(t *testing.T) {
	var refreshCookie string

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "refreshToken", Value: "refresh-abc", Path: "/", HttpOnly: true})
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/api/v1/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		if c, err := r.Cookie("refreshToken"); err == nil {
			refreshCookie = c.Value
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{"access_token": "fresh-token", "expires_in": 900},
		})
	})
	mux.HandleFunc("/api/v1/bookings", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer fresh-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client, err := NewClient(server.URL)
	require.NoError(t, err)

	// ログインでリフレッシュクッキーがjarに保存される
	resp, err := client.Do(context.Background(), Request{Method: http.MethodPost, Path: "/api/v1/auth/login"})
	require.NoError(t, err)
	resp.Body.Close()

	// 401を契機としたリフレッシュで、jarのクッキーが送信される
	resp, err = client.Do(context.Background(), Request{Method: http.MethodGet, Path: "/api/v1/bookings"})
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "refresh-abc", refreshCookie)
}
