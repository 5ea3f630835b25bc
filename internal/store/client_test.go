package store

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/auditworks/navedit/internal/nav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/navigation", r.URL.Path)
		assert.Equal(t, "Bearer sekrit", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(Navigation{
			BaseURL: "https://example.com",
			Tree: nav.Tree{
				{ID: nav.NodeID("Home", "/"), Label: "Home", Href: "/"},
			},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "sekrit", 0)
	doc, err := c.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", doc.BaseURL)
	require.Len(t, doc.Tree, 1)
	assert.Equal(t, "Home", doc.Tree[0].Label)
}

func TestClient_Fetch_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "backend down", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", 0)
	_, err := c.Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
	assert.Contains(t, err.Error(), "backend down")
}

func TestClient_Replace(t *testing.T) {
	var gotBody struct {
		Tree nav.Tree `json:"tree"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/navigation", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	tree := nav.Tree{{ID: nav.NodeID("About", "/about"), Label: "About", Href: "/about"}}
	c := NewClient(srv.URL, "", 0)
	require.NoError(t, c.Replace(context.Background(), tree))
	require.Len(t, gotBody.Tree, 1)
	assert.Equal(t, "About", gotBody.Tree[0].Label)
}

func TestClient_Replace_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "conflict", http.StatusConflict)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", 0)
	err := c.Replace(context.Background(), nav.Tree{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 409")
}

func TestClient_NoTokenOmitsAuthHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(Navigation{})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", 0)
	_, err := c.Fetch(context.Background())
	assert.NoError(t, err)
}
