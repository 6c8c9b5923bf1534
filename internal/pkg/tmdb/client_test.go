package tmdb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMovie(t *testing.T) {
	var gotPath, gotKey, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("api_key")
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": 550, "title": "Fight Club"}`))
	}))
	defer srv.Close()

	c := NewClient("key-123", "read-token", srv.URL)
	movie, err := c.GetMovie(context.Background(), 550)
	require.NoError(t, err)

	assert.Equal(t, "/movie/550", gotPath)
	assert.Equal(t, "key-123", gotKey)
	assert.Equal(t, "Bearer read-token", gotAuth)
	assert.Equal(t, "Fight Club", movie["title"])
}

func TestGetMovieWithExtras(t *testing.T) {
	var gotAppend string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAppend = r.URL.Query().Get("append_to_response")
		w.Write([]byte(`{"id": 550}`))
	}))
	defer srv.Close()

	c := NewClient("key", "", srv.URL)
	_, err := c.GetMovieWithExtras(context.Background(), 550)
	require.NoError(t, err)
	assert.Equal(t, movieExtras, gotAppend)
}

func TestDiscover_PassesParamsThrough(t *testing.T) {
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"results": []}`))
	}))
	defer srv.Close()

	c := NewClient("key", "", srv.URL)
	params := url.Values{}
	params.Set("with_genres", "18")
	params.Set("vote_average.gte", "7")
	_, err := c.Discover(context.Background(), params)
	require.NoError(t, err)

	assert.Equal(t, "18", gotQuery.Get("with_genres"))
	assert.Equal(t, "7", gotQuery.Get("vote_average.gte"))
	assert.Equal(t, "key", gotQuery.Get("api_key"))
}

func TestGet_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"status_message": "The resource you requested could not be found."}`))
	}))
	defer srv.Close()

	c := NewClient("key", "", srv.URL)
	_, err := c.GetMovie(context.Background(), 999999999)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}
