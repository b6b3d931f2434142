package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMyMemoryTranslator(server *httptest.Server) *MyMemoryTranslator {
	return &MyMemoryTranslator{
		baseURL: server.URL,
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

func TestMyMemoryTranslate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/get", r.URL.Path)
		assert.Equal(t, "Bonjour", r.URL.Query().Get("q"))
		assert.Equal(t, "fr|en", r.URL.Query().Get("langpair"))
		w.Write([]byte(`{"responseData":{"translatedText":"Hello"},"responseStatus":200}`))
	}))
	defer server.Close()

	tr := newTestMyMemoryTranslator(server)
	out, err := tr.Translate(context.Background(), "Bonjour", "fr", "en")
	require.NoError(t, err)
	assert.Equal(t, "Hello", out)
}

func TestMyMemoryTranslateAutoSource(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Autodetect|en", r.URL.Query().Get("langpair"))
		w.Write([]byte(`{"responseData":{"translatedText":"Hello"},"responseStatus":200}`))
	}))
	defer server.Close()

	tr := newTestMyMemoryTranslator(server)
	out, err := tr.Translate(context.Background(), "Bonjour", SourceAuto, "en")
	require.NoError(t, err)
	assert.Equal(t, "Hello", out)
}

func TestMyMemoryTranslateAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"responseData":{"translatedText":""},"responseStatus":403,"responseDetails":"invalid language pair"}`))
	}))
	defer server.Close()

	tr := newTestMyMemoryTranslator(server)
	_, err := tr.Translate(context.Background(), "Bonjour", "fr", "xx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid language pair")
}

func TestMyMemoryTranslateMalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>gateway error</html>`))
	}))
	defer server.Close()

	tr := newTestMyMemoryTranslator(server)
	_, err := tr.Translate(context.Background(), "Bonjour", "fr", "en")
	require.Error(t, err)
}

func TestMyMemoryTranslateUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	tr := newTestMyMemoryTranslator(server)
	_, err := tr.Translate(context.Background(), "Bonjour", "fr", "en")
	require.Error(t, err)
}
