package adapters

import (
	"errors"
	"github.com/Tejasai37/papercast/domain"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestContentFetcher_FetchContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok":
			_, _ = w.Write([]byte("payload"))
		default:
			http.Error(w, "nope", http.StatusBadGateway)
		}
	}))
	defer server.Close()
	fetcher := NewContentFetcher(newTestLogger(), server.Client())

	req, _ := http.NewRequest(http.MethodGet, server.URL+"/ok", nil)
	payload, err := fetcher.FetchContent(req)
	assert.Equal(t, nil, err)
	assert.Equal(t, "payload", string(payload))

	req, _ = http.NewRequest(http.MethodGet, server.URL+"/fail", nil)
	_, err = fetcher.FetchContent(req)
	assert.Equal(t, true, errors.Is(err, domain.ErrUpstream))
}

func TestContentFetcher_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()
	fetcher := NewContentFetcher(newTestLogger(), nil)

	req, _ := http.NewRequest(http.MethodGet, url, nil)
	_, err := fetcher.FetchContent(req)

	assert.Equal(t, true, errors.Is(err, domain.ErrUpstream))
}
