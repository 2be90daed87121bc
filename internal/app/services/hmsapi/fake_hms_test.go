package hmsapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
)

func newFakeHMS(t *testing.T, routes func(r chi.Router)) *httptest.Server {
	t.Helper()
	router := chi.NewRouter()
	routes(router)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(body))
}
