// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

// buildRouter mirrors the note routes without needing services.
func buildRouter() *chi.Mux {
	router := chi.NewRouter()
	ok := func(status int) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(status) }
	}

	router.Get("/notes", ok(http.StatusOK))
	router.Post("/notes", ok(http.StatusCreated))
	router.Get("/notes/{id}", ok(http.StatusOK))
	router.Put("/notes/{id}", ok(http.StatusOK))
	router.Delete("/notes/{id}", ok(http.StatusNoContent))

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func TestCheckHTTPMethod_TableTest(t *testing.T) {
	router := buildRouter()

	tests := []struct {
		method     string
		path       string
		wantStatus int
	}{
		{http.MethodGet, "/notes", http.StatusOK},
		{http.MethodPost, "/notes", http.StatusCreated},
		{http.MethodGet, "/notes/7", http.StatusOK},
		{http.MethodPut, "/notes/7", http.StatusOK},
		{http.MethodDelete, "/notes/7", http.StatusNoContent},

		{http.MethodDelete, "/notes", http.StatusNotFound},
		{http.MethodPut, "/notes", http.StatusNotFound},
		{http.MethodPatch, "/notes", http.StatusNotFound},
		{http.MethodPost, "/notes/7", http.StatusNotFound},
		{http.MethodPatch, "/notes/7", http.StatusNotFound},

		{http.MethodGet, "/unknown", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rr.Code)
		})
	}
}

func TestCheckHTTPMethod_CalledDirectlyForRegisteredMethodDelegates(t *testing.T) {
	router := buildRouter()

	rr := httptest.NewRecorder()
	CheckHTTPMethod(router)(rr, httptest.NewRequest(http.MethodDelete, "/notes/3", nil))

	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestCheckHTTPMethod_ConcurrentRequests(t *testing.T) {
	router := buildRouter()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Go(func() {
			method, want := http.MethodGet, http.StatusOK
			if i%2 == 1 {
				method, want = http.MethodPatch, http.StatusNotFound
			}
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(method, "/notes/1", nil))
			assert.Equal(t, want, rr.Code)
		})
	}
	wg.Wait()
}
