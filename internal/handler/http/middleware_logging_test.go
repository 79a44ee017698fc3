// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// makeRequest creates a test request with a logger writing to buf in its
// context, the same way withTraceID does.
func makeRequest(method, target string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	l := zerolog.New(buf)
	return req.WithContext(l.WithContext(req.Context()))
}

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name            string
		method          string
		target          string
		handlerStatus   int
		handlerResponse string
		wantContains    []string
		wantNotContains []string
	}{
		{
			name:            "GET 200",
			method:          http.MethodGet,
			target:          "/api/notes/",
			handlerStatus:   http.StatusOK,
			handlerResponse: "OK",
			wantContains:    []string{`"method":"GET"`, `"path":"/api/notes/"`, `"status":200`, `"duration":`, `"size":2`},
		},
		{
			name:          "DELETE 404",
			method:        http.MethodDelete,
			target:        "/api/notes/42",
			handlerStatus: http.StatusNotFound,
			wantContains:  []string{`"method":"DELETE"`, `"status":404`, `"size":0`},
		},
		{
			name:            "signature query is not logged",
			method:          http.MethodGet,
			target:          "/api/storage/objects/media/id/a.png?expires=1&signature=secret",
			handlerStatus:   http.StatusOK,
			handlerResponse: "img",
			wantContains:    []string{`"path":"/api/storage/objects/media/id/a.png"`},
			wantNotContains: []string{"secret"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := &Handler{logger: logger.Nop()}

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.handlerStatus)
				if tt.handlerResponse != "" {
					_, _ = w.Write([]byte(tt.handlerResponse))
				}
			})

			rr := httptest.NewRecorder()
			h.withLogging(next).ServeHTTP(rr, makeRequest(tt.method, tt.target, &buf))

			assert.Equal(t, tt.handlerStatus, rr.Code)
			for _, s := range tt.wantContains {
				assert.Contains(t, buf.String(), s)
			}
			for _, s := range tt.wantNotContains {
				assert.NotContains(t, buf.String(), s)
			}
		})
	}
}

func TestWithLogging_ImplicitStatus(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: logger.Nop()}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	h.withLogging(next).ServeHTTP(httptest.NewRecorder(), makeRequest(http.MethodGet, "/", &buf))

	assert.Contains(t, buf.String(), `"status":200`)
}
