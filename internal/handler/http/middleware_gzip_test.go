// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipBytes(t *testing.T, data []byte) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return &buf
}

func gunzip(t *testing.T, r io.Reader) string {
	t.Helper()
	zr, err := gzip.NewReader(r)
	require.NoError(t, err)
	defer zr.Close()
	data, err := io.ReadAll(zr)
	require.NoError(t, err)
	return string(data)
}

func TestGZip(t *testing.T) {
	tests := []struct {
		name            string
		acceptEncoding  string
		contentEncoding string
		body            string
		compressBody    bool
		wantStatus      int
		wantGzipped     bool
		wantBody        string
	}{
		{
			name:           "compress response when client accepts gzip",
			acceptEncoding: "gzip",
			wantStatus:     http.StatusOK,
			wantGzipped:    true,
			wantBody:       `[{"id":1,"title":"a","content":"b"}]`,
		},
		{
			name:       "plain response when client does not accept gzip",
			wantStatus: http.StatusOK,
			wantBody:   `[{"id":1,"title":"a","content":"b"}]`,
		},
		{
			name:           "accept-encoding with several values",
			acceptEncoding: "deflate, gzip;q=1.0, br",
			wantStatus:     http.StatusOK,
			wantGzipped:    true,
			wantBody:       `[]`,
		},
		{
			name:            "gzipped request body is decoded",
			contentEncoding: "gzip",
			body:            `{"title":"t","content":"c"}`,
			compressBody:    true,
			wantStatus:      http.StatusOK,
			wantBody:        `echo:{"title":"t","content":"c"}`,
		},
		{
			name:            "gzipped request and response",
			acceptEncoding:  "gzip",
			contentEncoding: "gzip",
			body:            `{"title":"t"}`,
			compressBody:    true,
			wantStatus:      http.StatusOK,
			wantGzipped:     true,
			wantBody:        `echo:{"title":"t"}`,
		},
		{
			name:            "invalid gzip request body",
			contentEncoding: "gzip",
			body:            "not gzipped data",
			wantStatus:      http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Empty(t, r.Header.Get("Content-Encoding"))
				if tt.body != "" {
					data, err := io.ReadAll(r.Body)
					require.NoError(t, err)
					w.Write([]byte("echo:" + string(data)))
					return
				}
				w.Write([]byte(tt.wantBody))
			})

			var body io.Reader
			if tt.body != "" {
				if tt.compressBody {
					body = gzipBytes(t, []byte(tt.body))
				} else {
					body = strings.NewReader(tt.body)
				}
			}

			req := httptest.NewRequest(http.MethodPost, "/notes", body)
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			if tt.contentEncoding != "" {
				req.Header.Set("Content-Encoding", tt.contentEncoding)
			}
			rr := httptest.NewRecorder()

			withGZip(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus != http.StatusOK {
				return
			}
			if tt.wantGzipped {
				assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
				assert.Equal(t, tt.wantBody, gunzip(t, rr.Body))
			} else {
				assert.Empty(t, rr.Header().Get("Content-Encoding"))
				assert.Equal(t, tt.wantBody, rr.Body.String())
			}
		})
	}
}

func TestGZip_NoContentIsNotEncoded(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodDelete, "/notes/1", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()

	withGZip(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Header().Get("Content-Encoding"))
	assert.Zero(t, rr.Body.Len())
}

func TestGZip_ImplicitStatusIsCompressed(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("hello"))
	})

	req := httptest.NewRequest(http.MethodGet, "/api-info", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()

	withGZip(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
	assert.Contains(t, rr.Header().Values("Vary"), "Accept-Encoding")
	assert.Equal(t, "hello", gunzip(t, rr.Body))
}

func TestGZip_FlushEmitsCompressedPrefix(t *testing.T) {
	var flushedLen int
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":1}`))
		require.NoError(t, http.NewResponseController(w).Flush())
		flushedLen = w.(*gzipResponseWriter).ResponseWriter.(*httptest.ResponseRecorder).Body.Len()
		w.Write([]byte(`]`))
	})

	req := httptest.NewRequest(http.MethodGet, "/notes", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()

	withGZip(next).ServeHTTP(rr, req)

	assert.Positive(t, flushedLen)
	assert.True(t, rr.Flushed)
	assert.Equal(t, `[{"id":1}]`, gunzip(t, rr.Body))
}

func TestGZip_CompressionRatio(t *testing.T) {
	data := strings.Repeat(`{"id":1,"title":"same","content":"same"},`, 500)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(data))
	})

	req := httptest.NewRequest(http.MethodGet, "/notes", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()

	withGZip(next).ServeHTTP(rr, req)

	assert.Less(t, rr.Body.Len(), len(data)/10)
}

func TestGZip_ConcurrentRequests(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("response " + r.URL.Query().Get("n")))
	})
	handler := withGZip(next)

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Go(func() {
			req := httptest.NewRequest(http.MethodGet, "/notes?n="+string(rune('a'+i%26)), nil)
			req.Header.Set("Accept-Encoding", "gzip")
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			zr, err := gzip.NewReader(rr.Body)
			if !assert.NoError(t, err) {
				return
			}
			data, err := io.ReadAll(zr)
			assert.NoError(t, err)
			assert.Equal(t, "response "+string(rune('a'+i%26)), string(data))
		})
	}
	wg.Wait()
}

func TestWrappedReadCloser_Close(t *testing.T) {
	called := false
	rc := &wrappedReadCloser{Reader: strings.NewReader(""), OnClose: func() { called = true }}

	assert.NoError(t, rc.Close())
	assert.True(t, called)
}

func TestWrappedReadCloser_CloseWithoutCallback(t *testing.T) {
	rc := &wrappedReadCloser{Reader: strings.NewReader("")}

	assert.NoError(t, rc.Close())
}

func TestBodyAllowed(t *testing.T) {
	assert.True(t, bodyAllowed(http.StatusOK))
	assert.True(t, bodyAllowed(http.StatusCreated))
	assert.True(t, bodyAllowed(http.StatusNotFound))
	assert.False(t, bodyAllowed(http.StatusNoContent))
	assert.False(t, bodyAllowed(http.StatusNotModified))
	assert.False(t, bodyAllowed(http.StatusContinue))
}
