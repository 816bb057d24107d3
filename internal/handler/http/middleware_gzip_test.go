package http

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thirstydigital/django/internal/config"
	"github.com/thirstydigital/django/internal/logger"
)

func newGZipTestHandler(useETags bool) *Handler {
	return &Handler{
		settings: &config.Settings{
			App: config.App{UseETags: useETags},
		},
		logger: logger.Nop(),
	}
}

// compressiblePayload is comfortably over the 200-byte minimum and highly
// repetitive, so its gzipped form is always smaller.
var compressiblePayload = []byte(strings.Repeat("A fairly repetitive response body. ", 30))

func gunzip(t *testing.T, b []byte) []byte {
	t.Helper()
	zr, err := gzip.NewReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer zr.Close()
	plain, err := io.ReadAll(zr)
	require.NoError(t, err)
	return plain
}

func serveGZip(t *testing.T, h *Handler, inner http.HandlerFunc, mutate func(r *http.Request)) *httptest.ResponseRecorder {
	t.Helper()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Accept-Encoding", "gzip, deflate")
	if mutate != nil {
		mutate(r)
	}
	w := httptest.NewRecorder()
	h.withGZip(inner).ServeHTTP(w, r)
	return w
}

func TestGZip_ShortResponseUnchanged(t *testing.T) {
	h := newGZipTestHandler(false)
	short := []byte("tiny body")

	w := serveGZip(t, h, func(w http.ResponseWriter, r *http.Request) {
		w.Write(short)
	}, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, short, w.Body.Bytes())
	assert.Empty(t, w.Header().Get("Content-Encoding"))
	assert.Empty(t, w.Header().Get("Vary"), "short responses never even attempt compression")
}

func TestGZip_CompressesLargeBody(t *testing.T) {
	h := newGZipTestHandler(false)

	w := serveGZip(t, h, func(w http.ResponseWriter, r *http.Request) {
		w.Write(compressiblePayload)
	}, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "gzip", w.Header().Get("Content-Encoding"))
	assert.Equal(t, "Accept-Encoding", w.Header().Get("Vary"))
	assert.Equal(t, fmt.Sprint(w.Body.Len()), w.Header().Get("Content-Length"))
	assert.Less(t, w.Body.Len(), len(compressiblePayload))
	assert.Equal(t, compressiblePayload, gunzip(t, w.Body.Bytes()))
}

func TestGZip_AcceptEncodingGate(t *testing.T) {
	tests := []struct {
		name           string
		acceptEncoding string
		wantCompressed bool
	}{
		{name: "plain gzip token", acceptEncoding: "gzip", wantCompressed: true},
		{name: "gzip among others", acceptEncoding: "deflate, gzip;q=0.8", wantCompressed: true},
		{name: "deflate only", acceptEncoding: "deflate", wantCompressed: false},
		{name: "gzip as substring does not count", acceptEncoding: "ungzip", wantCompressed: false},
		{name: "empty header", acceptEncoding: "", wantCompressed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newGZipTestHandler(false)

			w := serveGZip(t, h, func(w http.ResponseWriter, r *http.Request) {
				w.Write(compressiblePayload)
			}, func(r *http.Request) {
				r.Header.Set("Accept-Encoding", tt.acceptEncoding)
			})

			if tt.wantCompressed {
				assert.Equal(t, "gzip", w.Header().Get("Content-Encoding"))
			} else {
				assert.Empty(t, w.Header().Get("Content-Encoding"))
				assert.Equal(t, compressiblePayload, w.Body.Bytes())
			}
			// the Vary header is patched whenever compression was attempted,
			// whatever the outcome
			assert.Equal(t, "Accept-Encoding", w.Header().Get("Vary"))
		})
	}
}

func TestGZip_ExistingContentEncodingPassesThrough(t *testing.T) {
	h := newGZipTestHandler(false)

	w := serveGZip(t, h, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Encoding", "br")
		w.Write(compressiblePayload)
	}, nil)

	assert.Equal(t, "br", w.Header().Get("Content-Encoding"))
	assert.Equal(t, compressiblePayload, w.Body.Bytes())
	assert.Equal(t, "Accept-Encoding", w.Header().Get("Vary"))
}

func TestGZip_MSIEContentTypeGate(t *testing.T) {
	tests := []struct {
		name           string
		userAgent      string
		contentType    string
		wantCompressed bool
	}{
		{name: "msie with html", userAgent: "Mozilla/4.0 (compatible; MSIE 6.0)", contentType: "text/html", wantCompressed: true},
		{name: "msie with image", userAgent: "Mozilla/4.0 (compatible; MSIE 6.0)", contentType: "image/png", wantCompressed: false},
		{name: "msie with javascript", userAgent: "Mozilla/4.0 (compatible; MSIE 6.0)", contentType: "text/javascript", wantCompressed: false},
		{name: "modern browser with image", userAgent: "Mozilla/5.0 Firefox/120.0", contentType: "image/png", wantCompressed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newGZipTestHandler(false)

			w := serveGZip(t, h, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", tt.contentType)
				w.Write(compressiblePayload)
			}, func(r *http.Request) {
				r.Header.Set("User-Agent", tt.userAgent)
			})

			if tt.wantCompressed {
				assert.Equal(t, "gzip", w.Header().Get("Content-Encoding"))
			} else {
				assert.Empty(t, w.Header().Get("Content-Encoding"))
				assert.Equal(t, compressiblePayload, w.Body.Bytes())
			}
		})
	}
}

func TestGZip_IncompressibleBodyPassesThrough(t *testing.T) {
	h := newGZipTestHandler(false)

	// already-gzipped data only grows when compressed again
	incompressible := compressBytes(compressiblePayload)
	require.GreaterOrEqual(t, len(incompressible), gzipMinLength)

	w := serveGZip(t, h, func(w http.ResponseWriter, r *http.Request) {
		w.Write(incompressible)
	}, nil)

	assert.Empty(t, w.Header().Get("Content-Encoding"))
	assert.Equal(t, incompressible, w.Body.Bytes())
	assert.Equal(t, "Accept-Encoding", w.Header().Get("Vary"))
}

func TestGZip_PatchesExistingVary(t *testing.T) {
	h := newGZipTestHandler(false)

	w := serveGZip(t, h, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Cookie")
		w.Write(compressiblePayload)
	}, nil)

	assert.Equal(t, "Cookie, Accept-Encoding", w.Header().Get("Vary"))
}

func TestGZip_VaryNotDuplicated(t *testing.T) {
	h := newGZipTestHandler(false)

	w := serveGZip(t, h, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "accept-encoding")
		w.Write(compressiblePayload)
	}, nil)

	assert.Equal(t, "accept-encoding", w.Header().Get("Vary"))
}

func TestGZip_ETag(t *testing.T) {
	h := newGZipTestHandler(true)

	handler := func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "sessionid", Value: "abc"})
		w.Write(compressiblePayload)
	}

	// first request: learn the ETag
	first := serveGZip(t, h, handler, nil)
	etag := first.Header().Get("ETag")
	require.NotEmpty(t, etag)
	assert.True(t, strings.HasSuffix(etag, `;gzip"`), "ETag %q should carry the ;gzip marker", etag)
	assert.Equal(t, "gzip", first.Header().Get("Content-Encoding"))

	// conditional request with the tag: 304, no body, cookies preserved
	second := serveGZip(t, h, handler, func(r *http.Request) {
		r.Header.Set("If-None-Match", etag)
	})
	assert.Equal(t, http.StatusNotModified, second.Code)
	assert.Empty(t, second.Body.Bytes())
	assert.Empty(t, second.Header().Get("Content-Encoding"))
	assert.Empty(t, second.Header().Get("Content-Length"))
	assert.NotEmpty(t, second.Header().Get("Set-Cookie"), "cookies must survive the 304 short-circuit")

	// mismatching tag: full response again
	third := serveGZip(t, h, handler, func(r *http.Request) {
		r.Header.Set("If-None-Match", `"something-else"`)
	})
	assert.Equal(t, http.StatusOK, third.Code)
	assert.Equal(t, etag, third.Header().Get("ETag"))
}

func TestGZip_ETagSplicesHandlerTag(t *testing.T) {
	h := newGZipTestHandler(true)

	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("ETag", `"v2.0"`)
		w.Write(compressiblePayload)
	}

	first := serveGZip(t, h, handler, nil)
	assert.Equal(t, "gzip", first.Header().Get("Content-Encoding"))
	assert.Equal(t, `"v2.0;gzip"`, first.Header().Get("ETag"),
		"a handler-set validator must be marked, not replaced")

	second := serveGZip(t, h, handler, func(r *http.Request) {
		r.Header.Set("If-None-Match", `"v2.0;gzip"`)
	})
	assert.Equal(t, http.StatusNotModified, second.Code)
	assert.Empty(t, second.Body.Bytes())
}

func TestGZip_ETagNo304OnNon2xx(t *testing.T) {
	h := newGZipTestHandler(true)

	handler := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write(compressiblePayload)
	}

	first := serveGZip(t, h, handler, nil)
	etag := first.Header().Get("ETag")
	require.NotEmpty(t, etag)

	second := serveGZip(t, h, handler, func(r *http.Request) {
		r.Header.Set("If-None-Match", etag)
	})
	assert.Equal(t, http.StatusNotFound, second.Code)
	assert.NotEmpty(t, second.Body.Bytes())
}

func TestGZip_ETagsDisabled(t *testing.T) {
	h := newGZipTestHandler(false)

	w := serveGZip(t, h, func(w http.ResponseWriter, r *http.Request) {
		w.Write(compressiblePayload)
	}, nil)

	assert.Empty(t, w.Header().Get("ETag"))
}

func TestGZip_StreamingResponse(t *testing.T) {
	h := newGZipTestHandler(false)

	chunk1 := []byte(strings.Repeat("first chunk of the stream. ", 10))
	chunk2 := []byte(strings.Repeat("second chunk of the stream. ", 10))

	w := serveGZip(t, h, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", "54321")
		w.Write(chunk1)
		w.(http.Flusher).Flush()
		w.Write(chunk2)
	}, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "gzip", w.Header().Get("Content-Encoding"))
	assert.Empty(t, w.Header().Get("Content-Length"), "compressed length is unknown while streaming")
	assert.Equal(t, "Accept-Encoding", w.Header().Get("Vary"))
	assert.Equal(t, append(append([]byte{}, chunk1...), chunk2...), gunzip(t, w.Body.Bytes()))
}

func TestGZip_StreamingWithoutGzipSupport(t *testing.T) {
	h := newGZipTestHandler(false)

	chunk := []byte(strings.Repeat("streamed data. ", 20))

	w := serveGZip(t, h, func(w http.ResponseWriter, r *http.Request) {
		w.Write(chunk)
		w.(http.Flusher).Flush()
	}, func(r *http.Request) {
		r.Header.Set("Accept-Encoding", "identity")
	})

	assert.Empty(t, w.Header().Get("Content-Encoding"))
	assert.Equal(t, chunk, w.Body.Bytes())
}

func TestGZip_StreamingSplicesExistingETag(t *testing.T) {
	h := newGZipTestHandler(true)

	w := serveGZip(t, h, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("ETag", `"abcdef123456"`)
		w.Write([]byte("streamed"))
		w.(http.Flusher).Flush()
	}, nil)

	assert.Equal(t, `"abcdef123456;gzip"`, w.Header().Get("ETag"))
	assert.Equal(t, "gzip", w.Header().Get("Content-Encoding"))
}

func TestGZip_StreamingConditional304(t *testing.T) {
	h := newGZipTestHandler(true)

	w := serveGZip(t, h, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("ETag", `"abcdef123456"`)
		http.SetCookie(w, &http.Cookie{Name: "sessionid", Value: "abc"})
		w.Write([]byte("streamed"))
		w.(http.Flusher).Flush()
		w.Write([]byte("more data after the short-circuit is dropped"))
	}, func(r *http.Request) {
		r.Header.Set("If-None-Match", `"abcdef123456;gzip"`)
	})

	assert.Equal(t, http.StatusNotModified, w.Code)
	assert.Empty(t, w.Body.Bytes())
	assert.NotEmpty(t, w.Header().Get("Set-Cookie"))
}

func TestGZip_DecompressesRequestBody(t *testing.T) {
	h := newGZipTestHandler(false)

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte("request payload"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	r := httptest.NewRequest(http.MethodPost, "/", &buf)
	r.Header.Set("Content-Encoding", "gzip")
	w := httptest.NewRecorder()

	var seen []byte
	h.withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = io.ReadAll(r.Body)
		r.Body.Close()
	})).ServeHTTP(w, r)

	assert.Equal(t, []byte("request payload"), seen)
}

func TestGZip_RejectsCorruptRequestBody(t *testing.T) {
	h := newGZipTestHandler(false)

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("not gzip at all"))
	r.Header.Set("Content-Encoding", "gzip")
	w := httptest.NewRecorder()

	h.withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run for a corrupt request body")
	})).ServeHTTP(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
