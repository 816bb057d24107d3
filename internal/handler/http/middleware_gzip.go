package http

import (
	"bytes"
	"compress/gzip"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"sync"
)

// Compressing really short responses is not worth it: the gzip framing alone
// eats most of the gain and some browsers choke on tiny gzipped bodies.
const gzipMinLength = 200

// reAcceptsGzip matches a gzip token in Accept-Encoding. A word-boundary
// match, so "deflate" or "ungzip" never qualify.
var reAcceptsGzip = regexp.MustCompile(`\bgzip\b`)

var gzipWriterPool = sync.Pool{
	New: func() any {
		return gzip.NewWriter(nil)
	},
}

var gzipReaderPool = sync.Pool{
	New: func() any {
		return new(gzip.Reader)
	},
}

// withGZip conditionally compresses response bodies for clients that allow
// gzip, and transparently decompresses gzip-encoded request bodies.
//
// The response is buffered and examined after the downstream handler
// returns. It passes through unchanged when any of these hold:
//   - the body is shorter than 200 bytes,
//   - a Content-Encoding header is already set,
//   - the client is a legacy MSIE browser and the content type is not plain
//     text (or is javascript),
//   - the Accept-Encoding header lacks a gzip token,
//   - the compressed body would not be smaller than the original.
//
// "Vary: Accept-Encoding" is patched in whenever compression is attempted,
// regardless of outcome, so caches key on the request's encoding support.
//
// With ETags enabled, compressed responses are tagged with an ETag derived
// from the compressed body and marked ";gzip"; a matching If-None-Match on a
// 2xx response short-circuits to 304 Not Modified, preserving cookies.
//
// A handler that calls Flush switches the response to streaming mode: the
// body is fed through a gzip writer as it is produced and Content-Length is
// dropped, since the compressed size is unknown until the stream ends.
func (h *Handler) withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.Header.Get("Content-Encoding"), "gzip") && r.Body != nil {
			gzipReader := gzipReaderPool.Get().(*gzip.Reader)
			if err := gzipReader.Reset(r.Body); err != nil {
				gzipReaderPool.Put(gzipReader)
				http.Error(w, "Invalid gzip data", http.StatusBadRequest)
				return
			}

			r.Body = &wrappedReadCloser{
				Reader: gzipReader,
				OnClose: func() {
					gzipReader.Close()
					gzipReaderPool.Put(gzipReader)
				},
			}
			r.Header.Del("Content-Encoding")
		}

		gw := &gzipResponseWriter{
			rw:       w,
			r:        r,
			status:   http.StatusOK,
			useETags: h.settings.App.UseETags,
		}

		next.ServeHTTP(gw, r)

		gw.finish()
	})
}

type wrappedReadCloser struct {
	io.Reader
	OnClose func()
}

func (w *wrappedReadCloser) Close() error {
	if w.OnClose != nil {
		w.OnClose()
	}
	return nil
}

// gzipResponseWriter defers the downstream handler's response: headers and
// status are recorded, the body accumulates in a buffer, and nothing reaches
// the client until finish() has decided whether to compress.
//
// The first Flush call abandons buffering for streaming mode; from then on
// writes go straight to the client, compressed when the request qualified.
type gzipResponseWriter struct {
	rw http.ResponseWriter
	r  *http.Request

	status   int
	buf      bytes.Buffer
	useETags bool

	// streaming is set once Flush switches the response to pass-as-you-go
	// delivery. zw is non-nil only when the streamed body is compressed.
	streaming bool
	zw        *gzip.Writer

	// discard drops all writes after a streaming 304 short-circuit.
	discard bool

	done bool
}

func (g *gzipResponseWriter) Header() http.Header {
	return g.rw.Header()
}

func (g *gzipResponseWriter) WriteHeader(statusCode int) {
	if g.streaming || g.done {
		return
	}
	g.status = statusCode
}

func (g *gzipResponseWriter) Write(b []byte) (int, error) {
	if g.discard {
		return len(b), nil
	}
	if g.streaming {
		if g.zw != nil {
			return g.zw.Write(b)
		}
		return g.rw.Write(b)
	}
	return g.buf.Write(b)
}

// Flush switches the response to streaming mode and forwards the flush to
// the client. The compression decision is made on the first call, before
// any byte leaves the buffer.
func (g *gzipResponseWriter) Flush() {
	if g.done || g.discard {
		return
	}
	if !g.streaming {
		g.startStreaming()
	}
	if g.discard {
		return
	}
	if g.zw != nil {
		g.zw.Flush()
	}
	if f, ok := g.rw.(http.Flusher); ok {
		f.Flush()
	}
}

// finish completes the response once the downstream handler has returned.
// In streaming mode it only closes the compressor; in buffered mode it runs
// the full decision tree.
func (g *gzipResponseWriter) finish() {
	if g.done {
		return
	}
	g.done = true

	if g.streaming {
		if g.zw != nil {
			g.zw.Close()
			gzipWriterPool.Put(g.zw)
			g.zw = nil
		}
		return
	}

	body := g.buf.Bytes()

	if len(body) < gzipMinLength {
		g.passthrough(body)
		return
	}

	if !g.attemptCompression() {
		g.passthrough(body)
		return
	}

	compressed := compressBytes(body)
	if len(compressed) >= len(body) {
		g.passthrough(body)
		return
	}

	header := g.rw.Header()
	header.Set("Content-Encoding", "gzip")
	header.Set("Content-Length", strconv.Itoa(len(compressed)))

	if g.useETags {
		// A handler-set validator is kept and marked; the md5 tag is only
		// minted when the handler supplied none.
		etag := header.Get("ETag")
		if strings.HasSuffix(etag, `"`) {
			etag = strings.TrimSuffix(etag, `"`) + `;gzip"`
		} else {
			etag = fmt.Sprintf(`"%s;gzip"`, md5Hex(compressed))
		}
		if g.notModified(etag) {
			return
		}
		header.Set("ETag", etag)
	}

	g.rw.WriteHeader(g.status)
	g.rw.Write(compressed)
}

// attemptCompression runs the gates shared by buffered and streaming
// delivery. It patches the Vary header as a side effect: any response that
// gets this far varies by Accept-Encoding whether or not it ends up
// compressed.
func (g *gzipResponseWriter) attemptCompression() bool {
	header := g.rw.Header()

	patchVary(header, "Accept-Encoding")

	if header.Get("Content-Encoding") != "" {
		return false
	}

	// MSIE has issues with gzipped responses of various content types.
	if strings.Contains(strings.ToLower(g.r.UserAgent()), "msie") {
		ctype := strings.ToLower(header.Get("Content-Type"))
		if !strings.HasPrefix(ctype, "text/") || strings.Contains(ctype, "javascript") {
			return false
		}
	}

	return reAcceptsGzip.MatchString(g.r.Header.Get("Accept-Encoding"))
}

// startStreaming commits the response to streaming delivery. The size gate
// does not apply: the total length is unknown, so a qualifying stream is
// always compressed.
func (g *gzipResponseWriter) startStreaming() {
	header := g.rw.Header()
	compress := g.attemptCompression()

	if compress {
		header.Set("Content-Encoding", "gzip")
		header.Del("Content-Length")

		if g.useETags {
			if etag := header.Get("ETag"); strings.HasSuffix(etag, `"`) {
				etag = strings.TrimSuffix(etag, `"`) + `;gzip"`
				if g.notModified(etag) {
					g.discard = true
					g.done = true
					return
				}
				header.Set("ETag", etag)
			}
		}

		g.zw = gzipWriterPool.Get().(*gzip.Writer)
		g.zw.Reset(g.rw)
	}

	g.streaming = true
	g.rw.WriteHeader(g.status)

	buffered := g.buf.Bytes()
	if len(buffered) > 0 {
		if g.zw != nil {
			g.zw.Write(buffered)
		} else {
			g.rw.Write(buffered)
		}
		g.buf.Reset()
	}
}

// notModified short-circuits to 304 when the client already holds the body
// behind etag. Set-Cookie headers survive; the content headers describe a
// body that is not being sent and are dropped.
func (g *gzipResponseWriter) notModified(etag string) bool {
	if g.status < 200 || g.status >= 300 {
		return false
	}
	if g.r.Header.Get("If-None-Match") != etag {
		return false
	}

	header := g.rw.Header()
	header.Del("Content-Encoding")
	header.Del("Content-Length")
	header.Del("Content-Type")
	g.rw.WriteHeader(http.StatusNotModified)
	return true
}

// passthrough sends the buffered body exactly as the handler produced it.
func (g *gzipResponseWriter) passthrough(body []byte) {
	g.rw.WriteHeader(g.status)
	if len(body) > 0 {
		g.rw.Write(body)
	}
}

// patchVary appends newValue to the Vary header unless an equal token is
// already present, so repeated middleware passes stay idempotent.
func patchVary(header http.Header, newValue string) {
	existing := header.Get("Vary")
	if existing == "" {
		header.Set("Vary", newValue)
		return
	}

	for _, token := range strings.Split(existing, ",") {
		if strings.EqualFold(strings.TrimSpace(token), newValue) {
			return
		}
	}
	header.Set("Vary", existing+", "+newValue)
}

func compressBytes(b []byte) []byte {
	var buf bytes.Buffer

	zw := gzipWriterPool.Get().(*gzip.Writer)
	zw.Reset(&buf)
	zw.Write(b)
	zw.Close()
	gzipWriterPool.Put(zw)

	return buf.Bytes()
}

func md5Hex(b []byte) string {
	sum := md5.Sum(b)
	return hex.EncodeToString(sum[:])
}
