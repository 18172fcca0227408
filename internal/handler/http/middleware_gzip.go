package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/MKhiriev/go-identity/internal/app"
)

var (
	gzipWriters = sync.Pool{New: func() any { return gzip.NewWriter(io.Discard) }}
	gzipReaders = sync.Pool{New: func() any { return new(gzip.Reader) }}
)

func hasGzip(header string) bool {
	return strings.Contains(header, "gzip")
}

// withGZip inflates gzip request bodies and compresses responses for
// clients that accept gzip.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hasGzip(r.Header.Get("Content-Encoding")) && r.Body != nil {
			if err := inflateBody(r); err != nil {
				writeErrorMessage(w, r, err, http.StatusBadRequest, app.MsgInvalidGzip)
				return
			}
		}

		if !hasGzip(r.Header.Get("Accept-Encoding")) {
			next.ServeHTTP(w, r)
			return
		}

		gw := &gzipResponseWriter{ResponseWriter: w}
		defer gw.finish()
		next.ServeHTTP(gw, r)
	})
}

// inflateBody swaps r.Body for a pooled gzip reader over it. The reader
// returns to the pool when the server closes the body.
func inflateBody(r *http.Request) error {
	zr := gzipReaders.Get().(*gzip.Reader)
	if err := zr.Reset(r.Body); err != nil {
		gzipReaders.Put(zr)
		return err
	}

	r.Body = &pooledGzipBody{Reader: zr, source: r.Body}
	r.Header.Del("Content-Encoding")
	r.ContentLength = -1
	return nil
}

type pooledGzipBody struct {
	*gzip.Reader
	source io.Closer
	once   sync.Once
}

func (b *pooledGzipBody) Close() error {
	var err error
	b.once.Do(func() {
		_ = b.Reader.Close()
		gzipReaders.Put(b.Reader)
		err = b.source.Close()
	})
	return err
}

// gzipResponseWriter picks a pooled gzip.Writer on the first header write,
// unless the status carries no body (204, 304).
type gzipResponseWriter struct {
	http.ResponseWriter

	zw          *gzip.Writer
	wroteHeader bool
}

func (w *gzipResponseWriter) WriteHeader(status int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true

	if status != http.StatusNoContent && status != http.StatusNotModified {
		h := w.Header()
		h.Set("Content-Encoding", "gzip")
		h.Add("Vary", "Accept-Encoding")
		h.Del("Content-Length")

		w.zw = gzipWriters.Get().(*gzip.Writer)
		w.zw.Reset(w.ResponseWriter)
	}
	w.ResponseWriter.WriteHeader(status)
}

func (w *gzipResponseWriter) Write(p []byte) (int, error) {
	w.WriteHeader(http.StatusOK)
	if w.zw == nil {
		return w.ResponseWriter.Write(p)
	}
	return w.zw.Write(p)
}

func (w *gzipResponseWriter) finish() {
	if w.zw == nil {
		return
	}
	_ = w.zw.Close()
	gzipWriters.Put(w.zw)
	w.zw = nil
}
