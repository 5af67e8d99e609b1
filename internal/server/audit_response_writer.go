package server

import (
	"bytes"
	"io"
	"net/http"
)

// maxAuditBody caps how much of a request or response body is kept for the audit entry.
const maxAuditBody = 4 << 10

type responseWriterWrapper struct {
	http.ResponseWriter
	statusCode  int
	wroteHeader bool
	buffer      bytes.Buffer
}

func newResponseWriterWrapper(w http.ResponseWriter) *responseWriterWrapper {
	return &responseWriterWrapper{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (w *responseWriterWrapper) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *responseWriterWrapper) Write(b []byte) (int, error) {
	w.wroteHeader = true
	keepPrefix(&w.buffer, b)
	return w.ResponseWriter.Write(b)
}

func (w *responseWriterWrapper) StatusCode() int {
	return w.statusCode
}

func (w *responseWriterWrapper) Body() []byte {
	return w.buffer.Bytes()
}

// bodyRecorder keeps the first maxAuditBody bytes the handler reads from a
// request body. It never reads ahead of the handler.
type bodyRecorder struct {
	io.ReadCloser
	buffer bytes.Buffer
}

func newBodyRecorder(body io.ReadCloser) *bodyRecorder {
	return &bodyRecorder{ReadCloser: body}
}

func (r *bodyRecorder) Read(p []byte) (int, error) {
	n, err := r.ReadCloser.Read(p)
	keepPrefix(&r.buffer, p[:n])
	return n, err
}

func (r *bodyRecorder) Body() []byte {
	return r.buffer.Bytes()
}

func keepPrefix(buf *bytes.Buffer, b []byte) {
	room := maxAuditBody - buf.Len()
	if room <= 0 {
		return
	}
	if len(b) > room {
		b = b[:room]
	}
	buf.Write(b)
}
