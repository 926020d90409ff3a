package streams

import (
	"io"

	"github.com/bokysan/baseio/internal/util/buffers"
)

// SafeReader wraps an io.ReadCloser so that `Close()` may be called any number of
// times. Only the first call closes the underlying stream; later calls succeed
// without doing anything. A codec pipeline typically closes each stage separately,
// so the source may be closed both directly and through its wrapper.
type SafeReader struct {
	io.ReadCloser
	closed bool
}

func NewSafeReader(wrapped io.ReadCloser) *SafeReader {
	if sr, ok := wrapped.(*SafeReader); ok {
		return sr
	}
	return &SafeReader{
		ReadCloser: wrapped,
	}
}

func (sr *SafeReader) WriteTo(w io.Writer) (n int64, err error) {
	if o, ok := sr.ReadCloser.(io.WriterTo); ok {
		return o.WriteTo(w)
	}
	return io.CopyBuffer(w, sr.ReadCloser, make([]byte, buffers.BufferSize))
}

// Close closes the underlying stream on the first call and does nothing afterwards.
func (sr *SafeReader) Close() error {
	if sr.closed {
		return nil
	}
	sr.closed = true
	return LogClose(sr.ReadCloser)
}

// Closed reports whether Close has been called at least once.
func (sr *SafeReader) Closed() bool {
	return sr.closed
}

// Unwrap returns the embedded io.ReadCloser
func (sr *SafeReader) Unwrap() io.ReadCloser {
	return sr.ReadCloser
}

// SafeWriter is the writing counterpart of SafeReader: an io.WriteCloser whose
// `Close()` is idempotent.
type SafeWriter struct {
	io.WriteCloser
	closed bool
}

func NewSafeWriter(wrapped io.WriteCloser) *SafeWriter {
	if sw, ok := wrapped.(*SafeWriter); ok {
		return sw
	}
	return &SafeWriter{
		WriteCloser: wrapped,
	}
}

func (sw *SafeWriter) ReadFrom(r io.Reader) (n int64, err error) {
	if o, ok := sw.WriteCloser.(io.ReaderFrom); ok {
		return o.ReadFrom(r)
	}
	return io.CopyBuffer(sw.WriteCloser, r, make([]byte, buffers.BufferSize))
}

// Close closes the underlying stream on the first call and does nothing afterwards.
func (sw *SafeWriter) Close() error {
	if sw.closed {
		return nil
	}
	sw.closed = true
	return LogClose(sw.WriteCloser)
}

// Closed reports whether Close has been called at least once.
func (sw *SafeWriter) Closed() bool {
	return sw.closed
}

// Unwrap returns the embedded io.WriteCloser
func (sw *SafeWriter) Unwrap() io.WriteCloser {
	return sw.WriteCloser
}
