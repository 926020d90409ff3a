package streams

import (
	"io"
)

// CounterReader wraps an io.Reader and counts the bytes read through it. Placed
// upstream or downstream of a codec stage, it reports the raw or encoded size of
// the transferred data without buffering anything itself.
//
// The counter is not synchronized; wrap access externally when the stream is
// driven from more than one goroutine.
type CounterReader struct {
	io.Reader
	count int64
}

func NewCounterReader(wrapped io.Reader) *CounterReader {
	return &CounterReader{
		Reader: wrapped,
	}
}

func (cr *CounterReader) Read(p []byte) (n int, err error) {
	n, err = cr.Reader.Read(p)
	cr.count += int64(n)
	return n, err
}

// Count returns the number of bytes read so far.
func (cr *CounterReader) Count() int64 {
	return cr.count
}

// Reset sets the counter back to zero.
func (cr *CounterReader) Reset() {
	cr.count = 0
}

// CounterWriter is the writing counterpart of CounterReader.
type CounterWriter struct {
	io.Writer
	count int64
}

func NewCounterWriter(wrapped io.Writer) *CounterWriter {
	return &CounterWriter{
		Writer: wrapped,
	}
}

func (cw *CounterWriter) Write(p []byte) (n int, err error) {
	n, err = cw.Writer.Write(p)
	cw.count += int64(n)
	return n, err
}

// Count returns the number of bytes written so far.
func (cw *CounterWriter) Count() int64 {
	return cw.count
}

// Reset sets the counter back to zero.
func (cw *CounterWriter) Reset() {
	cw.count = 0
}
