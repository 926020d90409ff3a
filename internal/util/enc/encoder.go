package enc

import (
	"io"

	"github.com/pkg/errors"
)

// flusher is implemented by sinks which buffer their output, e.g. bufio.Writer.
type flusher interface {
	Flush() error
}

// Encoder converts a stream of raw bytes into encoded symbols, writing them to the
// underlying io.Writer. Bytes are accumulated into a group of Encoding.GroupBytes()
// bytes; every full group is converted and written out immediately. Close converts
// the remaining partial group, fills the unused symbol slots with padding characters
// and flushes the sink.
//
// An Encoder is not safe for concurrent use; callers that share one must serialize
// access themselves.
type Encoder struct {
	enc Encoding
	w   io.Writer

	// group accumulates the raw bytes of the current group, most significant first.
	group uint64
	count int

	// out is scratch space for one encoded group.
	out [8]byte
}

// Write encodes len(p) bytes from p. Full groups are converted and written to the
// underlying writer as they complete; a trailing partial group is retained until
// the next Write or Close. Write errors of the underlying writer are returned
// as-is, with n reporting how many input bytes were consumed beforehand.
func (e *Encoder) Write(p []byte) (n int, err error) {
	for _, b := range p {
		e.group = e.group<<8 | uint64(b)
		e.count++
		if e.count == e.enc.groupBytes {
			if err = e.emit(e.enc.groupSymbols, 0); err != nil {
				return n, err
			}
		}
		n++
	}
	return n, nil
}

// Close completes the encoding process: it converts the pending partial group (if
// any), emits the required padding characters and flushes the underlying writer.
// It does not close the underlying writer -- the caller owns its lifecycle. Calling
// Close again produces no further output.
func (e *Encoder) Close() error {
	if e.count > 0 {
		held := uint(e.count) * 8
		symbols := int((held + e.enc.symbolBits - 1) / e.enc.symbolBits)

		// Left-align the held bits on a symbol boundary so that the final symbol
		// carries the remaining bits in its high positions.
		e.group <<= uint(symbols)*e.enc.symbolBits - held

		if err := e.emit(symbols, e.enc.groupSymbols-symbols); err != nil {
			return err
		}
	}

	if f, ok := e.w.(flusher); ok {
		if err := f.Flush(); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}

// emit converts the group accumulator into `symbols` alphabet characters followed
// by `padding` padding characters, writes them out and resets the group.
func (e *Encoder) emit(symbols, padding int) error {
	out := e.out[:symbols+padding]

	mask := uint64(1)<<e.enc.symbolBits - 1
	for i := symbols - 1; i >= 0; i-- {
		out[i] = e.enc.alphabet.Symbol(int(e.group & mask))
		e.group >>= e.enc.symbolBits
	}
	for i := symbols; i < symbols+padding; i++ {
		out[i] = PadChar
	}

	e.group = 0
	e.count = 0

	if _, err := e.w.Write(out); err != nil {
		return errors.WithStack(err)
	}
	return nil
}
