package enc

import (
	"io"

	"github.com/pkg/errors"
)

// Decoder converts a stream of encoded symbols read from the underlying io.Reader
// back into raw bytes. Characters which are neither part of the alphabet nor the
// padding character are skipped, so encoded data may contain line breaks or other
// whitespace. A structurally invalid stream stops the decode with an error wrapping
// ErrMalformedStream; the error is sticky and the Decoder must be discarded.
//
// A Decoder is not safe for concurrent use; callers that share one must serialize
// access themselves.
type Decoder struct {
	enc Encoding
	r   io.Reader

	// in buffers raw input between reads of the underlying reader.
	in    [512]byte
	inPos int
	inLen int

	// out holds the decoded bytes of the most recent group.
	out    [5]byte
	outPos int
	outLen int

	// err, once set, is returned by every subsequent call. It is either io.EOF,
	// a malformed-stream error or an error of the underlying reader.
	err error
}

// Read decodes up to len(p) bytes into p. It returns io.EOF once the underlying
// input is exhausted on a clean group boundary. A truncated or structurally
// invalid stream yields an error wrapping ErrMalformedStream.
func (d *Decoder) Read(p []byte) (n int, err error) {
	for n < len(p) {
		if d.outPos == d.outLen {
			if err = d.fill(); err != nil {
				if n > 0 && err == io.EOF {
					return n, nil
				}
				return n, err
			}
		}
		c := copy(p[n:], d.out[d.outPos:d.outLen])
		d.outPos += c
		n += c
	}
	return n, nil
}

// ReadByte decodes and returns the next byte, implementing io.ByteReader.
func (d *Decoder) ReadByte() (byte, error) {
	if d.outPos == d.outLen {
		if err := d.fill(); err != nil {
			return 0, err
		}
	}
	b := d.out[d.outPos]
	d.outPos++
	return b, nil
}

// fill reads and classifies input characters until a whole group of symbols is
// assembled, then validates the group and unpacks it into the output buffer.
// At a clean end of input it returns io.EOF; a group truncated by end of input
// is malformed.
func (d *Decoder) fill() error {
	if d.err != nil {
		return d.err
	}

	var (
		group   uint64
		slots   int
		symbols int
	)

	for slots < d.enc.groupSymbols {
		c, err := d.nextChar()
		if err == io.EOF {
			if slots == 0 {
				d.err = io.EOF
			} else {
				d.err = d.enc.malformedf("truncated group of %d characters at end of input", slots)
			}
			return d.err
		} else if err != nil {
			d.err = err
			return d.err
		}

		if v := d.enc.alphabet.Value(c); v >= 0 {
			if symbols < slots {
				// A padding character was already seen in this group.
				d.err = d.enc.malformedf("symbol %q follows a padding character", c)
				return d.err
			}
			group = group<<d.enc.symbolBits | uint64(v)
			symbols++
			slots++
		} else if c == PadChar {
			if slots < 2 {
				d.err = d.enc.malformedf("padding character in slot %d", slots)
				return d.err
			}
			slots++
		}
		// Any other character is not part of the stream and is skipped.
	}

	count := symbols * int(d.enc.symbolBits) / 8
	if count == 0 || (count*8+int(d.enc.symbolBits)-1)/int(d.enc.symbolBits) != symbols {
		d.err = d.enc.malformedf("%d symbols in a padded group decode to no whole number of bytes", symbols)
		return d.err
	}

	// Drop the unused low bits of the final symbol and unpack the rest into bytes,
	// most significant first.
	group >>= uint(symbols)*d.enc.symbolBits - uint(count)*8
	for i := count - 1; i >= 0; i-- {
		d.out[i] = byte(group)
		group >>= 8
	}
	d.outPos = 0
	d.outLen = count

	return nil
}

// nextChar returns the next raw input character, refilling the internal buffer
// from the underlying reader as needed.
func (d *Decoder) nextChar() (byte, error) {
	for d.inPos == d.inLen {
		n, err := d.r.Read(d.in[:])
		if n == 0 && err != nil {
			if err == io.EOF {
				return 0, io.EOF
			}
			return 0, errors.WithStack(err)
		}
		d.inPos = 0
		d.inLen = n
	}
	c := d.in[d.inPos]
	d.inPos++
	return c, nil
}
