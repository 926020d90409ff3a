package enc

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// ErrMalformedStream is reported by the Decoder when the incoming character stream
// violates the RFC 4648 structure: a truncated non-padded group at the end of input,
// padding in the first two slots of a group, a real symbol following a padding
// character within a group, or an invalid number of real symbols in the final group.
// Errors returned by the Decoder wrap this value, so use `errors.Cause` (or
// `errors.Is` on newer toolchains) to test for it.
var ErrMalformedStream = errors.New("malformed stream")

const (
	b64Symbols    = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	b64urlSymbols = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"
	b32Symbols    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"
	b32hexSymbols = "0123456789ABCDEFGHIJKLMNOPQRSTUV"
)

// Encoding ties an Alphabet to its group geometry -- how many raw bytes and encoded
// symbols make up one conversion group, and how many bits each symbol carries. Both
// RFC 4648 families are handled by the same Encoder/Decoder engine; only this value
// differs between them.
type Encoding struct {
	name string

	alphabet Alphabet

	// groupBytes raw bytes convert to groupSymbols symbols of symbolBits bits each.
	groupBytes   int
	groupSymbols int
	symbolBits   uint
}

// The four encodings of RFC 4648, unwrapped (no line-length limiting).
var (
	Base64    = Encoding{name: "base64", alphabet: newAlphabet(b64Symbols), groupBytes: 3, groupSymbols: 4, symbolBits: 6}
	Base64url = Encoding{name: "base64url", alphabet: newAlphabet(b64urlSymbols), groupBytes: 3, groupSymbols: 4, symbolBits: 6}
	Base32    = Encoding{name: "base32", alphabet: newAlphabet(b32Symbols), groupBytes: 5, groupSymbols: 8, symbolBits: 5}
	Base32hex = Encoding{name: "base32hex", alphabet: newAlphabet(b32hexSymbols), groupBytes: 5, groupSymbols: 8, symbolBits: 5}
)

var encodings = map[string]Encoding{
	Base64.name:    Base64,
	Base64url.name: Base64url,
	Base32.name:    Base32,
	Base32hex.name: Base32hex,
}

// Lookup resolves an encoding by its name, e.g. "base64" or "base32hex". The name
// is matched case-insensitively.
func Lookup(name string) (Encoding, error) {
	if e, ok := encodings[strings.ToLower(name)]; ok {
		return e, nil
	}
	return Encoding{}, errors.Errorf("unknown encoding %q, expected one of: %v", name, strings.Join(Names(), ", "))
}

// Names returns the names of all registered encodings, sorted.
func Names() []string {
	names := make([]string, 0, len(encodings))
	for name := range encodings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Name is the user-friendly name of this encoding
func (e Encoding) Name() string {
	return e.name
}

func (e Encoding) String() string {
	return fmt.Sprintf("%v(%v:%v)", e.name, e.groupBytes, e.groupSymbols)
}

// GroupBytes returns the number of raw bytes this encoding converts at one time.
func (e Encoding) GroupBytes() int {
	return e.groupBytes
}

// GroupSymbols returns the number of symbols output for every full group of raw bytes.
func (e Encoding) GroupSymbols() int {
	return e.groupSymbols
}

// Ratio returns the size ratio between encoded and raw data.
func (e Encoding) Ratio() float64 {
	return float64(e.groupSymbols) / float64(e.groupBytes)
}

// EncodedLen returns the number of symbols, padding included, produced by encoding
// n raw bytes.
func (e Encoding) EncodedLen(n int) int {
	return (n + e.groupBytes - 1) / e.groupBytes * e.groupSymbols
}

// NewEncoder returns a streaming encoder which writes encoded symbols to w. The
// caller must Close the encoder to emit the padding of the final group; closing
// the encoder does not close w.
func (e Encoding) NewEncoder(w io.Writer) *Encoder {
	return &Encoder{
		enc: e,
		w:   w,
	}
}

// NewDecoder returns a streaming decoder which reads encoded symbols from r.
// Characters which are neither part of the encoding's alphabet nor the padding
// character are silently skipped, as mandated by RFC 4648.
func (e Encoding) NewDecoder(r io.Reader) *Decoder {
	return &Decoder{
		enc: e,
		r:   r,
	}
}

// malformedf builds a stream-structure error wrapping ErrMalformedStream.
func (e Encoding) malformedf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrMalformedStream, "invalid %s stream: "+format, append([]interface{}{e.name}, args...)...)
}
