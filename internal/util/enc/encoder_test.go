package enc

import (
	"bufio"
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func encodeToString(t *testing.T, encoding Encoding, data []byte) string {
	var buf bytes.Buffer
	encoder := encoding.NewEncoder(&buf)
	n, err := encoder.Write(data)
	require.NoError(t, err)
	require.Equal(t, len(data), n)
	require.NoError(t, encoder.Close())
	return buf.String()
}

func Test_Encoder_Vectors(t *testing.T) {
	require.Equal(t, "TWFu", encodeToString(t, Base64, []byte("Man")))
	require.Equal(t, "TWE=", encodeToString(t, Base64, []byte("Ma")))
	require.Equal(t, "TQ==", encodeToString(t, Base64, []byte("M")))
	require.Equal(t, "", encodeToString(t, Base64, nil))

	require.Equal(t, "MZXW6===", encodeToString(t, Base32, []byte("foo")))
	require.Equal(t, "MZXW6YTB", encodeToString(t, Base32, []byte("fooba")))
	require.Equal(t, "CPNMUOJ1E8======", encodeToString(t, Base32hex, []byte("foobar")))
	require.Equal(t, "CPNMUOG=", encodeToString(t, Base32hex, []byte("foob")))
	require.Equal(t, "", encodeToString(t, Base32hex, nil))
}

func Test_Encoder_Base64url_Alphabet(t *testing.T) {
	data := []byte{0xFB, 0xEF, 0xBE}
	require.Equal(t, "++++", encodeToString(t, Base64, data))
	require.Equal(t, "----", encodeToString(t, Base64url, data))
}

func Test_Encoder_ByteAtATime(t *testing.T) {
	var buf bytes.Buffer
	encoder := Base64.NewEncoder(&buf)
	for _, b := range []byte("Man") {
		_, err := encoder.Write([]byte{b})
		require.NoError(t, err)
	}
	// A full group is emitted without waiting for Close.
	require.Equal(t, "TWFu", buf.String())
	require.NoError(t, encoder.Close())
	require.Equal(t, "TWFu", buf.String())
}

func Test_Encoder_Close_Idempotent(t *testing.T) {
	var buf bytes.Buffer
	encoder := Base32.NewEncoder(&buf)
	_, err := encoder.Write([]byte("foo"))
	require.NoError(t, err)

	require.NoError(t, encoder.Close())
	require.Equal(t, "MZXW6===", buf.String())

	require.NoError(t, encoder.Close())
	require.Equal(t, "MZXW6===", buf.String(), "second Close must not produce additional output")
}

func Test_Encoder_PaddingLengthLaw(t *testing.T) {
	data := []byte("\000\000\000\000\377\377\377\377\125\125\125\125\252\252\252\252" +
		"\201\143\310\322\307\174\262\027\137\117\316\311\111\055\122\041")

	for _, encoding := range []Encoding{Base64, Base64url, Base32, Base32hex} {
		for length := 0; length <= len(data); length++ {
			encoded := encodeToString(t, encoding, data[:length])
			require.Equal(t, encoding.EncodedLen(length), len(encoded),
				"%v: length %d", encoding, length)
		}
	}
}

func Test_Encoder_OutputCharacters(t *testing.T) {
	data := []byte("\141\251\161\040\045\263\006\163\346\330\104\060\171\120\127\277")

	for _, encoding := range []Encoding{Base64, Base64url, Base32, Base32hex} {
		encoded := encodeToString(t, encoding, data)
		for i := 0; i < len(encoded); i++ {
			c := encoded[i]
			ok := encoding.alphabet.Value(c) >= 0 || c == PadChar
			require.True(t, ok, "%v produced foreign character %q", encoding, c)
		}
		require.NotContains(t, encoded, "\n")
	}
}

func Test_Encoder_FlushesBufferedSink(t *testing.T) {
	var buf bytes.Buffer
	writer := bufio.NewWriter(&buf)
	encoder := Base64.NewEncoder(writer)
	_, err := encoder.Write([]byte("Man"))
	require.NoError(t, err)
	require.NoError(t, encoder.Close())
	require.Equal(t, "TWFu", buf.String())
}
