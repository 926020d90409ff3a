package streams

import (
	"bytes"
	"io"
	"io/ioutil"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type closeCountingReader struct {
	io.Reader
	closes int
}

func (c *closeCountingReader) Close() error {
	c.closes++
	return nil
}

type closeCountingWriter struct {
	io.Writer
	closes int
}

func (c *closeCountingWriter) Close() error {
	c.closes++
	return nil
}

func Test_SafeReader_MultipleClose(t *testing.T) {
	wrapped := &closeCountingReader{Reader: strings.NewReader("data")}

	obj := NewSafeReader(wrapped)
	require.False(t, obj.Closed(), "Stream is closed when it shouldn't be!")

	require.NoError(t, obj.Close())
	require.True(t, obj.Closed(), "Stream is not closed!")

	require.NoError(t, obj.Close())
	require.Equal(t, 1, wrapped.closes, "Underlying stream was closed more than once")
}

func Test_SafeReader_NoDoubleWrap(t *testing.T) {
	wrapped := NewSafeReader(&closeCountingReader{Reader: strings.NewReader("data")})
	require.Equal(t, wrapped, NewSafeReader(wrapped))
}

func Test_SafeReader_WriteTo(t *testing.T) {
	obj := NewSafeReader(&closeCountingReader{Reader: strings.NewReader("data")})

	var buf bytes.Buffer
	n, err := obj.WriteTo(&buf)
	require.NoError(t, err)
	require.Equal(t, int64(4), n)
	require.Equal(t, "data", buf.String())
}

func Test_SafeWriter_MultipleClose(t *testing.T) {
	wrapped := &closeCountingWriter{Writer: ioutil.Discard}

	obj := NewSafeWriter(wrapped)
	require.False(t, obj.Closed(), "Stream is closed when it shouldn't be!")

	require.NoError(t, obj.Close())
	require.True(t, obj.Closed(), "Stream is not closed!")

	require.NoError(t, obj.Close())
	require.Equal(t, 1, wrapped.closes, "Underlying stream was closed more than once")
}

func Test_TryClose_SkipsClosedStreams(t *testing.T) {
	wrapped := &closeCountingReader{Reader: strings.NewReader("data")}
	obj := NewSafeReader(wrapped)

	require.NoError(t, obj.Close())
	TryClose(obj)
	require.Equal(t, 1, wrapped.closes)
}
