package streams

import (
	"io"

	"github.com/bokysan/baseio/internal/util/buffers"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Copy moves data from r to w until EOF, using a shared-size buffer. It returns
// the number of bytes copied from the source.
func Copy(w io.Writer, r io.Reader) (int64, error) {
	n, err := io.CopyBuffer(w, r, make([]byte, buffers.BufferSize))
	if err != nil {
		return n, errors.WithStack(err)
	}
	return n, nil
}

// TryClose closes the stream and just reports to the log if it fails.
func TryClose(closer io.Closer) {
	if closer == nil {
		return
	}

	if c, ok := closer.(Closed); ok {
		if c.Closed() {
			return
		}
	}

	if err := closer.Close(); err != nil {
		err = errors.WithStack(err)
		log.WithError(err).Errorf("Could not close stream: %v", err)
	}
}

// LogClose closes the stream, logging the error (and returning it) if the close fails.
// Streams which report themselves as already closed are left alone.
func LogClose(closer io.Closer) error {
	if closer == nil {
		return nil
	}

	if c, ok := closer.(Closed); ok {
		if c.Closed() {
			return nil
		}
	}

	if err := closer.Close(); err != nil {
		err = errors.WithStack(err)
		log.WithError(err).Errorf("Could not close: %v", err)
		return err
	}
	return nil
}
