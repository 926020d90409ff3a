package transcode

import (
	"github.com/bokysan/baseio/internal/logging"
	"github.com/bokysan/baseio/internal/streams"
	"github.com/bokysan/baseio/internal/util/enc"
	"github.com/pkg/errors"
)

// EncodeCommand reads raw bytes and writes them out encoded with the selected
// alphabet, as a single unwrapped line per RFC 4648.
type EncodeCommand struct {
	Options
}

func NewEncodeCommand() *EncodeCommand {
	return &EncodeCommand{}
}

func (c *EncodeCommand) String() string {
	return "Encode data"
}

func (c *EncodeCommand) Execute(args []string) error {
	logging.SetupLogging()

	encoding, err := enc.Lookup(c.Encoding)
	if err != nil {
		return errors.WithStack(err)
	}

	in, err := c.openInput()
	if err != nil {
		return err
	}
	out, err := c.openOutput()
	if err != nil {
		streams.TryClose(in)
		return err
	}

	return encodeStream(encoding, in, out)
}
