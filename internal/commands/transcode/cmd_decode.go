package transcode

import (
	"github.com/bokysan/baseio/internal/logging"
	"github.com/bokysan/baseio/internal/streams"
	"github.com/bokysan/baseio/internal/util/enc"
	"github.com/pkg/errors"
)

// DecodeCommand reads encoded symbols and writes out the raw bytes they represent.
// Characters outside the selected alphabet (line breaks, whitespace) are ignored;
// a structurally invalid stream aborts the decode with an error.
type DecodeCommand struct {
	Options
}

func NewDecodeCommand() *DecodeCommand {
	return &DecodeCommand{}
}

func (c *DecodeCommand) String() string {
	return "Decode data"
}

func (c *DecodeCommand) Execute(args []string) error {
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

	return decodeStream(encoding, in, out)
}
