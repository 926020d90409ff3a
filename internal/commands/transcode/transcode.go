package transcode

import (
	"io"
	"io/ioutil"
	"os"

	"github.com/bokysan/baseio/internal/streams"
	"github.com/bokysan/baseio/internal/util/enc"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Options are the settings shared by the `encode` and `decode` commands.
type Options struct {
	Encoding string `json:"encoding" short:"e" long:"encoding" env:"ENCODING" description:"Encoding to use." choice:"base64" choice:"base64url" choice:"base32" choice:"base32hex" default:"base64"`
	Input    string `json:"input"    short:"i" long:"input"    env:"INPUT"    description:"Input file. Use '-' for standard input." default:"-"`
	Output   string `json:"output"   short:"o" long:"output"   env:"OUTPUT"   description:"Output file. Use '-' for standard output." default:"-"`
}

// nopWriteCloser turns stdout into an io.WriteCloser whose Close is a no-op; the
// process owns the lifecycle of the standard streams, not the pipeline.
type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error {
	return nil
}

func (o *Options) openInput() (io.ReadCloser, error) {
	if o.Input == "" || o.Input == "-" {
		return ioutil.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(o.Input)
	if err != nil {
		return nil, errors.Wrapf(err, "Could not open %v for reading", o.Input)
	}
	return streams.NewSafeReader(f), nil
}

func (o *Options) openOutput() (io.WriteCloser, error) {
	if o.Output == "" || o.Output == "-" {
		return nopWriteCloser{Writer: os.Stdout}, nil
	}
	f, err := os.Create(o.Output)
	if err != nil {
		return nil, errors.Wrapf(err, "Could not open %v for writing", o.Output)
	}
	return streams.NewSafeWriter(f), nil
}

// encodeStream pumps raw bytes from in through a streaming encoder into out and
// reports the transferred sizes.
func encodeStream(encoding enc.Encoding, in io.ReadCloser, out io.WriteCloser) error {
	raw := streams.NewCounterReader(in)
	encoded := streams.NewCounterWriter(out)
	encoder := encoding.NewEncoder(encoded)

	var errs error
	if _, err := streams.Copy(encoder, raw); err != nil {
		errs = multierror.Append(errs, err)
	} else if err := encoder.Close(); err != nil {
		errs = multierror.Append(errs, err)
	}
	if err := in.Close(); err != nil {
		errs = multierror.Append(errs, err)
	}
	if err := out.Close(); err != nil {
		errs = multierror.Append(errs, err)
	}
	if errs != nil {
		return errs
	}

	log.Infof("%v: encoded %v bytes into %v symbols", encoding, raw.Count(), encoded.Count())
	return nil
}

// decodeStream pumps encoded symbols from in through a streaming decoder into out
// and reports the transferred sizes.
func decodeStream(encoding enc.Encoding, in io.ReadCloser, out io.WriteCloser) error {
	encoded := streams.NewCounterReader(in)
	raw := streams.NewCounterWriter(out)
	decoder := encoding.NewDecoder(encoded)

	var errs error
	if _, err := streams.Copy(raw, decoder); err != nil {
		errs = multierror.Append(errs, err)
	}
	if err := in.Close(); err != nil {
		errs = multierror.Append(errs, err)
	}
	if err := out.Close(); err != nil {
		errs = multierror.Append(errs, err)
	}
	if errs != nil {
		return errs
	}

	log.Infof("%v: decoded %v symbols into %v bytes", encoding, encoded.Count(), raw.Count())
	return nil
}
