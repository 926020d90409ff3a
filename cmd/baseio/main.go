package main

import (
	"fmt"
	"os"
	"path"

	"github.com/bokysan/baseio/internal/args"
	"github.com/bokysan/baseio/internal/commands/transcode"
	"github.com/bokysan/baseio/internal/commands/version"
	yamlFlags "github.com/bokysan/baseio/internal/flags"
	"github.com/bokysan/baseio/internal/util"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

const (
	// ErrConfigFileDoesNotExist is raised when configuration file cannot be found
	ErrConfigFileDoesNotExist = flags.ErrInvalidTag + 1
)

// BaseIo is the main executable
type BaseIo struct {
	parser *flags.Parser
}

// NewBaseIo will create a new instance of BaseIo and initialize the parser
func NewBaseIo() *BaseIo {
	executableFilename := os.Args[0]
	executablePath := path.Base(executableFilename)

	b := &BaseIo{
		parser: flags.NewNamedParser(executablePath, flags.HelpFlag|flags.PrintErrors),
	}

	b.setupGeneral()
	b.setupVersion()
	b.setupEncode()
	b.setupDecode()

	return b
}

// setupGeneral will configure general options
func (b *BaseIo) setupGeneral() {
	if _, err := b.parser.AddGroup("General", "General options", &args.General); err != nil {
		err = errors.WithStack(err)
		util.MustErrorNilOrExit(err)
	}
}

// setupVersion adds the `version` command
func (b *BaseIo) setupVersion() {
	cmd := &version.Command{}
	_, err := b.parser.AddCommand(
		"version",
		"Print the version",
		"Print the application version and exit",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// setupEncode adds the `encode` command
func (b *BaseIo) setupEncode() {
	cmd := transcode.NewEncodeCommand()
	_, err := b.parser.AddCommand(
		"encode",
		"Encode data",
		"Encode a byte stream into base64, base64url, base32 or base32hex",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// setupDecode adds the `decode` command
func (b *BaseIo) setupDecode() {
	cmd := transcode.NewDecodeCommand()
	_, err := b.parser.AddCommand(
		"decode",
		"Decode data",
		"Decode a base64, base64url, base32 or base32hex stream back into bytes",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// main starts baseio and reads the configuration file
func main() {

	baseIo := NewBaseIo()
	args.General.ConfigurationFile = func(file string) error {
		if _, err := os.Stat(file); os.IsNotExist(err) {
			message := fmt.Sprintf("Configuration file %s does not exist.", file)
			util.MustErrorNilOrExit(&flags.Error{
				Type:    ErrConfigFileDoesNotExist,
				Message: message,
			})
		}

		yamlParser := yamlFlags.NewYamlParser(baseIo.parser)

		args.General.ConfigurationFilePath = file
		return yamlParser.ParseFile(file)
	}

	_, err := baseIo.parser.Parse()
	util.MustErrorNilOrExit(err)

}
