package portable

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Options configures an Encoder or Decoder. A nil *Options means defaults:
// header enabled, Restricted portability, current versions, no logging.
type Options struct {
	// NoHeader omits the header on write and skips it on read. Headerless
	// streams are read as BaselineVersions.
	NoHeader bool `yaml:"no_header"`

	// Portability governs validation of decoded floats.
	Portability Portability `yaml:"portability"`

	// Versions written by an Encoder. Zero fields mean CurrentVersions.
	// Ignored by a Decoder, which negotiates them from the stream.
	Versions Versions `yaml:"versions"`

	// BufferSize of the bufio layer placed over unbuffered streams.
	BufferSize int `yaml:"buffer_size"`

	// Logger receives debug records for negotiation and warnings for
	// rejected streams. Nil discards.
	Logger *slog.Logger `yaml:"-"`
}

func (o *Options) withDefaults() Options {
	var opts Options
	if o != nil {
		opts = *o
	}
	if opts.Versions.Protocol == 0 {
		opts.Versions.Protocol = CurrentVersions.Protocol
	}
	if opts.Versions.Module == 0 {
		opts.Versions.Module = CurrentVersions.Module
	}
	if opts.BufferSize <= 0 {
		opts.BufferSize = BUFFER_SIZE
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	return opts
}

// ParseOptions decodes YAML options such as:
//
//	no_header: false
//	portability: relaxed
//	versions:
//	  protocol_version: 2
//	  module_version: 5
func ParseOptions(data []byte) (*Options, error) {
	var opts Options
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return nil, fmt.Errorf("failed to parse options: %w", err)
	}
	if opts.BufferSize < 0 {
		return nil, fmt.Errorf("invalid buffer_size %d", opts.BufferSize)
	}
	return &opts, nil
}

// LoadOptions reads YAML options from a file.
func LoadOptions(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read options file: %w", err)
	}
	return ParseOptions(data)
}
