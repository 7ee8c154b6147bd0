// portdump prints the contents of a portable scalar stream, or writes one.
//
// Decoding needs the sequence of scalar types the stream holds, since the
// format carries no type tags:
//
//	portdump --types u16,f64,bool data.bin
//
// The type list repeats until the stream ends. With --encode the
// positional arguments are values, paired with --types, and the stream is
// written to stdout:
//
//	portdump --encode --types i32,f64 -- -7 2.5 > data.bin
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/oy3o/portable"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type config struct {
	types      string
	noHeader   bool
	relaxed    bool
	encode     bool
	optionPath string
	verbose    bool
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var cfg config

	flagSet := pflag.NewFlagSet("portdump", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVarP(&cfg.types, "types", "t", "", "comma-separated scalar types: bool,i8,i16,i32,i64,u8,u16,u32,u64,f32,f64")
	flagSet.BoolVar(&cfg.noHeader, "no-header", false, "stream has no header")
	flagSet.BoolVar(&cfg.relaxed, "relaxed", false, "accept denormalized floats")
	flagSet.BoolVarP(&cfg.encode, "encode", "e", false, "encode positional values to stdout instead of decoding")
	flagSet.StringVar(&cfg.optionPath, "config", "", "YAML options file; flags override it")
	flagSet.BoolVarP(&cfg.verbose, "verbose", "v", false, "log negotiation details to stderr")

	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}

	opts, err := loadOptions(&cfg, flagSet)
	if err != nil {
		return err
	}
	level := slog.LevelWarn
	if cfg.verbose {
		level = slog.LevelDebug
	}
	opts.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	types, err := parseTypes(cfg.types)
	if err != nil {
		return err
	}

	if cfg.encode {
		return encode(stdout, types, flagSet.Args(), opts)
	}

	in := stdin
	switch rest := flagSet.Args(); len(rest) {
	case 0:
	case 1:
		f, err := os.Open(rest[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	default:
		return fmt.Errorf("expected at most one input file, got %d", len(rest))
	}
	return decode(in, stdout, types, opts)
}

func loadOptions(cfg *config, flagSet *pflag.FlagSet) (*portable.Options, error) {
	opts := &portable.Options{}
	if cfg.optionPath != "" {
		loaded, err := portable.LoadOptions(cfg.optionPath)
		if err != nil {
			return nil, err
		}
		opts = loaded
	}
	if flagSet.Changed("no-header") {
		opts.NoHeader = cfg.noHeader
	}
	if flagSet.Changed("relaxed") {
		opts.Portability = portable.Restricted
		if cfg.relaxed {
			opts.Portability = portable.Relaxed
		}
	}
	return opts, nil
}

func parseTypes(list string) ([]portable.Scalar, error) {
	if list == "" {
		return nil, nil
	}
	var types []portable.Scalar
	for _, name := range strings.Split(list, ",") {
		s, err := portable.ParseScalar(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		types = append(types, s)
	}
	return types, nil
}

func decode(in io.Reader, out io.Writer, types []portable.Scalar, opts *portable.Options) error {
	d, err := portable.NewDecoder(in, opts)
	if err != nil {
		return err
	}
	defer d.Close()

	if opts.NoHeader {
		fmt.Fprintf(out, "header: none (%s assumed)\n", d.Versions())
	} else {
		fmt.Fprintf(out, "header: %s\n", d.Versions())
	}
	if len(types) == 0 {
		return nil
	}

	for i := 0; d.More(); i++ {
		s := types[i%len(types)]
		offset := d.Count()
		v, err := d.DecodeScalar(s)
		if err != nil {
			return fmt.Errorf("value %d (%s) at offset %d: %w", i, s, offset, err)
		}
		fmt.Fprintf(out, "%d\t%d\t%s\t%v\n", i, offset, s, v)
	}
	if err := d.Err(); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func encode(out io.Writer, types []portable.Scalar, values []string, opts *portable.Options) error {
	if len(types) == 0 {
		return fmt.Errorf("--encode needs --types")
	}
	e, err := portable.NewEncoder(out, opts)
	if err != nil {
		return err
	}
	// Values before a bad one are still flushed, so the output is a valid
	// prefix of the requested stream.
	err = encodeValues(e, types, values)
	if cerr := e.Close(); err == nil {
		err = cerr
	}
	return err
}

func encodeValues(e *portable.Encoder, types []portable.Scalar, values []string) error {
	for i, text := range values {
		s := types[i%len(types)]
		v, err := parseValue(s, text)
		if err != nil {
			return fmt.Errorf("value %d: %w", i, err)
		}
		if err := e.Encode(v); err != nil {
			return fmt.Errorf("value %d: %w", i, err)
		}
	}
	return nil
}

// parseValue converts text to the canonical Go type of s.
func parseValue(s portable.Scalar, text string) (any, error) {
	bits := s.Width * 8
	switch s.Kind {
	case portable.Bool:
		return strconv.ParseBool(text)
	case portable.Signed:
		x, err := strconv.ParseInt(text, 0, bits)
		if err != nil {
			return nil, err
		}
		switch bits {
		case 8:
			return int8(x), nil
		case 16:
			return int16(x), nil
		case 32:
			return int32(x), nil
		}
		return x, nil
	case portable.Unsigned:
		u, err := strconv.ParseUint(text, 0, bits)
		if err != nil {
			return nil, err
		}
		switch bits {
		case 8:
			return uint8(u), nil
		case 16:
			return uint16(u), nil
		case 32:
			return uint32(u), nil
		}
		return u, nil
	case portable.Float:
		f, err := strconv.ParseFloat(text, bits)
		if err != nil {
			return nil, err
		}
		if bits == 32 {
			return float32(f), nil
		}
		return f, nil
	}
	return nil, fmt.Errorf("unsupported type %s", s)
}
