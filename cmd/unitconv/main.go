// SPDX-License-Identifier: MIT

// Command unitconv converts a value between two units of a catalog.
//
//	unitconv --value 1500 --from m --to km
//	unitconv 100 °C °F
//	unitconv --catalog extra.yaml --list
//	unitconv --dump > si.yaml
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/lvunits/catalog"
	"github.com/katalvlaran/lvunits/quantity"
	"github.com/katalvlaran/lvunits/registry"
)

var errUsage = errors.New("unitconv: need --from and --to, or VALUE FROM TO")

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, pflag.ErrHelp) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// run is main without the process: it parses args, writes results to stdout
// and diagnostics to stderr.
func run(args []string, stdout, stderr io.Writer) error {
	fs := pflag.NewFlagSet("unitconv", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	value := fs.Float64P("value", "x", 1, "value to convert")
	from := fs.StringP("from", "f", "", "source unit (name or symbol)")
	to := fs.StringP("to", "t", "", "target unit (name or symbol)")
	catalogPath := fs.StringP("catalog", "c", "", "YAML catalog file (default: built-in SI)")
	list := fs.BoolP("list", "l", false, "list dimensions and their units")
	dump := fs.Bool("dump", false, "print the built-in catalog as YAML")
	verbose := fs.CountP("verbose", "v", "log verbosity; repeat for per-declaration detail")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *dump {
		return catalog.WriteYAML(stdout, catalog.Declarations())
	}

	log, flush := newLogger(stderr, *verbose)
	defer flush()

	reg, err := loadRegistry(*catalogPath, log)
	if err != nil {
		return err
	}
	if *list {
		return listUnits(stdout, reg)
	}

	switch fs.NArg() {
	case 0:
	case 3:
		v, err := strconv.ParseFloat(fs.Arg(0), 64)
		if err != nil {
			return fmt.Errorf("unitconv: value %q: %w", fs.Arg(0), err)
		}
		*value, *from, *to = v, fs.Arg(1), fs.Arg(2)
	default:
		return errUsage
	}
	if *from == "" || *to == "" {
		return errUsage
	}

	return convert(stdout, reg, *value, *from, *to)
}

// newLogger bridges zap to logr. Verbosity 0 shows warnings only, 1 adds the
// build summary, 2 and above add per-declaration records.
func newLogger(w io.Writer, verbosity int) (logr.Logger, func()) {
	level := zapcore.WarnLevel
	if verbosity > 0 {
		level = zapcore.Level(1 - verbosity)
	}
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	core := zapcore.NewCore(enc, zapcore.AddSync(w), zap.NewAtomicLevelAt(level))
	zl := zap.New(core).Named("unitconv")

	return zapr.NewLogger(zl), func() { _ = zl.Sync() }
}

func loadRegistry(path string, log logr.Logger) (*registry.Registry, error) {
	if path == "" {
		return catalog.Build(registry.WithLogger(log))
	}
	c, err := catalog.LoadYAMLFile(path)
	if err != nil {
		return nil, err
	}
	log.V(1).Info("catalog loaded", "path", path, "units", len(c.Units))

	return c.Build(registry.WithLogger(log))
}

func convert(w io.Writer, reg *registry.Registry, v float64, from, to string) error {
	fu, err := reg.Unit(from)
	if err != nil {
		return err
	}
	tu, err := reg.Unit(to)
	if err != nil {
		return err
	}
	q, err := quantity.New(reg, v, fu)
	if err != nil {
		return err
	}
	out, err := q.In(tu)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s = %s\n", q, out)

	return err
}

func listUnits(w io.Writer, reg *registry.Registry) error {
	sys := reg.System()
	for _, name := range reg.Dimensions() {
		d, err := reg.Dimension(name)
		if err != nil {
			return err
		}
		units, err := reg.Units(name)
		if err != nil {
			return err
		}
		symbols := make([]string, 0, len(units))
		for _, u := range units {
			symbols = append(symbols, u.Symbol())
		}
		if _, err := fmt.Fprintf(w, "%s [%s]: %s\n", name, sys.Format(d), strings.Join(symbols, " ")); err != nil {
			return err
		}
	}

	return nil
}
