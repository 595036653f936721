package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/k0kubun/pp/v3"

	"github.com/Urethramancer/asm65/assembler"
	"github.com/Urethramancer/asm65/cpu"
	"github.com/Urethramancer/asm65/listing"
)

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

var errNoFile = errors.New("no source file given")

type config struct {
	file      string
	colour    bool
	dump      bool
	format    bool
	jobs      int
	verbose   bool
	strict    bool
	mnemonics bool
}

// run does the work of the command and returns the exit code.
func run(ctx context.Context, cfg config, w io.Writer, log *slog.Logger) (int, error) {
	if cfg.mnemonics {
		return exitOK, printMnemonics(w)
	}
	if cfg.file == "" {
		return exitUsage, errNoFile
	}

	data, err := os.ReadFile(cfg.file)
	if err != nil {
		return exitFailure, err
	}

	opts := []assembler.Option{assembler.WithLogger(log)}
	if cfg.jobs > 0 {
		opts = append(opts, assembler.WithWorkers(cfg.jobs))
	}
	asm := assembler.New(opts...)

	nodes, err := asm.ParseLines(ctx, assembler.SplitLines(string(data)))
	if err != nil {
		return exitFailure, err
	}

	var st listing.Stats
	switch {
	case cfg.dump:
		printer := pp.New()
		printer.SetColoringEnabled(cfg.colour)
		printer.SetExportedOnly(true)
		if _, err := printer.Fprintln(w, nodes); err != nil {
			return exitFailure, err
		}
		st = listing.Report(nodes, discard{})

	case cfg.format:
		for _, n := range nodes {
			if _, err := fmt.Fprintln(w, listing.Format(n)); err != nil {
				return exitFailure, err
			}
		}
		st = listing.Report(nodes, discard{})

	default:
		p := listing.NewPrinter(w, cfg.colour)
		p.Verbose = cfg.verbose
		st = listing.Report(nodes, p)
		p.Summary(st)
		if err := p.Err(); err != nil {
			return exitFailure, err
		}
	}

	log.Debug("parsed", "file", cfg.file, "lines", st.Lines, "labels", len(assembler.Labels(nodes)), "unknown", st.Unknown)
	if cfg.strict && st.Unknown > 0 {
		for _, n := range nodes {
			if n.Type == assembler.NodeUnknown {
				log.Error("unrecognised line", "file", cfg.file, "line", n.LineNo, "err", n.Err)
			}
		}
		return exitFailure, fmt.Errorf("%d unrecognised lines in %s", st.Unknown, cfg.file)
	}
	return exitOK, nil
}

func printMnemonics(w io.Writer) error {
	for _, m := range cpu.Mnemonics() {
		if _, err := fmt.Fprintf(w, "%s  %s\n", m, m.Description()); err != nil {
			return err
		}
	}
	return nil
}

// discard is a Sink that ignores everything, for counting only.
type discard struct{}

func (discard) Label(int, string) {}
func (discard) Instruction(int, assembler.Instruction) {}
func (discard) Directive(int, assembler.Directive) {}
func (discard) Definition(int, assembler.Definition) {}
func (discard) Unknown(int, string, error) {}
func (discard) Comment(int, string) {}
