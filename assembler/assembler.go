package assembler

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Assembler parses batches of source lines. Lines are independent of each
// other, so a batch can be spread over several workers.
type Assembler struct {
	workers int
	log     *slog.Logger
}

// Option configures an Assembler.
type Option func(*Assembler)

// WithWorkers sets how many lines are classified at once. Values below 1 mean one.
func WithWorkers(n int) Option {
	return func(asm *Assembler) {
		if n < 1 {
			n = 1
		}
		asm.workers = n
	}
}

// WithLogger sets the logger for debug output. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(asm *Assembler) {
		if l != nil {
			asm.log = l
		}
	}
}

// New creates a new Assembler instance.
func New(opts ...Option) *Assembler {
	asm := &Assembler{
		workers: runtime.GOMAXPROCS(0),
		log:     slog.New(slog.DiscardHandler),
	}
	for _, o := range opts {
		o(asm)
	}
	return asm
}

// Workers returns the configured parallelism.
func (asm *Assembler) Workers() int {
	return asm.workers
}

// ParseLines classifies every line and returns one node per line in source order.
// The only error is a cancelled context.
func (asm *Assembler) ParseLines(ctx context.Context, lines []string) ([]*Node, error) {
	nodes := make([]*Node, len(lines))
	asm.log.Debug("parsing", "lines", len(lines), "workers", asm.workers)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(asm.workers)
	for i, line := range lines {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			// Each goroutine owns exactly one slot.
			nodes[i] = Classify(i+1, line)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("parsing aborted: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parsing aborted: %w", err)
	}

	for _, n := range nodes {
		if n.Type == NodeUnknown {
			asm.log.Debug("unrecognised line", "line", n.LineNo, "text", n.Line.Instruction, "err", n.Err)
		}
	}
	return nodes, nil
}

// Parse classifies a whole source text on the calling goroutine.
func Parse(src string) []*Node {
	lines := SplitLines(src)
	nodes := make([]*Node, len(lines))
	for i, line := range lines {
		nodes[i] = Classify(i+1, line)
	}
	return nodes
}

// MaxLineSize is the longest line ParseReader accepts.
const MaxLineSize = 16 << 20

// ParseReader reads r line by line and classifies each line as it arrives.
// Lines longer than MaxLineSize stop the read with bufio.ErrTooLong.
func ParseReader(r io.Reader) ([]*Node, error) {
	var nodes []*Node
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
	for lineNo := 1; sc.Scan(); lineNo++ {
		nodes = append(nodes, Classify(lineNo, sc.Text()))
	}
	if err := sc.Err(); err != nil {
		return nodes, fmt.Errorf("reading source: %w", err)
	}
	return nodes, nil
}

// SplitLines breaks source text into lines without their terminators,
// the same lines ParseReader would see. A trailing newline does not produce
// an extra empty line, so "\n" is one empty line and "" is none.
func SplitLines(src string) []string {
	if src == "" {
		return nil
	}
	src = strings.ReplaceAll(src, "\r\n", "\n")
	return strings.Split(strings.TrimSuffix(src, "\n"), "\n")
}

// Labels lists the labels defined in nodes, in source order.
// Bare colons (empty labels) are skipped.
func Labels(nodes []*Node) []string {
	var labels []string
	for _, n := range nodes {
		if n.Line.HasLabel && n.Line.Label != "" {
			labels = append(labels, n.Line.Label)
		}
	}
	return labels
}
