package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/grimdork/climate/arg"
	"github.com/tebeka/atexit"
	"golang.org/x/term"
)

func main() {
	opt := arg.New("asm65")
	opt.SetDefaultHelp(true)
	opt.SetOption(arg.GroupDefault, "n", "no-colour", "Disable coloured output.", false, false, arg.VarBool, nil)
	opt.SetOption(arg.GroupDefault, "d", "dump", "Dump the parsed lines as data structures.", false, false, arg.VarBool, nil)
	opt.SetOption(arg.GroupDefault, "f", "format", "Print tidied source instead of a listing.", false, false, arg.VarBool, nil)
	opt.SetOption(arg.GroupDefault, "j", "jobs", "Lines parsed in parallel (0 for one per CPU).", 0, false, arg.VarInt, nil)
	opt.SetOption(arg.GroupDefault, "v", "verbose", "Show addressing details and debug logging.", false, false, arg.VarBool, nil)
	opt.SetOption(arg.GroupDefault, "s", "strict", "Exit with an error if any line is not understood.", false, false, arg.VarBool, nil)
	opt.SetOption(arg.GroupDefault, "m", "mnemonics", "List the known mnemonics and exit.", false, false, arg.VarBool, nil)
	opt.SetPositional("FILE", "Assembly source file.", "", false, arg.VarString)

	err := opt.Parse(os.Args)
	if err != nil {
		if err == arg.ErrNoArgs {
			opt.PrintHelp()
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if opt.GetBool("help") {
		opt.PrintHelp()
		return
	}

	cfg := config{
		file:      opt.GetPosString("FILE"),
		colour:    !opt.GetBool("no-colour") && os.Getenv("NO_COLOR") == "" && term.IsTerminal(int(os.Stdout.Fd())),
		dump:      opt.GetBool("dump"),
		format:    opt.GetBool("format"),
		jobs:      opt.GetInt("jobs"),
		verbose:   opt.GetBool("verbose"),
		strict:    opt.GetBool("strict"),
		mnemonics: opt.GetBool("mnemonics"),
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	out := bufio.NewWriter(os.Stdout)
	atexit.Register(func() {
		if err := out.Flush(); err != nil {
			log.Error("writing output", "err", err)
		}
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code, err := run(ctx, cfg, out, log)
	stop()
	if err != nil {
		log.Error("asm65 failed", "err", err)
	}
	atexit.Exit(code)
}
