// Command s8demo runs the library's usage scenarios and writes their output
// to standard output through an arena-backed buffered writer.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/time/rate"

	"github.com/pavanmanishd/arena/v2"
	"github.com/pavanmanishd/arena/v2/bufout"
	"github.com/pavanmanishd/arena/v2/internal/fatal"
	"github.com/pavanmanishd/arena/v2/s8"
	"github.com/pavanmanishd/arena/v2/sink"
)

var blurb = s8.Text(`
	This will be included with whitespace collapsed
	and "quotes" escaped.
`)

type config struct {
	arenaCap  int
	bufCap    int
	scenario  string
	compress  string
	rate      float64
	logFormat string
	verbose   bool
}

func main() {
	var cfg config
	flag.IntVar(&cfg.arenaCap, "arena", arena.KiB(1), "arena capacity in bytes")
	flag.IntVar(&cfg.bufCap, "buf", 64, "output buffer capacity in bytes")
	flag.StringVar(&cfg.scenario, "scenario", "escaped", "scenario to run: escaped, blurb, list")
	flag.StringVar(&cfg.compress, "compress", "none", "compress output: none, zstd, lz4")
	flag.Float64Var(&cfg.rate, "rate", 0, "limit output to this many bytes per second (0 = unlimited)")
	flag.StringVar(&cfg.logFormat, "log-format", "text", "log format: text, json")
	flag.BoolVar(&cfg.verbose, "v", false, "log every flush")
	flag.Parse()

	if err := run(cfg, newLogger(cfg)); err != nil {
		fatal.Terminate(fatal.ExitFailure, "s8demo: "+err.Error()+"\n")
	}
}

func newLogger(cfg config) *slog.Logger {
	level := slog.LevelWarn
	if cfg.verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.logFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

func run(cfg config, log *slog.Logger) error {
	store := arena.New(cfg.arenaCap)
	defer store.Release()

	dst, closer, err := openSink(cfg)
	if err != nil {
		return err
	}
	out := bufout.New(store, cfg.bufCap, dst, bufout.WithLogger(log))

	switch cfg.scenario {
	case "escaped":
		escaped(out)
	case "blurb":
		out.Write(blurb)
	case "list":
		list(store.Scratch(), out)
	default:
		return fmt.Errorf("unknown scenario %q", cfg.scenario)
	}
	out.Flush()

	if closer != nil {
		if err := closer.Close(); err != nil {
			return err
		}
	}
	if out.Err() {
		return bufout.ErrSticky
	}
	log.Debug("done", "arena_in_use", store.SizeInUse(), "flushes", out.Flushes())
	return nil
}

// escaped writes the same eight bytes reached three different ways.
func escaped(out *bufout.Writer) {
	frag := s8.Lit("escaped.")
	span := s8.Span(blurb, len(blurb)-8, len(blurb))
	slice := s8.Slice(blurb, -8, 0)
	out.WriteLine(frag)
	out.WriteLine(span)
	out.WriteLine(slice)
}

// list splits the blurb into words, links them and joins them back with
// single spaces, all from scratch space.
func list(scratch arena.Arena, out *bufout.Writer) {
	var head, tail *s8.List
	sep := s8.Lit(" ")
	rest := blurb
	for len(rest) > 0 {
		i := s8.FindByte(rest, ' ')
		if i < 0 {
			i = len(rest)
		}
		if head != nil {
			tail = s8.Append(&scratch, tail, sep)
		}
		tail = s8.Append(&scratch, tail, s8.Clone(&scratch, rest[:i]))
		if head == nil {
			head = tail
		}
		rest = s8.Slice(rest, i, 0)
		rest = s8.Trim(rest)
	}
	joined := s8.ListConcat(&scratch, head)
	out.WriteLine(joined)
	fmt.Fprintf(out.Stream(), "%d nodes, hash %08x\n", head.Len(), s8.Hash(joined))
}

func openSink(cfg config) (sink.Sink, io.Closer, error) {
	var (
		dst    sink.Sink = sink.Stdout
		closer io.Closer
	)
	switch cfg.compress {
	case "none":
	case "zstd":
		z, err := sink.NewZstd(os.Stdout)
		if err != nil {
			return nil, nil, err
		}
		dst, closer = z, z
	case "lz4":
		z, err := sink.NewLZ4(os.Stdout)
		if err != nil {
			return nil, nil, err
		}
		dst, closer = z, z
	default:
		return nil, nil, fmt.Errorf("unknown compression %q", cfg.compress)
	}
	if cfg.rate > 0 {
		dst = sink.NewLimited(context.Background(), dst, rate.Limit(cfg.rate), cfg.bufCap)
	}
	return dst, closer, nil
}
