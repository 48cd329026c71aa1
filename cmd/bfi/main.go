// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"github.com/ezrec/bfi/api"
	"github.com/ezrec/bfi/engine"
	"github.com/ezrec/bfi/runner"
	"github.com/ezrec/bfi/tapeio"
	"github.com/ezrec/bfi/translate"
)

func main() {
	var source string
	var code string
	var input string
	var expr string
	var format string
	var numbers bool
	var bits int
	var signed bool
	var steps int
	var timeout time.Duration
	var verbose bool

	flag.StringVar(&source, "c", "", "program file to run")
	flag.StringVar(&code, "code", "", "program text to run")
	flag.StringVar(&input, "i", "", "input text, as code points")
	flag.StringVar(&expr, "e", "", "input as a Starlark expression, appended after -i")
	flag.StringVar(&format, "o", "runes", "output format: bytes, runes or numbers")
	flag.BoolVar(&numbers, "n", false, "output space separated numbers, same as -o numbers")
	flag.IntVar(&bits, "b", 8, "cell width in bits")
	flag.BoolVar(&signed, "s", false, "signed cells")
	flag.IntVar(&steps, "steps", 0, "step limit per run, 0 for none")
	flag.DurationVar(&timeout, "t", 0, "time limit per run, 0 for none")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Printf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
		flag.Usage()
		os.Exit(2)
	}

	if (len(source) == 0) == (len(code) == 0) {
		log.Printf("%v: exactly one of -c or -code is required", os.Args[0])
		flag.Usage()
		os.Exit(2)
	}

	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	zlog.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level)

	if len(source) != 0 {
		text, err := os.ReadFile(source)
		if err != nil {
			log.Fatalf("%v: %v", source, err)
		}
		code = string(text)
	}

	if numbers {
		format = "numbers"
	}

	outFormat, err := tapeio.ParseFormat(format)
	if err != nil {
		log.Fatalf("-o: %v", err)
	}

	values := api.Codes(input)
	if len(expr) != 0 {
		more, err := api.EvalInput(expr)
		if err != nil {
			log.Fatalf("-e: %v", err)
		}
		values = append(values, more...)
	}

	eng, err := engine.New(code, values, bits, signed)
	if err != nil {
		log.Fatalf("-b: %v", err)
	}

	run := runner.NewRunner(eng, runner.Limits{MaxSteps: steps, Timeout: timeout})
	run.Verbose = verbose

	tape := &tapeio.Tape{
		Input:  os.Stdin,
		Output: os.Stdout,
		Format: outFormat,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	os.Exit(session(ctx, run, tape, verbose))
}

// session runs until the program completes or stops, reading a line of
// standard input each time the program waits.
func session(ctx context.Context, run *runner.Runner, tape *tapeio.Tape, verbose bool) (code int) {
	defer func() {
		err := tape.Finish()
		if err != nil {
			log.Print(err)
		}
		if verbose {
			status := run.Status()
			fmt.Fprintln(os.Stderr, translate.From("%v after %v steps", status, translate.Count(run.Steps())))
			for _, cell := range run.Tape().Cells() {
				zlog.Debug().Int("pos", cell.Position).Int64("value", cell.Value).Msg("cell")
			}
		}
	}()

	for {
		state, err := run.Run(ctx)

		if serr := tape.Sync(state.Output); serr != nil {
			log.Print(serr)
			return 1
		}

		switch state.Status {
		case engine.STATUS_COMPLETE:
			return 0
		case engine.STATUS_WAITING:
			line, rerr := tape.ReceiveLine()
			if errors.Is(rerr, io.EOF) {
				log.Print(translate.From("input exhausted while waiting"))
				return 1
			}
			run.Feed(line...)
		default:
			log.Print(err)
			return 1
		}
	}
}
