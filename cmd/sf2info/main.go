// Command sf2info prints a summary of one or more SoundFont banks.
//
// Usage:
//
//	sf2info [options] <file.sf2>...
//
// Options:
//
//	-ignore-errors   Accept banks with a missing or malformed version chunk
//	-lenient-index   Downgrade out-of-range cross references to warnings
//	-samples         List every sample after the summary
//	-v               Log decoder warnings to stderr
//	-version         Print version information and exit
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/simonhull/soundfont"
)

var (
	ignoreErrors = flag.Bool("ignore-errors", false, "Accept banks with a missing or malformed version chunk")
	lenientIndex = flag.Bool("lenient-index", false, "Downgrade out-of-range cross references to warnings")
	listSamples  = flag.Bool("samples", false, "List every sample after the summary")
	verbose      = flag.Bool("v", false, "Log decoder warnings to stderr")
	showVersion  = flag.Bool("version", false, "Print version information and exit")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <file.sf2>...\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Prints the INFO summary of SoundFont 2 banks.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		v := soundfont.GetVersionInfo()
		fmt.Printf("sf2info %s (commit %s, built %s, %s)\n", v.Version, v.GitCommit, v.BuildTime, v.GoVersion)
		return
	}

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(context.Background(), os.Stdout, flag.Args(), options()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// options translates the command line flags into decoder options.
func options() []soundfont.Option {
	var opts []soundfont.Option
	if *ignoreErrors {
		opts = append(opts, soundfont.WithIgnoreErrors())
	}
	if *lenientIndex {
		opts = append(opts, soundfont.WithIgnoreIndexOutOfRange())
	}
	if *verbose {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		opts = append(opts, soundfont.WithLogger(logger))
	}
	return opts
}

func run(ctx context.Context, w io.Writer, paths []string, opts []soundfont.Option) error {
	banks, err := soundfont.OpenMany(ctx, paths, opts...)
	if err != nil {
		return err
	}

	for i, bank := range banks {
		if len(banks) > 1 {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "%s:\n", bank.Path)
		}

		if !bank.Recognized() {
			fmt.Fprintf(w, "Not a SoundFont file: %s\n", bank.Warnings[0].Message)
			continue
		}

		printSummary(w, bank)
		if *listSamples {
			printSamples(w, bank)
		}
	}
	return nil
}

// printSummary writes the INFO summary of a bank.
func printSummary(w io.Writer, bank *soundfont.File) {
	fmt.Fprintf(w, "SoundFont Version %s\n", bank.Version())
	fmt.Fprintf(w, "'%s', %s, for the %s sound engine.\n", bank.BankName(), bank.Engineers(), bank.SoundEngine())
	fmt.Fprintf(w, "Copyrights: %s\n", bank.Copyright())
	fmt.Fprintf(w, "Comments: %s\n", bank.Comments())
	fmt.Fprintf(w, "Dates: %s\n", bank.CreationDates())
	fmt.Fprintf(w, "Number of samples: %d\n", bank.SampleCount())
}

// printSamples writes one line per sample header.
func printSamples(w io.Writer, bank *soundfont.File) {
	for h := range bank.SampleHeaders() {
		fmt.Fprintf(w, "'%s' %dHz %d samples\n", h.Name, h.SampleRate, int64(h.End)-int64(h.Start))
	}
}
