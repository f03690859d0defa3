package soundfont

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/simonhull/soundfont/internal/sf2"
	"github.com/simonhull/soundfont/internal/types"
)

// File represents a decoded SoundFont bank.
//
// File holds the INFO metadata, the sample data and the nine pdta record
// arrays, each with its terminal record. It holds no file handle and is not
// modified after decoding, so it may be shared between goroutines.
type File = types.File

// Record types of the pdta list.
type (
	PresetHeader     = types.PresetHeader
	Zone             = types.Zone
	Modulator        = types.Modulator
	Generator        = types.Generator
	InstrumentHeader = types.InstrumentHeader
	SampleHeader     = types.SampleHeader
	Info             = types.Info
	VersionTag       = types.VersionTag
	Text             = types.Text
	PCM              = types.PCM
)

// Open opens a SoundFont file and decodes it.
//
// The file is read once, front to back, and closed before Open returns.
//
// If the file is not a RIFF sfbk container, Open returns a File for which
// Recognized reports false and a nil error, unless WithStrictParsing is set.
//
// Example:
//
//	bank, err := soundfont.Open("bank.sf2")
//	if err != nil {
//		return err
//	}
//	fmt.Println(bank.BankName())
func Open(path string, opts ...Option) (*File, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	return decode(f, path, options)
}

// Decode decodes a SoundFont bank from r. name identifies the stream in
// errors and warnings.
func Decode(r io.Reader, name string, opts ...Option) (*File, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	return decode(r, name, options)
}

func decode(r io.Reader, path string, options *openOptions) (*File, error) {
	file, err := sf2.Decode(r, path, sf2.Config{
		Logger:                options.logger,
		IgnoreErrors:          options.ignoreErrors,
		IgnoreIndexOutOfRange: options.ignoreIndexOutOfRange,
	})
	if err != nil {
		return nil, err
	}

	// Apply option: ignore warnings
	if options.ignoreWarnings {
		file.Warnings = nil
	}

	// Check strict parsing mode
	if options.strictParsing && len(file.Warnings) > 0 {
		return nil, fmt.Errorf("strict parsing failed: %s", file.Warnings[0])
	}

	return file, nil
}

// OpenContext opens a file with context support for cancellation.
//
// The context is checked before starting. A single decode is one sequential
// pass with no suspension points, so it is not interrupted once begun.
//
// Options can be provided just like with Open():
//
//	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
//	defer cancel()
//
//	bank, err := soundfont.OpenContext(ctx, "bank.sf2",
//	    soundfont.WithStrictParsing(),
//	)
func OpenContext(ctx context.Context, path string, opts ...Option) (*File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Open(path, opts...)
}

// OpenMany opens multiple SoundFont files concurrently.
//
// Files are decoded in parallel using up to runtime.NumCPU() goroutines.
// Results are returned in the same order as the input paths. The first
// failure cancels the files not yet started and is returned alone.
//
// Example:
//
//	banks, err := soundfont.OpenMany(ctx, paths, soundfont.WithIgnoreIndexOutOfRange())
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, b := range banks {
//		fmt.Printf("%s: %d samples\n", b.Path, b.SampleCount())
//	}
func OpenMany(ctx context.Context, paths []string, opts ...Option) ([]*File, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([]*File, len(paths))

	for i, path := range paths {
		g.Go(func() error {
			file, err := OpenContext(ctx, path, opts...)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = file
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
