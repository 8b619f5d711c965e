// Huffstat estimates how well canonical Huffman coding would compress files.
//
// Usage:
//
//	go run ./cmd/huffstat -workers 4 tiles.pb16 font.chr
//
// Flags:
//
//	-workers   Number of files analyzed in parallel (default: 1)
//	-bytes     Code whole bytes instead of nibbles (default: false)
//	-codes     Number of codes to print per file (default: 5)
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"
	"golang.org/x/sync/errgroup"

	"github.com/chronos-tachyon/canonhuff/internal/logger"
)

func main() {
	workersFlag := flag.Int("workers", 1, "number of files analyzed in parallel")
	bytesFlag := flag.Bool("bytes", false, "code whole bytes instead of nibbles")
	codesFlag := flag.Int("codes", 5, "number of codes to print per file")
	flag.Parse()

	log := logger.New(os.Stderr)
	if flag.NArg() == 0 {
		log.Errorf("usage: huffstat [flags] FILE...")
		os.Exit(2)
	}

	opts := options{bytewise: *bytesFlag, codeLimit: *codesFlag}
	reports, err := run(context.Background(), flag.Args(), *workersFlag, opts)
	if err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}

	var saved int
	for _, r := range reports {
		fmt.Print(r.text)
		saved += r.saved
	}
	fmt.Printf("Estimated total savings: %d bytes\n", saved)
	log.Infof("analyzed %d files", len(reports))
}

// run analyzes every file, at most workers at a time, and returns the
// reports in argument order.
func run(ctx context.Context, paths []string, workers int, opts options) ([]report, error) {
	reports := make([]report, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := analyzeFile(path, opts)
			if err != nil {
				return err
			}
			reports[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

func analyzeFile(path string, opts options) (report, error) {
	f, err := os.Open(path)
	if err != nil {
		return report{}, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return report{}, err
	}
	if info.Size() == 0 {
		return analyze(path, nil, opts)
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return report{}, fmt.Errorf("%s: mmap: %w", path, err)
	}
	defer m.Unmap()

	return analyze(path, m, opts)
}
