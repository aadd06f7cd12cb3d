package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/joshuapare/cimkit/cim"
	"github.com/joshuapare/cimkit/internal/report"
)

func runCarve(inputPath, outputPath string) error {
	start := time.Now()

	store, err := cim.Open(inputPath)
	if err != nil {
		return err
	}
	defer store.Close()
	printVerbose("Scanning %s (%d bytes)\n", inputPath, store.Size())

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer out.Close()

	w, err := report.NewWriter(out)
	if err != nil {
		return fmt.Errorf("write output header: %w", err)
	}

	it := store.Records(cim.WithDiagnostics(func(d cim.Diagnostic) {
		if !quiet {
			fmt.Fprintln(os.Stderr, d)
		}
	}))

	hits := 0
	for {
		rec, err := it.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		hits++
		if err := w.Write(rec); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}

	printInfo("Hits: %d\n", hits)
	printInfo("Time elapsed: %.2fs\n", time.Since(start).Seconds())
	return nil
}
