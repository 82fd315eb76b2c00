package main

import (
	"fmt"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/goinggo/workpool"
)

// BatchResults collects per-file outcomes of a directory run. It replaces
// ambient counters: workers append under the mutex and the caller reads the
// totals once the pool has drained.
type BatchResults struct {
	mu    sync.Mutex
	Files []FileResult
}

func (r *BatchResults) add(fr FileResult) {
	r.mu.Lock()
	r.Files = append(r.Files, fr)
	r.mu.Unlock()
}

// Count returns how many files finished with the given status.
func (r *BatchResults) Count(s Status) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, fr := range r.Files {
		if fr.Status == s {
			n++
		}
	}
	return n
}

// Failed returns how many files failed outright.
func (r *BatchResults) Failed() int {
	return r.Count(StatusFailed)
}

// fileJob is one unit of pool work: convert a single file and record the
// outcome.
type fileJob struct {
	conv    *Converter
	in, out string
	results *BatchResults
	wg      *sync.WaitGroup
}

func (j *fileJob) DoWork(workRoutine int) {
	defer j.wg.Done()
	j.results.add(j.conv.ConvertFile(j.in, j.out))
}

// ConvertDir processes every .inf file under inDir, mirroring the directory
// layout below outDir. Files are independent, so they run on a bounded
// worker pool; one file's failure is recorded, never batch-fatal.
func (c *Converter) ConvertDir(inDir, outDir string) (*BatchResults, error) {
	matches, err := doublestar.FilepathGlob(filepath.Join(inDir, "**", "*.inf"))
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", inDir, err)
	}

	fmt.Printf("Found %d .inf files\n", len(matches))
	fmt.Printf("Output: %s\n", outDir)
	if c.opts.ToText {
		fmt.Println("Mode: Convert to text")
	}
	fmt.Println()

	results := &BatchResults{}
	pool := workpool.New(runtime.NumCPU()*2, int32(len(matches))+1)
	var wg sync.WaitGroup

	for _, m := range matches {
		rel, err := filepath.Rel(inDir, m)
		if err != nil {
			rel = filepath.Base(m)
		}

		job := &fileJob{
			conv:    c,
			in:      m,
			out:     filepath.Join(outDir, rel),
			results: results,
			wg:      &wg,
		}
		wg.Add(1)
		if err := pool.PostWork("convert", job); err != nil {
			// Queue full or pool shut down; do the work inline.
			job.DoWork(0)
		}
	}

	wg.Wait()
	pool.Shutdown("convert")

	c.printSummary(results)
	return results, nil
}

func (c *Converter) printSummary(results *BatchResults) {
	fmt.Println("\nDone!")
	if c.opts.ToText {
		fmt.Printf("  Converted to text: %d\n", results.Count(StatusConverted))
	} else {
		fmt.Printf("  Decompressed: %d\n", results.Count(StatusDecompressed))
	}
	fmt.Printf("  Already text: %d\n", results.Count(StatusText))
	fmt.Printf("  Binary (fallback): %d\n", results.Count(StatusBinaryFallback))
	fmt.Printf("  Errors: %d\n", results.Failed())
	fmt.Printf("  Skipped: %d\n", results.Count(StatusSkipped))

	for _, fr := range results.Files {
		if fr.Status == StatusFailed {
			fmt.Printf("  FAILED %s: %v\n", fr.Input, fr.Err)
		}
	}
}
