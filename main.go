// go-inf-converter
// Decompresses WarFront: Turning Point INF configuration files and converts
// them to a human-readable text form.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"
)

func main() {
	fmt.Println("go-inf-converter")
	fmt.Println("Decompresses and converts WarFront: Turning Point INF files")
	fmt.Println()

	toText := flag.Bool("text", false, "Convert binary INF to text form")
	toTextShort := flag.Bool("t", false, "Convert binary INF to text form (short)")
	analyze := flag.Bool("analyze", false, "Report file structure without writing output")
	analyzeShort := flag.Bool("a", false, "Report file structure without writing output (short)")
	inPlace := flag.Bool("inplace", false, "Overwrite input files with output")
	inPlaceShort := flag.Bool("i", false, "Overwrite input files with output (short)")
	output := flag.String("o", "", "Output file or directory (default derived from input)")
	verbose := flag.Bool("v", false, "Show detailed output")
	flag.Parse()

	opts := Options{
		ToText:  *toText || *toTextShort,
		Analyze: *analyze || *analyzeShort,
		InPlace: *inPlace || *inPlaceShort,
		Verbose: *verbose,
	}

	paths := flag.Args()
	if len(paths) == 0 {
		fmt.Println("Usage: go-inf-converter [options] <files/directories>")
		fmt.Println("Options:")
		flag.PrintDefaults()
		return
	}

	startTime := time.Now()
	converter := NewConverter(opts)

	failed := false
	for _, path := range paths {
		ok, err := processPath(converter, path, *output)
		if err != nil {
			log.Printf("Error processing %s: %v\n", path, err)
			failed = true
		}
		if !ok {
			failed = true
		}
	}

	elapsed := time.Since(startTime)
	fmt.Printf("Took %d seconds\n", int(elapsed.Seconds()))

	if failed {
		os.Exit(1)
	}
}

// processPath dispatches one argument to the matching mode. ok reports
// whether every file under the path succeeded.
func processPath(c *Converter, path, output string) (ok bool, err error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}

	if c.opts.Analyze {
		if info.IsDir() {
			return false, fmt.Errorf("analyze mode takes a single file")
		}
		return true, c.AnalyzeFile(path)
	}

	if info.IsDir() {
		results, err := c.ConvertDir(path, outputDirFor(c.opts, path, output))
		if err != nil {
			return false, err
		}
		return results.Failed() == 0, nil
	}

	res := c.ConvertFile(path, outputFileFor(c.opts, path, output))
	if res.Err != nil {
		return false, res.Err
	}
	return true, nil
}
