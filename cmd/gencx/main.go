// The gencx command compresses nucleotide sequence files with the .cx
// permutation-table codec and decompresses them back.
//
// Usage:
//
//	gencx -f <file>       encode <file> into <file>.cx
//	gencx -d -f <file.cx> decode <file.cx> back into <file>
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang-cz/devslog"

	"github.com/gencx/gencx"
)

var (
	inFile  = flag.String("f", "", "input file")
	outFile = flag.String("o", "", "output file (default: input plus/minus the .cx extension)")
	decode  = flag.Bool("d", false, "decode a .cx file instead of encoding")
	verbose = flag.Bool("v", false, "enable debug logging")
)

func main() {
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logOpts := &devslog.Options{HandlerOptions: &slog.HandlerOptions{
		Level: level,
	}}
	slog.SetDefault(slog.New(devslog.NewHandler(os.Stderr, logOpts)))

	if *inFile == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*inFile, *outFile, *decode); err != nil {
		slog.Error("gencx failed", "error", err)
		os.Exit(1)
	}
}

func run(in, out string, decode bool) error {
	data, err := os.ReadFile(in)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	if out == "" {
		out = defaultOutName(in, decode)
	}

	tbl := gencx.NewTable()

	var result []byte
	if decode {
		result, err = tbl.DecodeAll(data)
	} else {
		result, err = tbl.EncodeAll(data)
	}
	if err != nil {
		return err
	}

	if err := writeAtomic(out, result); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	slog.Info("done", "input", in, "output", out,
		"inputSize", len(data), "outputSize", len(result))
	return nil
}

// defaultOutName appends the .cx extension when encoding and strips it
// when decoding. Decoding a file without the extension gets ".out" so
// the input is never overwritten.
func defaultOutName(in string, decode bool) string {
	if !decode {
		return in + gencx.Extension
	}
	if strings.HasSuffix(in, gencx.Extension) {
		return strings.TrimSuffix(in, gencx.Extension)
	}
	return in + ".out"
}

// writeAtomic writes data to a temp file in the target directory and
// renames it into place, so a failed run never leaves a partial output.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
