// Command bitonic sorts text inputs with the bitonic sorting network.
//
// Usage:
//
//	bitonic [flags] [file ...]
//	bitonic -order desc -numeric sizes.txt
//	bitonic -natural -verify a.txt.gz b.txt.zst
//	zcat words.gz | bitonic -collate sv
//
// Every input (a file, or standard input when no file or "-" is given) is
// one sequence with one element per line. Its line count must be a power of
// two; inputs that aren't are reported and the command exits non-zero.
// Compressed inputs (.gz, .zst, .sz, .lz4, .br) are decompressed, and text
// in a legacy charset is converted to UTF-8.
//
// Defaults for most flags come from the environment, optionally loaded from
// a YAML or JSON file with -config:
//
//	BITONIC_ORDER               asc or desc
//	BITONIC_NUMERIC             compare lines as numbers
//	BITONIC_NATURAL             compare digit runs as numbers
//	BITONIC_COLLATE             compare with the collation of this language
//	BITONIC_WORKERS             inputs sorted at once
//	BITONIC_MAX_CONCURRENCY     goroutines per sort
//	BITONIC_PARALLEL_THRESHOLD  smallest region sorted on its own goroutine
package main

import (
	"context"
	"os"

	"github.com/amp-labs/bitonic/shutdown"
)

func main() {
	// An interrupt cancels the inputs that haven't started sorting yet.
	ctx, stop := shutdown.SetupHandler(context.Background())

	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)

	stop()
	os.Exit(code)
}
