package batch

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Input is one sequence read from a file or from standard input, one
// element per line.
type Input struct {
	Name    string
	Charset string
	Lines   []string
}

// Load reads the named input: it decompresses by extension, converts to
// UTF-8 (detecting the charset when label is empty) and splits into lines.
func Load(name, label string) (*Input, error) {
	rc, err := Open(name)
	if err != nil {
		return nil, err
	}

	defer func() { _ = rc.Close() }()

	decoded, applied := Decode(rc, label)

	lines, err := ReadLines(decoded)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}

	return &Input{Name: name, Charset: applied, Lines: lines}, nil
}

// ReadLines splits r into lines without their terminators. A trailing
// carriage return is dropped, and so is a single empty last line.
func ReadLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024) //nolint:mnd

	var lines []string

	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
