// Package cli holds the interactive prompts of the bitonic command.
package cli

import (
	"io"
	"os"
	"strings"

	"github.com/amp-labs/bitonic/bitonic"
	"github.com/manifoldco/promptui"
)

// Comparison names how the command compares input lines.
type Comparison string

const (
	Lexical Comparison = "lexical"
	Numeric Comparison = "numeric"
	Natural Comparison = "natural"
	Collate Comparison = "collate"
)

var (
	orderChoices      = []bitonic.Order{bitonic.Ascending, bitonic.Descending} //nolint:gochecknoglobals
	comparisonChoices = []Comparison{Lexical, Numeric, Natural, Collate}    //nolint:gochecknoglobals
)

// Prompter asks questions on a terminal. The zero value uses os.Stdin and os.Stdout.
type Prompter struct {
	Stdin  io.ReadCloser
	Stdout io.WriteCloser
}

// SelectOrder asks for the sort direction, starting on current.
func (p *Prompter) SelectOrder(current bitonic.Order) (bitonic.Order, error) {
	names := make([]string, len(orderChoices))
	for i, o := range orderChoices {
		names[i] = o.String()
	}

	idx, err := p.choose("Sort order", names, indexOf(orderChoices, current))
	if err != nil {
		return current, err
	}

	return orderChoices[idx], nil
}

// SelectComparison asks how lines should be compared, starting on current.
func (p *Prompter) SelectComparison(current Comparison) (Comparison, error) {
	names := make([]string, len(comparisonChoices))
	for i, c := range comparisonChoices {
		names[i] = string(c)
	}

	idx, err := p.choose("Compare lines as", names, indexOf(comparisonChoices, current))
	if err != nil {
		return current, err
	}

	return comparisonChoices[idx], nil
}

func (p *Prompter) choose(label string, names []string, cursor int) (int, error) {
	sel := &promptui.Select{
		Label:     label,
		Items:     names,
		CursorPos: cursor,
		Stdin:     p.stdin(),
		Stdout:    p.stdout(),
		Searcher: func(input string, index int) bool {
			return strings.HasPrefix(names[index], strings.ToLower(input))
		},
	}

	idx, _, err := sel.Run()

	return idx, err
}

func (p *Prompter) stdin() io.ReadCloser {
	if p.Stdin != nil {
		return p.Stdin
	}

	return os.Stdin
}

func (p *Prompter) stdout() io.WriteCloser {
	if p.Stdout != nil {
		return p.Stdout
	}

	return os.Stdout
}

func indexOf[T comparable](choices []T, v T) int {
	for i, c := range choices {
		if c == v {
			return i
		}
	}

	return 0
}
