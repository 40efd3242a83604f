package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/amp-labs/bitonic/cli"
	"github.com/amp-labs/bitonic/compare"
	"github.com/amp-labs/bitonic/hashing"
	"golang.org/x/text/language"
)

// line is one input element. num is only meaningful for numeric comparison.
type line struct {
	text string
	num  float64
}

func byText(c compare.Comparator[string]) compare.Comparator[line] {
	return func(a, b line) compare.Ordering {
		return c(a.text, b.text)
	}
}

// comparatorFor builds the ascending comparator for a comparison mode. Ties
// in numeric mode fall back to the text, so "1.0" and "1" sort stably.
func comparatorFor(comparison cli.Comparison, lang string) (compare.Comparator[line], error) {
	switch comparison {
	case cli.Lexical:
		return byText(compare.Natural[string]()), nil
	case cli.Numeric:
		return compare.By(func(l line) float64 { return l.num }).
			Then(byText(compare.Natural[string]())), nil
	case cli.Natural:
		return byText(compare.NaturalStrings()), nil
	case cli.Collate:
		tag, err := language.Parse(lang)
		if err != nil {
			return nil, err
		}

		return byText(compare.Collated(tag)), nil
	default:
		return nil, fmt.Errorf("unknown comparison %q", comparison) //nolint:err113
	}
}

// toLines converts raw input lines. Numeric mode parses every line and fails
// on the first one that isn't a number.
func toLines(raw []string, comparison cli.Comparison) ([]line, error) {
	out := make([]line, len(raw))

	for i, text := range raw {
		out[i].text = text

		if comparison != cli.Numeric {
			continue
		}

		num, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}

		if math.IsNaN(num) {
			return nil, fmt.Errorf("line %d: NaN has no order", i+1) //nolint:err113
		}

		out[i].num = num
	}

	return out, nil
}

func fingerprint(x []line) hashing.Fingerprint {
	return hashing.Multiset(x, func(l line) uint64 {
		return hashing.String(l.text)
	})
}
