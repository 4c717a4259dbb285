// Package parser reads the inputs of a slide build: tables, declarations,
// slide definitions, range expressions and templates.
package parser

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// NoUpperBound is passed to ParseRange when open ranges are not allowed.
const NoUpperBound = -1

// MaxFieldNumber is the largest number a range expression may name.
// It matches the row limit of a spreadsheet, which also bounds answer counts.
const MaxFieldNumber = 1 << 20

var (
	// ErrMalformedRange indicates a range expression token that cannot be parsed.
	ErrMalformedRange = errors.New("malformed range")
	// ErrDuplicateField indicates a range expression selecting the same field twice.
	ErrDuplicateField = errors.New("range contains duplicates")
	// ErrOpenRange indicates an open range ("A-") given without an upper bound.
	ErrOpenRange = errors.New("open range without upper bound")
)

// ParseRange parses a comma-separated list of 1-based numbers and ranges
// ("2-5,7", "3-") into sorted zero-based indices.
// last is the 1-based upper bound for open ranges, or NoUpperBound.
func ParseRange(expr string, last int) ([]int, error) {
	var result []int
	seen := make(map[int]bool)

	for _, token := range strings.Split(expr, ",") {
		token = strings.TrimSpace(token)
		from, to, err := parseRangeToken(token, last)
		if err != nil {
			return nil, err
		}
		for pos := from; pos <= to; pos++ {
			if seen[pos] {
				return nil, fmt.Errorf("%w: %q selects %d twice", ErrDuplicateField, expr, pos)
			}
			seen[pos] = true
			result = append(result, pos-1)
		}
	}

	sort.Ints(result)
	return result, nil
}

// parseRangeToken returns the inclusive 1-based bounds of a single token.
// An open range whose start lies past last is empty.
func parseRangeToken(token string, last int) (from, to int, err error) {
	lo, hi, isRange := strings.Cut(token, "-")

	from, err = parseFieldNumber(lo)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedRange, token)
	}
	if !isRange {
		return from, from, nil
	}

	if strings.TrimSpace(hi) == "" {
		if last == NoUpperBound {
			return 0, 0, fmt.Errorf("%w: %q", ErrOpenRange, token)
		}
		return from, last, nil
	}

	to, err = parseFieldNumber(hi)
	if err != nil || to < from {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedRange, token)
	}
	return from, to, nil
}

func parseFieldNumber(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	if n < 1 || n > MaxFieldNumber {
		return 0, fmt.Errorf("field number %d out of range", n)
	}
	return n, nil
}
