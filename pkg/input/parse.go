// Package input reads hunt files: a target address followed by one line of
// candidate words per mnemonic position.
package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/aretw0/wallethunt/pkg/domain"
)

// File is a parsed hunt file.
type File struct {
	// Address is the target address from the first non-blank line.
	Address string
	// Positions holds the candidate words for each mnemonic position, in file order.
	Positions [][]string
}

// ReadFile parses the hunt file at path.
func ReadFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	hf, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return hf, nil
}

// Parse reads a hunt file.
//
// Blank lines and lines starting with '#' are ignored. The first remaining line
// is the address; each later line lists the words for one position, separated
// by commas and/or whitespace. Words are lower-cased and duplicates within a
// position are dropped, keeping first-seen order.
func Parse(r io.Reader) (*File, error) {
	hf := &File{}
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if hf.Address == "" {
			if strings.ContainsFunc(line, unicode.IsSpace) || strings.Contains(line, ",") {
				return nil, fmt.Errorf("%w: line %d: address must be a single token, got %q", domain.ErrMalformedInput, lineNo, line)
			}
			hf.Address = line
			continue
		}

		words := splitWords(line)
		if len(words) == 0 {
			return nil, fmt.Errorf("%w: line %d: no words", domain.ErrMalformedInput, lineNo)
		}
		hf.Positions = append(hf.Positions, words)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	if hf.Address == "" {
		return nil, fmt.Errorf("%w: missing target address", domain.ErrMalformedInput)
	}
	if len(hf.Positions) == 0 {
		return nil, fmt.Errorf("%w: no word positions after the address", domain.ErrMalformedInput)
	}
	return hf, nil
}

func splitWords(line string) []string {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	seen := make(map[string]struct{}, len(fields))
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		w := strings.ToLower(f)
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		words = append(words, w)
	}
	return words
}
