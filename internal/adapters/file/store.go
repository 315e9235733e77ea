package file

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const (
	exclusionPrefix = ".exclude-"
	matchPrefix     = ".match-"
	fileSuffix      = ".txt"
)

// ErrInvalidAddress is returned when an address cannot be used in a file name.
var ErrInvalidAddress = errors.New("address cannot be used as a file name")

// ExclusionPath returns the path of the exclusion file for address under dir.
func ExclusionPath(dir, address string) (string, error) {
	return targetPath(dir, exclusionPrefix, address)
}

// MatchPath returns the path of the match file for address under dir.
func MatchPath(dir, address string) (string, error) {
	return targetPath(dir, matchPrefix, address)
}

func targetPath(dir, prefix, address string) (string, error) {
	address = strings.TrimSpace(address)
	if address == "" || address == "." || address == ".." ||
		strings.ContainsAny(address, `/\`+"\x00\n\r") {
		return "", fmt.Errorf("%w: %q", ErrInvalidAddress, address)
	}
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, prefix+address+fileSuffix), nil
}

// Store implements ports.ExclusionStore on top of a plain text file holding
// one phrase per line. The file is read once when the store is opened and is
// only ever appended to afterwards.
type Store struct {
	path string

	mu           sync.Mutex
	set          map[string]struct{}
	out          *os.File
	needsNewline bool
}

// Open loads the exclusion file for address under dir.
// A missing file is treated as an empty set.
func Open(dir, address string) (*Store, error) {
	path, err := ExclusionPath(dir, address)
	if err != nil {
		return nil, err
	}
	return openPath(path)
}

func openPath(path string) (*Store, error) {
	s := &Store{
		path: path,
		set:  make(map[string]struct{}),
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to open exclusion file: %w", err)
	}
	defer f.Close()

	if err := s.load(f); err != nil {
		return nil, fmt.Errorf("failed to read exclusion file %s: %w", path, err)
	}
	return s, nil
}

func (s *Store) load(r io.Reader) error {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			s.needsNewline = !strings.HasSuffix(line, "\n")
			// Same normalization as exclusion.Keys, so hand-edited lines still match.
			if phrase := strings.Join(strings.Fields(line), " "); phrase != "" {
				s.set[phrase] = struct{}{}
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// Contains reports whether the exact phrase is in the set.
func (s *Store) Contains(ctx context.Context, phrase string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.set[phrase]
	return ok, nil
}

// Add appends the phrase to the file and fsyncs it before updating the set.
func (s *Store) Add(ctx context.Context, phrase string) error {
	phrase = strings.TrimSpace(phrase)
	if strings.ContainsAny(phrase, "\r\n") {
		return fmt.Errorf("phrase cannot span lines: %q", phrase)
	}
	phrase = strings.Join(strings.Fields(phrase), " ")
	if phrase == "" {
		return fmt.Errorf("phrase cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.set[phrase]; ok {
		return nil
	}

	if s.out == nil {
		if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
			return fmt.Errorf("failed to ensure exclusion directory: %w", err)
		}
		f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
		if err != nil {
			return fmt.Errorf("failed to open exclusion file for append: %w", err)
		}
		s.out = f
	}

	line := phrase + "\n"
	if s.needsNewline {
		// Previous writer left the last line unterminated.
		line = "\n" + line
	}
	if _, err := s.out.WriteString(line); err != nil {
		return fmt.Errorf("failed to append exclusion: %w", err)
	}
	if err := s.out.Sync(); err != nil {
		return fmt.Errorf("failed to fsync exclusion file: %w", err)
	}

	s.needsNewline = false
	s.set[phrase] = struct{}{}
	return nil
}

// Len returns the number of phrases in the set.
func (s *Store) Len(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.set), nil
}

// Close closes the append handle, if one was opened.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.out == nil {
		return nil
	}
	err := s.out.Close()
	s.out = nil
	return err
}
