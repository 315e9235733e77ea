package file

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/wallethunt/pkg/domain"
)

const pathCoinPrefix = "path_coin: "

// MatchStore implements ports.MatchSink with one `.match-<address>.txt` file per target.
// The first line holds the found phrase; an optional second line holds the
// derivation path/coin reported by the engine.
type MatchStore struct {
	BasePath string
}

// NewMatchStore creates a MatchStore rooted at basePath.
// If basePath is empty, it defaults to the current directory.
func NewMatchStore(basePath string) *MatchStore {
	if basePath == "" {
		basePath = "."
	}
	return &MatchStore{BasePath: basePath}
}

// WriteMatch persists the result atomically.
// It writes to a temporary file first, syncs via fsync, and then renames it to the destination.
func (m *MatchStore) WriteMatch(ctx context.Context, address string, result domain.Result) error {
	if !result.Found() {
		return fmt.Errorf("refusing to write an empty match")
	}
	dir := m.BasePath
	if dir == "" {
		dir = "."
	}
	destPath, err := MatchPath(dir, address)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to ensure match directory: %w", err)
	}

	var b strings.Builder
	b.WriteString(strings.TrimSpace(result.Mnemonic))
	b.WriteString("\n")
	if result.PathCoin != "" {
		b.WriteString(pathCoinPrefix + result.PathCoin + "\n")
	}

	// Same directory keeps the rename on one filesystem.
	tmpFile, err := os.CreateTemp(dir, "tmp-match-*.txt")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmpFile.WriteString(b.String()); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to fsync temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0600); err != nil {
		return fmt.Errorf("failed to restrict match file: %w", err)
	}

	// On Windows, os.Rename fails if dest exists.
	if _, err := os.Stat(destPath); err == nil {
		if err := os.Remove(destPath); err != nil {
			return fmt.Errorf("failed to remove existing match file for overwrite: %w", err)
		}
	}
	if err := os.Rename(tmpPath, destPath); err != nil {
		return fmt.Errorf("failed to rename temp file to match file: %w", err)
	}
	return nil
}

// ReadMatch loads a previously written match.
func (m *MatchStore) ReadMatch(ctx context.Context, address string) (domain.Result, bool, error) {
	path, err := MatchPath(m.BasePath, address)
	if err != nil {
		return domain.Result{}, false, err
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Result{}, false, nil
		}
		return domain.Result{}, false, fmt.Errorf("failed to read match file: %w", err)
	}
	defer f.Close()

	var res domain.Result
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
		case res.Mnemonic == "":
			res.Mnemonic = line
		case strings.HasPrefix(line, strings.TrimSpace(pathCoinPrefix)):
			res.PathCoin = strings.TrimSpace(strings.TrimPrefix(line, strings.TrimSpace(pathCoinPrefix)))
		}
	}
	if err := scanner.Err(); err != nil {
		return domain.Result{}, false, fmt.Errorf("failed to scan match file %s: %w", filepath.Base(path), err)
	}
	return res, res.Found(), nil
}
