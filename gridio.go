// Package gwd loads patrol maps from local files or BigQuery and runs
// the two-pass loop search over them.
package gwd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"gridwarden.com/gwd/pkg/primitives"
)

// GridFromReader reads a textual patrol map from r and builds a Grid.
// Trailing blank lines and carriage returns are tolerated; everything
// else is validated by the Grid constructor.
func GridFromReader(r io.Reader) (*primitives.Grid, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read map: %w", err)
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return primitives.GridFromLines(lines)
}

// ReadGridFile loads a patrol map from a local text file.
func ReadGridFile(path string) (*primitives.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open map: %w", err)
	}
	defer f.Close()

	g, err := GridFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}
