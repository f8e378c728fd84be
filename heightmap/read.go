package heightmap

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Read loads a HeightMap from r, one grid row per line. Surrounding
// whitespace on each line and trailing blank lines are ignored.
func Read(r io.Reader) (*HeightMap, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		rows = append(rows, strings.TrimSpace(sc.Text()))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("heightmap: read: %w", err)
	}
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	return Parse(rows)
}

// Load opens the file at path and reads a HeightMap from it.
func Load(path string) (*HeightMap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("heightmap: open %s: %w", path, err)
	}
	defer f.Close()

	hm, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return hm, nil
}
