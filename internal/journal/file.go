package journal

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// MaxLineSize is the maximum line length accepted when reading a journal (1MB).
const MaxLineSize = 1024 * 1024

// ReadLines reads r fully into an ordered slice of lines. The journal is
// consumed before scanning begins; nothing is streamed.
func ReadLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	buf := make([]byte, MaxLineSize)
	scanner.Buffer(buf, MaxLineSize)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// LoadFile reads the journal at path and returns its lines.
func LoadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	defer func() { _ = f.Close() }()

	lines, err := ReadLines(f)
	if err != nil {
		return nil, fmt.Errorf("read journal %s: %w", path, err)
	}
	return lines, nil
}
