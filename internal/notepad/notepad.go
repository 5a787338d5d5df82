// Package notepad reads notepad files and splits them into lines.
package notepad

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"strings"
)

// Notepad holds loaded notepad text with its metadata.
type Notepad struct {
	FilePath string
	Raw      string
	Lines    []string
	Hash     string
}

// Load reads a notepad file. The path "-" reads standard input.
func Load(path string) (*Notepad, error) {
	if path == "-" {
		return Read("stdin", os.Stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("notepad.Load: %w", err)
	}
	return FromBytes(path, data), nil
}

// Read loads a notepad from r, recording name as its path.
func Read(name string, r io.Reader) (*Notepad, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("notepad.Read: %w", err)
	}
	return FromBytes(name, data), nil
}

// FromBytes builds a notepad from raw content and computes its SHA-256 hash.
func FromBytes(name string, data []byte) *Notepad {
	raw := string(data)
	h := sha256.Sum256(data)
	return &Notepad{
		FilePath: name,
		Raw:      raw,
		Lines:    SplitLines(raw),
		Hash:     fmt.Sprintf("sha256:%x", h),
	}
}

// SplitLines splits text on '\n' and drops one trailing '\r' from each line.
// Empty text yields a single empty line, matching an empty editor.
func SplitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
