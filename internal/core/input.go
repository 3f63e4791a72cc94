package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// InputPath returns the conventional input location for a day: dir/NN.txt.
func InputPath(dir string, day int) string {
	return filepath.Join(dir, fmt.Sprintf("%02d.txt", day))
}

// ReadInput loads a puzzle input and trims surrounding whitespace.
func ReadInput(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read input %s: %w", path, err)
	}
	return strings.TrimSpace(string(data)), nil
}
