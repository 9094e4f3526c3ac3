package common

import (
	"bufio"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// StdinName is the pseudo path used for stdin input.
const StdinName = "-"

// ContentHash computes SHA256 hash of content and returns hex string.
func ContentHash(data []byte) string {
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%x", hash)
}

// OptionsHash derives a stable hash from any JSON-marshalable options value,
// used as part of the document cache key.
func OptionsHash(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return ContentHash(data)
}

// ReadInput reads a file, or stdin when path is "-".
func ReadInput(path string) ([]byte, error) {
	if path == StdinName {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

// NormalizeText cleans up a string by trimming each line and collapsing the
// result onto a single space-separated line.
func NormalizeText(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			b.WriteString(line)
			b.WriteString(" ")
		}
	}
	return strings.TrimSpace(b.String())
}
