// Package checksum fingerprints input files so a batch can recognize
// byte-identical duplicates.
package checksum

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
)

// File hashes the file's content and returns the hex-encoded digest.
func File(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer f.Close()

	digest := xxhash.New()
	if _, err := io.Copy(digest, f); err != nil {
		return "", fmt.Errorf("failed to hash file %s: %w", path, err)
	}

	return hex.EncodeToString(digest.Sum(nil)), nil
}
