package romdb

import (
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
)

// headerSize is the prefix hashed with md5. Disc image formats keep their
// identifying headers in the first 64 KiB, so the header hash distinguishes
// re-rips of the same title without a full-content comparison.
const headerSize = 64 * 1024

// Hashes is the digest set for one rom file, computed in a single read.
type Hashes struct {
	Size      int64
	SHA256    string
	MD5Header string
}

// HashFile hashes the file at path: sha256 over the full content and md5
// over the first 64 KiB.
func HashFile(path string) (Hashes, error) {
	file, err := os.Open(path)
	if err != nil {
		return Hashes{}, fmt.Errorf("open rom: %w", err)
	}
	defer file.Close()

	full := sha256.New()
	header := md5.New()

	head, err := io.CopyN(io.MultiWriter(full, header), file, headerSize)
	if err != nil && err != io.EOF {
		return Hashes{}, fmt.Errorf("hash rom header: %w", err)
	}
	rest, err := io.Copy(full, file)
	if err != nil {
		return Hashes{}, fmt.Errorf("hash rom: %w", err)
	}

	return Hashes{
		Size:      head + rest,
		SHA256:    hex.EncodeToString(full.Sum(nil)),
		MD5Header: hex.EncodeToString(header.Sum(nil)),
	}, nil
}
