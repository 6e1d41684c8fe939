// Package digest computes content hashes of archive files.
//
// Files are read in fixed-size chunks so memory use stays bounded no matter
// how large a disc image is.
package digest

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
)

// DefaultChunkSize is the read size used when none is configured.
const DefaultChunkSize = 8 * 1024

// Sum is the result of hashing one stream.
type Sum struct {
	// Hex is the lower-case hex SHA-256 digest.
	Hex string
	// Size is the number of bytes hashed.
	Size int64
}

// File hashes the file at path.
func File(path string, chunkSize int) (Sum, error) {
	f, err := os.Open(path)
	if err != nil {
		return Sum{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	sum, err := Reader(f, chunkSize)
	if err != nil {
		return Sum{}, fmt.Errorf("hash %s: %w", path, err)
	}
	return sum, nil
}

// Reader hashes r until EOF, reading at most chunkSize bytes at a time.
func Reader(r io.Reader, chunkSize int) (Sum, error) {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}

	h := sha256.New()
	buf := make([]byte, chunkSize)
	var size int64

	for {
		n, err := r.Read(buf)
		if n > 0 {
			h.Write(buf[:n])
			size += int64(n)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return Sum{}, err
		}
	}

	return Sum{Hex: hex.EncodeToString(h.Sum(nil)), Size: size}, nil
}
