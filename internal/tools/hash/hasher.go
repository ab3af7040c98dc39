package hasher

import (
	"errors"
	"fmt"
	"hash"
	"hash/fnv"
	"io/fs"
	"os"
)

type ContentHash struct {
	hash.Hash64
}

// the hash is cumulative, so you can call SumBytes multiple times
// and the hash will cover everything written so far
func (h *ContentHash) SumBytes(chunks ...[]byte) error {
	for _, b := range chunks {
		if _, err := h.Write(b); err != nil {
			return err
		}
	}
	return nil
}

func (h *ContentHash) Reset() {
	h.Hash64.Reset()
}

func (h *ContentHash) GetHash() string {
	return fmt.Sprintf("%x", h.Hash64.Sum64())
}

func NewFNVContentHash() ContentHash {
	return ContentHash{fnv.New64()}
}

// Of returns the FNV-64 hash of b.
func Of(b []byte) string {
	h := NewFNVContentHash()
	_ = h.SumBytes(b)
	return h.GetHash()
}

// SameAsFile reports whether the file at path already holds content. A
// missing file is never the same.
func SameAsFile(path string, content []byte) (bool, error) {
	existing, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return Of(existing) == Of(content), nil
}
