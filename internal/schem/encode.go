package schem

import (
	"fmt"
	"io"
	"os"

	"github.com/Tnze/go-mc/nbt"
	"github.com/klauspost/compress/gzip"
)

// Encode writes the structure as NBT rooted at an unnamed top-level
// compound. When compress is true the stream is gzip-wrapped, which is
// the form the game loads.
func (s *Structure[E]) Encode(w io.Writer, compress bool) error {
	if !compress {
		if err := nbt.NewEncoder(w).Encode(s, ""); err != nil {
			return fmt.Errorf("encode structure: %w", err)
		}
		return nil
	}

	zw := gzip.NewWriter(w)
	if err := nbt.NewEncoder(zw).Encode(s, ""); err != nil {
		zw.Close()
		return fmt.Errorf("encode structure: %w", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("flush gzip stream: %w", err)
	}
	return nil
}

// Save serializes the structure to a file, creating or overwriting it.
// I/O errors surface unchanged; nothing is retried and a partial file is
// not cleaned up.
func (s *Structure[E]) Save(path string, compress bool) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := s.Encode(f, compress); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
