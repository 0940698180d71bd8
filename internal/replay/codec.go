package replay

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"
)

func Encode(w io.Writer, rec *Recording) error {
	out := *rec
	out.Magic = Magic
	out.Version = Version
	if err := msgpack.NewEncoder(w).Encode(&out); err != nil {
		return fmt.Errorf("encode replay: %w", err)
	}
	return nil
}

func Decode(r io.Reader) (*Recording, error) {
	var rec Recording
	if err := msgpack.NewDecoder(r).Decode(&rec); err != nil {
		return nil, fmt.Errorf("decode replay: %w", err)
	}
	if rec.Magic != Magic {
		return nil, ErrBadMagic
	}
	if rec.Version != Version {
		return nil, &VersionError{Got: rec.Version}
	}
	return &rec, nil
}

// WriteFile writes rec next to path and renames it into place, so a crash
// mid-write never leaves a truncated replay behind.
func WriteFile(path string, rec *Recording) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create replay: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	bw := bufio.NewWriter(tmp)
	if err := Encode(bw, rec); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write replay: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write replay: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("write replay: %w", err)
	}
	return nil
}

func ReadFile(path string) (*Recording, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open replay: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(bufio.NewReader(f))
}
