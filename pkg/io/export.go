package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/venngen/pkg/errors"
)

// WriteJSON encodes f as indented JSON and writes it to w.
// The output can be re-imported with [ReadJSON].
func WriteJSON(f File, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteTOML encodes f as TOML and writes it to w.
// The output can be re-imported with [ReadTOML].
func WriteTOML(f File, w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(f); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// Export writes f to path, choosing the encoder by extension.
func Export(f File, path string) error {
	var write func(File, io.Writer) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		write = WriteJSON
	case ".toml":
		write = WriteTOML
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unsupported spec file %q (want .json or .toml)", path)
	}

	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer fh.Close()
	return write(f, fh)
}
