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

// ReadJSON decodes a JSON spec from r. Unknown keys are an error.
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (File, error) {
	var f File
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return File{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode json spec")
	}
	return f, nil
}

// ReadTOML decodes a TOML spec from r. Unknown keys are an error.
// ReadTOML does not close r.
func ReadTOML(r io.Reader) (File, error) {
	var f File
	meta, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return File{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode toml spec")
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return File{}, errors.New(errors.ErrCodeInvalidInput, "unknown keys in toml spec: %s", strings.Join(keys, ", "))
	}
	return f, nil
}

// Import reads the spec file at path, choosing the decoder by extension.
func Import(path string) (File, error) {
	read, err := readerFor(path)
	if err != nil {
		return File{}, err
	}

	fh, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return File{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "spec file %s", path)
		}
		return File{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer fh.Close()

	f, err := read(fh)
	if err != nil {
		return File{}, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

func readerFor(path string) (func(io.Reader) (File, error), error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return ReadJSON, nil
	case ".toml":
		return ReadTOML, nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported spec file %q (want .json or .toml)", path)
	}
}
