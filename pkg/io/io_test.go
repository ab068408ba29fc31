package io

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/matzehuels/venngen/pkg/errors"
	"github.com/matzehuels/venngen/pkg/pipeline"
)

func sampleFile() File {
	return File{
		First:       "Cats",
		Second:      "Dogs",
		FirstSecond: "Pets",
		Third:       "Fish",
		Central:     "All",
		Radius:      120,
		Size:        600,
		Overlap:     pipeline.Float(0),
	}
}

func TestReadTOML(t *testing.T) {
	src := `
first = "Cats"
second = "Dogs"
first_second = "Pets"
radius = 120.0
overlap = -5.0
`
	f, err := ReadTOML(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ReadTOML() error: %v", err)
	}
	if f.First != "Cats" || f.FirstSecond != "Pets" || f.Radius != 120 {
		t.Errorf("unexpected file: %+v", f)
	}
	if f.Overlap == nil || *f.Overlap != -5 {
		t.Errorf("Overlap = %v, want -5", f.Overlap)
	}
	if f.Size != 0 {
		t.Errorf("Size = %v, want unset", f.Size)
	}
}

func TestReadUnknownKeys(t *testing.T) {
	if _, err := ReadTOML(strings.NewReader(`frist = "typo"`)); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("ReadTOML unknown key: err = %v", err)
	}
	if _, err := ReadJSON(strings.NewReader(`{"frist": "typo"}`)); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("ReadJSON unknown key: err = %v", err)
	}
}

func TestReadMalformed(t *testing.T) {
	if _, err := ReadJSON(strings.NewReader(`{"first": `)); err == nil {
		t.Error("ReadJSON accepted truncated input")
	}
	if _, err := ReadTOML(strings.NewReader(`first = `)); err == nil {
		t.Error("ReadTOML accepted truncated input")
	}
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		write func(File, *bytes.Buffer) error
		read  func(*bytes.Buffer) (File, error)
	}{
		{
			"json",
			func(f File, b *bytes.Buffer) error { return WriteJSON(f, b) },
			func(b *bytes.Buffer) (File, error) { return ReadJSON(b) },
		},
		{
			"toml",
			func(f File, b *bytes.Buffer) error { return WriteTOML(f, b) },
			func(b *bytes.Buffer) (File, error) { return ReadTOML(b) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := tt.write(sampleFile(), &buf); err != nil {
				t.Fatalf("write: %v", err)
			}
			got, err := tt.read(&buf)
			if err != nil {
				t.Fatalf("read: %v", err)
			}
			if !reflect.DeepEqual(got, sampleFile()) {
				t.Errorf("round trip = %+v, want %+v", got, sampleFile())
			}
		})
	}
}

func TestImportExport(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"spec.json", "spec.toml", "SPEC.TOML"} {
		path := filepath.Join(dir, name)
		if err := Export(sampleFile(), path); err != nil {
			t.Fatalf("Export(%s): %v", name, err)
		}
		got, err := Import(path)
		if err != nil {
			t.Fatalf("Import(%s): %v", name, err)
		}
		if !reflect.DeepEqual(got, sampleFile()) {
			t.Errorf("Import(%s) = %+v", name, got)
		}
	}
}

func TestImportErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Import(filepath.Join(dir, "missing.json")); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing file: err = %v", err)
	}

	yaml := filepath.Join(dir, "spec.yaml")
	if err := os.WriteFile(yaml, []byte("first: a"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Import(yaml); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("yaml file: err = %v", err)
	}
	if err := Export(sampleFile(), yaml); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("export yaml: err = %v", err)
	}
}

func TestOptionsConversion(t *testing.T) {
	f := sampleFile()
	opts := f.Options()
	if opts.First != "Cats" || opts.Third != "Fish" || opts.Radius != 120 || opts.Size != 600 {
		t.Errorf("unexpected options: %+v", opts)
	}
	if opts.Overlap == nil || *opts.Overlap != 0 {
		t.Errorf("Overlap = %v, want explicit 0", opts.Overlap)
	}
	if back := FromOptions(opts); !reflect.DeepEqual(back, f) {
		t.Errorf("FromOptions(Options()) = %+v, want %+v", back, f)
	}
}
