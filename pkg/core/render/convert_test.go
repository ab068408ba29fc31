package render

import (
	"bytes"
	"strings"
	"testing"
)

const tinySVG = `<svg xmlns="http://www.w3.org/2000/svg" width="10" height="10"><circle cx="5" cy="5" r="4"/></svg>`

func TestToPDF(t *testing.T) {
	if !Available() {
		out, err := ToPDF([]byte(tinySVG))
		if err == nil {
			t.Fatalf("ToPDF() without %s returned %d bytes, want error", converter, len(out))
		}
		if !strings.Contains(err.Error(), "librsvg") {
			t.Errorf("error %q does not mention librsvg", err)
		}
		return
	}

	out, err := ToPDF([]byte(tinySVG))
	if err != nil {
		t.Fatalf("ToPDF() error: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Errorf("ToPDF() output does not start with %%PDF")
	}
}
