// core/npz/npz_test.go
package npz

import (
	"archive/zip"
	"bytes"
	"encoding/binary"
	"io"
	"strings"
	"testing"
)

// readMember decompresses one member and splits it into the npy header dict
// and the raw array data.
func readMember(t *testing.T, zr *zip.Reader, name string) (header string, data []byte) {
	t.Helper()
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open member %s: %v", name, err)
		}
		raw, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("read member %s: %v", name, err)
		}
		if !bytes.HasPrefix(raw, []byte("\x93NUMPY\x01\x00")) {
			t.Fatalf("member %s: bad npy magic: %q", name, raw[:10])
		}
		hlen := int(binary.LittleEndian.Uint16(raw[8:10]))
		if (10+hlen)%64 != 0 {
			t.Fatalf("member %s: header not 64-byte aligned (len %d)", name, hlen)
		}
		return string(raw[10 : 10+hlen]), raw[10+hlen:]
	}
	t.Fatalf("member %s not found", name)
	return "", nil
}

func writeArchive(t *testing.T, build func(w *Writer)) *zip.Reader {
	t.Helper()
	var buf bytes.Buffer
	w := NewWriter(&buf)
	build(w)
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	return zr
}

func TestWriteStrings(t *testing.T) {
	zr := writeArchive(t, func(w *Writer) {
		if err := w.WriteStrings("headers", []string{"abc", "defgh", "i"}); err != nil {
			t.Fatalf("write strings: %v", err)
		}
	})
	header, data := readMember(t, zr, "headers.npy")
	if !strings.Contains(header, "|S5") {
		t.Fatalf("descr: %s", header)
	}
	if !strings.Contains(header, "(3,)") {
		t.Fatalf("shape: %s", header)
	}
	if !strings.Contains(header, "'fortran_order': False") {
		t.Fatalf("order: %s", header)
	}
	if len(data) != 15 {
		t.Fatalf("data length %d, want 15", len(data))
	}
	if string(data[:5]) != "abc\x00\x00" || string(data[5:10]) != "defgh" {
		t.Fatalf("padding wrong: %q", data)
	}
}

func TestWriteUint8Matrix(t *testing.T) {
	zr := writeArchive(t, func(w *Writer) {
		err := w.WriteUint8Matrix("msa", [][]byte{[]byte("ACGT"), []byte("AC-T")})
		if err != nil {
			t.Fatalf("write matrix: %v", err)
		}
	})
	header, data := readMember(t, zr, "msa.npy")
	if !strings.Contains(header, "|u1") || !strings.Contains(header, "(2, 4)") {
		t.Fatalf("header: %s", header)
	}
	if string(data) != "ACGTAC-T" {
		t.Fatalf("data: %q", data)
	}
}

func TestWriteUint8MatrixEmpty(t *testing.T) {
	zr := writeArchive(t, func(w *Writer) {
		if err := w.WriteUint8Matrix("msa", nil); err != nil {
			t.Fatalf("write empty matrix: %v", err)
		}
	})
	header, data := readMember(t, zr, "msa.npy")
	if !strings.Contains(header, "(0, 0)") {
		t.Fatalf("header: %s", header)
	}
	if len(data) != 0 {
		t.Fatalf("data: %q", data)
	}
}

func TestWriteUint8MatrixRaggedRejected(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	err := w.WriteUint8Matrix("msa", [][]byte{[]byte("ACGT"), []byte("AC")})
	if err == nil {
		t.Fatal("expected error for ragged rows")
	}
}
