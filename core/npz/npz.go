// core/npz/npz.go

// Package npz writes NumPy .npz archives: a zip container whose members are
// .npy arrays, compressed with deflate. Only the two member kinds the
// pre-parser emits are supported: fixed-width byte strings (|S) and uint8
// matrices (|u1), matching what numpy.load expects on the consumer side.
package npz

import (
	"archive/zip"
	"encoding/binary"
	"fmt"
	"io"
)

// Writer adds npy members to an npz archive. Close finishes the zip
// directory but not the underlying writer.
type Writer struct {
	zw *zip.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{zw: zip.NewWriter(w)}
}

// WriteStrings adds a 1-D fixed-width byte-string member ('|S<n>', n = the
// longest value; NumPy zero-pads shorter rows the same way we do here).
func (w *Writer) WriteStrings(name string, vals []string) error {
	width := 1
	for _, v := range vals {
		if len(v) > width {
			width = len(v)
		}
	}
	mw, err := w.member(name)
	if err != nil {
		return err
	}
	hdr := npyHeader(fmt.Sprintf("|S%d", width), fmt.Sprintf("(%d,)", len(vals)))
	if _, err := mw.Write(hdr); err != nil {
		return err
	}
	pad := make([]byte, width)
	for _, v := range vals {
		if _, err := io.WriteString(mw, v); err != nil {
			return err
		}
		if _, err := mw.Write(pad[:width-len(v)]); err != nil {
			return err
		}
	}
	return nil
}

// WriteUint8Matrix adds a 2-D C-order uint8 member. All rows must have the
// same length.
func (w *Writer) WriteUint8Matrix(name string, rows [][]byte) error {
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	for i, r := range rows {
		if len(r) != cols {
			return fmt.Errorf("npz: member %q: row %d has %d columns, want %d", name, i, len(r), cols)
		}
	}
	mw, err := w.member(name)
	if err != nil {
		return err
	}
	hdr := npyHeader("|u1", fmt.Sprintf("(%d, %d)", len(rows), cols))
	if _, err := mw.Write(hdr); err != nil {
		return err
	}
	for _, r := range rows {
		if _, err := mw.Write(r); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) Close() error { return w.zw.Close() }

func (w *Writer) member(name string) (io.Writer, error) {
	return w.zw.CreateHeader(&zip.FileHeader{
		Name:   name + ".npy",
		Method: zip.Deflate,
	})
}

// npyHeader builds a version 1.0 .npy preamble + header dict, padded so the
// array data starts on a 64-byte boundary.
func npyHeader(descr, shape string) []byte {
	dict := fmt.Sprintf("{'descr': %q, 'fortran_order': False, 'shape': %s, }", descr, shape)
	// 10 preamble bytes + dict + padding + '\n', total a multiple of 64.
	padded := len(dict) + 1
	if rem := (10 + padded) % 64; rem != 0 {
		padded += 64 - rem
	}
	buf := make([]byte, 10+padded)
	copy(buf, "\x93NUMPY")
	buf[6], buf[7] = 1, 0
	binary.LittleEndian.PutUint16(buf[8:], uint16(padded))
	copy(buf[10:], dict)
	for i := 10 + len(dict); i < len(buf)-1; i++ {
		buf[i] = ' '
	}
	buf[len(buf)-1] = '\n'
	return buf
}
