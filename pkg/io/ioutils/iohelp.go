// Package ioutils holds the file plumbing shared by the format readers and
// writers.
package ioutils

import (
	"bufio"
	"compress/gzip"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Stdio is the path that selects stdin or stdout.
const Stdio = "-"

// OpenMaybeCompressed opens a file path or stdin ("-") for reading. Gzip
// content is detected by its magic bytes, whatever the file name, and
// decompressed transparently.
func OpenMaybeCompressed(path string) (io.ReadCloser, error) {
	if path == Stdio {
		return sniffGzip(bufio.NewReader(os.Stdin), func() error { return nil })
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	rc, err := sniffGzip(bufio.NewReader(f), f.Close)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return rc, nil
}

func sniffGzip(br *bufio.Reader, closeFn func() error) (io.ReadCloser, error) {
	b, err := br.Peek(2)
	if err != nil || b[0] != 0x1f || b[1] != 0x8b {
		return readCloser{Reader: br, closeFn: closeFn}, nil
	}
	zr, err := gzip.NewReader(br)
	if err != nil {
		return nil, err
	}
	return readCloser{Reader: zr, closeFn: func() error { _ = zr.Close(); return closeFn() }}, nil
}

// CreateMaybeCompressed creates a file (or stdout if path is "-") and returns
// a buffered writer. Missing parent directories are created. If the path ends
// in .gz the output is gzip compressed.
func CreateMaybeCompressed(path string) (io.WriteCloser, error) {
	if path == Stdio {
		return writeCloser{w: bufio.NewWriter(os.Stdout)}, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(filepath.Ext(path), ".gz") {
		zw := gzip.NewWriter(f)
		bw := bufio.NewWriter(zw)
		return writeCloser{w: bw, closeFn: func() error {
			if err := zw.Close(); err != nil {
				_ = f.Close()
				return err
			}
			return f.Close()
		}}, nil
	}
	return writeCloser{w: bufio.NewWriter(f), closeFn: f.Close}, nil
}

type readCloser struct {
	io.Reader
	closeFn func() error
}

func (r readCloser) Close() error { return r.closeFn() }

type writeCloser struct {
	w       *bufio.Writer
	closeFn func() error
}

func (w writeCloser) Write(p []byte) (int, error) { return w.w.Write(p) }

func (w writeCloser) Close() error {
	err := w.w.Flush()
	if w.closeFn != nil {
		if cerr := w.closeFn(); err == nil {
			err = cerr
		}
	}
	return err
}

// FormatFloat renders v in its shortest form. Integral values keep a trailing
// ".0" so they read back as floats.
func FormatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	abs := math.Abs(v)
	if abs != 0 && (abs >= 1e16 || abs < 1e-4) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// FormatTime renders timestamps as RFC3339 keeping any fractional seconds.
func FormatTime(t time.Time) string { return t.Format(time.RFC3339Nano) }
