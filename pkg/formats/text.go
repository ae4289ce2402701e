package formats

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Faultbox/lathe/pkg/math"
)

// Text format errors.
var (
	ErrMalformedLine   = errors.New("malformed point line")
	ErrMalformedHeader = errors.New("malformed curve header")
)

// formatFloat writes the shortest decimal that reads back as the same float32.
func formatFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

// writePoint writes "x y\n".
func writePoint(w *bufio.Writer, x, y float32) error {
	_, err := w.WriteString(formatFloat(x) + " " + formatFloat(y) + "\n")
	return err
}

// parsePoint splits a line on its first space and parses both halves.
// Extra spaces around either half are ignored.
func parsePoint(line string, lineNo int) (math.Vec2, error) {
	xs, ys, ok := strings.Cut(line, " ")
	if !ok {
		return math.Vec2{}, fmt.Errorf("%w %d: missing separator in %q", ErrMalformedLine, lineNo, line)
	}
	xs, ys = strings.TrimSpace(xs), strings.TrimSpace(ys)
	x, err := strconv.ParseFloat(xs, 32)
	if err != nil {
		return math.Vec2{}, fmt.Errorf("%w %d: x: %v", ErrMalformedLine, lineNo, err)
	}
	y, err := strconv.ParseFloat(ys, 32)
	if err != nil {
		return math.Vec2{}, fmt.Errorf("%w %d: y: %v", ErrMalformedLine, lineNo, err)
	}
	return math.Vec2{X: float32(x), Y: float32(y)}, nil
}

// lineScanner yields non-blank lines with their 1-based line numbers.
type lineScanner struct {
	s      *bufio.Scanner
	lineNo int
	line   string
}

func newLineScanner(r io.Reader) *lineScanner {
	return &lineScanner{s: bufio.NewScanner(r)}
}

func (ls *lineScanner) next() bool {
	for ls.s.Scan() {
		ls.lineNo++
		line := strings.TrimSpace(ls.s.Text())
		if line == "" {
			continue
		}
		ls.line = line
		return true
	}
	return false
}

func (ls *lineScanner) err() error {
	return ls.s.Err()
}

// WriteFileAtomic writes to a temporary file next to path and renames it into
// place once fn and the flush succeed. On failure the previous file, if any,
// is left untouched. The result keeps the permissions of the file it
// replaces, or gets 0644 when path is new.
func WriteFileAtomic(path string, fn func(w io.Writer) error) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	bw := bufio.NewWriter(tmp)
	if err = fn(bw); err != nil {
		return err
	}
	if err = bw.Flush(); err != nil {
		return fmt.Errorf("flushing %s: %w", path, err)
	}
	if err = tmp.Chmod(fileMode(path)); err != nil {
		return fmt.Errorf("setting mode of %s: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}

// fileMode returns the permission bits of an existing file at path, or 0644.
func fileMode(path string) os.FileMode {
	if fi, err := os.Stat(path); err == nil && fi.Mode().IsRegular() {
		return fi.Mode().Perm()
	}
	return 0644
}

// readFile opens path and hands it to fn, closing it afterwards.
func readFile(path string, fn func(r io.Reader) error) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return fn(f)
}
