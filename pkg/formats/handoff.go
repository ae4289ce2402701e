package formats

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Faultbox/lathe/pkg/curve"
	"github.com/Faultbox/lathe/pkg/math"
)

// DefaultHandoffFile is the working-directory relative file the editor
// writes and the mesh builder reads.
const DefaultHandoffFile = "curvePoints.txt"

// Handoff is the content of a curve handoff file.
type Handoff struct {
	Mode          curve.Mode
	ControlPoints int // control point count, informational only
	Profile       []math.Vec2
}

// Revolvable reports whether the recorded curve had enough control points
// for its mode and produced at least one profile segment.
func (h *Handoff) Revolvable() bool {
	return curve.CanEvaluate(h.Mode, h.ControlPoints) && len(h.Profile) >= 2
}

// WriteCurveHandoff writes the header "<mode> <controlPointCount>" followed
// by one "<x+offsetX> <y>" line per sampled point.
//
// The body is skipped when controlPointCount is too small for the mode: such
// a curve cannot be revolved and the reader sees an empty profile.
func WriteCurveHandoff(w io.Writer, mode curve.Mode, controlPointCount int, sampled curve.Sampled, offsetX float32) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d %d\n", int(mode), controlPointCount); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	if curve.CanEvaluate(mode, controlPointCount) {
		for i, p := range sampled {
			if err := writePoint(bw, p.X+offsetX, p.Y); err != nil {
				return fmt.Errorf("writing curve point %d: %w", i, err)
			}
		}
	}
	return bw.Flush()
}

// ReadCurveHandoff parses a handoff file. The first non-blank line must hold
// two integers; every following line is a profile point.
func ReadCurveHandoff(r io.Reader) (*Handoff, error) {
	ls := newLineScanner(r)
	if !ls.next() {
		if err := ls.err(); err != nil {
			return nil, fmt.Errorf("reading handoff: %w", err)
		}
		return nil, fmt.Errorf("%w: empty file", ErrMalformedHeader)
	}

	h, err := parseHeader(ls.line)
	if err != nil {
		return nil, err
	}

	for ls.next() {
		p, err := parsePoint(ls.line, ls.lineNo)
		if err != nil {
			return nil, err
		}
		h.Profile = append(h.Profile, p)
	}
	if err := ls.err(); err != nil {
		return nil, fmt.Errorf("reading handoff: %w", err)
	}
	return h, nil
}

func parseHeader(line string) (*Handoff, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return nil, fmt.Errorf("%w: expected \"<mode> <count>\", got %q", ErrMalformedHeader, line)
	}
	mode, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, fmt.Errorf("%w: mode: %v", ErrMalformedHeader, err)
	}
	if !curve.Mode(mode).Valid() {
		return nil, fmt.Errorf("%w: unknown mode %d", ErrMalformedHeader, mode)
	}
	count, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil, fmt.Errorf("%w: control point count: %v", ErrMalformedHeader, err)
	}
	if count < 0 {
		return nil, fmt.Errorf("%w: negative control point count %d", ErrMalformedHeader, count)
	}
	return &Handoff{Mode: curve.Mode(mode), ControlPoints: count}, nil
}

// WriteCurveHandoffFile writes a handoff file atomically.
func WriteCurveHandoffFile(path string, mode curve.Mode, controlPointCount int, sampled curve.Sampled, offsetX float32) error {
	return WriteFileAtomic(path, func(w io.Writer) error {
		return WriteCurveHandoff(w, mode, controlPointCount, sampled, offsetX)
	})
}

// ReadCurveHandoffFile reads a handoff file from disk.
func ReadCurveHandoffFile(path string) (*Handoff, error) {
	var h *Handoff
	err := readFile(path, func(r io.Reader) error {
		var err error
		h, err = ReadCurveHandoff(r)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("reading curve handoff %s: %w", path, err)
	}
	return h, nil
}
