// Package formats reads and writes the plain-text files exchanged between the
// curve editor and the mesh builder: control point files and the curve
// handoff file.
//
// Both formats are one "x y" pair per line, space separated. The handoff file
// adds a "<mode> <controlPointCount>" header. Writes are atomic: a failed
// write leaves the previous file in place.
package formats
