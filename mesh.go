package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// ErrMissingToken is returned when a line has fewer than three values
// after its leading token.
var ErrMissingToken = errors.New("missing token")

// Mesh holds GPU-ready geometry: vertex positions as x,y,z triples and
// triangle indices as zero-based triples.
type Mesh struct {
	Vertices []float32
	Indices  []int32
}

// VertexCount returns the number of vertex positions.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / 3
}

// ParseError reports the source line a mesh failed to parse on.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// LoadMesh reads a mesh file from disk.
func LoadMesh(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open mesh: %w", err)
	}
	defer f.Close()

	m, err := ParseMesh(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return m, nil
}

// ParseMesh reads the line-oriented mesh format. Lines starting with "f"
// carry three one-based vertex indices; every other line is a vertex whose
// first three values after the leading token are its position. Indices are
// not checked against the vertex count.
func ParseMesh(r io.Reader) (*Mesh, error) {
	m := &Mesh{}
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) < 4 {
			return nil, &ParseError{Line: line, Err: fmt.Errorf("%w: want 3 values, got %d", ErrMissingToken, max(len(fields)-1, 0))}
		}

		if fields[0] == "f" {
			for _, tok := range fields[1:4] {
				idx, err := strconv.ParseInt(tok, 10, 32)
				if err != nil {
					return nil, &ParseError{Line: line, Err: err}
				}
				idx--
				if idx < math.MinInt32 {
					return nil, &ParseError{Line: line, Err: fmt.Errorf("index %s: %w", tok, strconv.ErrRange)}
				}
				m.Indices = append(m.Indices, int32(idx))
			}
			continue
		}

		for _, tok := range fields[1:4] {
			v, err := strconv.ParseFloat(tok, 32)
			if err != nil {
				return nil, &ParseError{Line: line, Err: err}
			}
			m.Vertices = append(m.Vertices, float32(v))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return m, nil
}
