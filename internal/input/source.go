// Package input provides the line sources the solver reads grids from.
package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// LineSource yields an ordered sequence of raw text lines.
type LineSource interface {
	Lines() ([]string, error)
}

// ReaderSource reads newline-separated lines from R. Line terminators,
// including a trailing carriage return, are stripped.
type ReaderSource struct {
	R io.Reader
}

// Lines reads R to the end.
func (s ReaderSource) Lines() ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(s.R)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read lines: %w", err)
	}
	return lines, nil
}

// FileSource reads lines from the file at Path.
type FileSource struct {
	Path string
}

// Lines opens and reads the whole file.
func (s FileSource) Lines() ([]string, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()
	return ReaderSource{R: f}.Lines()
}

// StaticSource serves a fixed set of lines.
type StaticSource []string

// Lines returns a copy of the stored lines.
func (s StaticSource) Lines() ([]string, error) {
	return append([]string(nil), s...), nil
}

// Open returns a FileSource for path, or a ReaderSource over stdin when path
// is empty or "-".
func Open(path string, stdin io.Reader) LineSource {
	if path == "" || path == "-" {
		return ReaderSource{R: stdin}
	}
	return FileSource{Path: path}
}
