package ui

import (
	"bytes"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// loadFace reads a TrueType/OpenType file and returns a face of the given
// pixel size.
func loadFace(path string, size int) (text.Face, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font %q: %w", path, err)
	}
	face, err := faceFromTTF(b, size)
	if err != nil {
		return nil, fmt.Errorf("parse font %q: %w", path, err)
	}
	return face, nil
}

func faceFromTTF(b []byte, size int) (text.Face, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	return &text.GoTextFace{Source: src, Size: float64(size)}, nil
}
