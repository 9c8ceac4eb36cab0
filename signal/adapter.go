// SPDX-License-Identifier: MIT
package signal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cosamp/matrix"
)

// ErrShapeMismatch indicates a matrix whose shape does not fit the adapter.
var ErrShapeMismatch = errors.New("signal: adapter shape mismatch")

// Adapter converts domain data to the matrix form consumed by reconstruction
// and back.
type Adapter interface {
	// AsMatrix returns the data as a fresh N×C matrix.
	AsMatrix() (*matrix.Dense, error)
	// FromMatrix replaces the data with the contents of m.
	FromMatrix(m matrix.Matrix) error
}

// FromAdapter builds a Signal from an adapter, inferring sparsity from nonzeros.
func FromAdapter(a Adapter) (*Signal, error) {
	m, err := a.AsMatrix()
	if err != nil {
		return nil, fmt.Errorf("signal: FromAdapter: %w", err)
	}

	return FromMatrix(m)
}

// Image is a grayscale height×width raster; each pixel column is one signal column.
type Image struct {
	height, width int
	pixels        []float64 // row-major
}

// NewImage copies a row-major pixel buffer of height·width values.
func NewImage(height, width int, pixels []float64) (*Image, error) {
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("signal: NewImage: %dx%d: %w", height, width, ErrEmptySignal)
	}
	if len(pixels) != height*width {
		return nil, fmt.Errorf("signal: NewImage: %d pixels for %dx%d: %w",
			len(pixels), height, width, ErrShapeMismatch)
	}

	return &Image{height: height, width: width, pixels: append([]float64(nil), pixels...)}, nil
}

// Bounds returns the image height and width.
func (im *Image) Bounds() (height, width int) { return im.height, im.width }

// Pixel returns the value at (row, col); the caller keeps indices in bounds.
func (im *Image) Pixel(row, col int) float64 { return im.pixels[row*im.width+col] }

// AsMatrix implements Adapter.
func (im *Image) AsMatrix() (*matrix.Dense, error) {
	return matrix.NewFromData(im.height, im.width, im.pixels)
}

// FromMatrix implements Adapter. m must be height×width.
// On error the image keeps its previous pixels.
func (im *Image) FromMatrix(m matrix.Matrix) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return fmt.Errorf("signal: Image.FromMatrix: %w", err)
	}
	if m.Rows() != im.height || m.Cols() != im.width {
		return fmt.Errorf("signal: Image.FromMatrix: %dx%d into %dx%d: %w",
			m.Rows(), m.Cols(), im.height, im.width, ErrShapeMismatch)
	}
	pixels := make([]float64, len(im.pixels))
	var err error
	for i := 0; i < im.height; i++ {
		for j := 0; j < im.width; j++ {
			if pixels[i*im.width+j], err = m.At(i, j); err != nil {
				return fmt.Errorf("signal: Image.FromMatrix: %w", err)
			}
		}
	}
	im.pixels = pixels

	return nil
}

// Light is a one-dimensional intensity series, reconstructed as a single column.
type Light struct {
	samples []float64
}

// NewLight copies the intensity samples.
func NewLight(samples []float64) *Light {
	return &Light{samples: append([]float64(nil), samples...)}
}

// Samples returns a copy of the intensity series.
func (l *Light) Samples() []float64 { return append([]float64(nil), l.samples...) }

// AsMatrix implements Adapter.
func (l *Light) AsMatrix() (*matrix.Dense, error) {
	if len(l.samples) == 0 {
		return nil, fmt.Errorf("signal: Light.AsMatrix: %w", ErrEmptySignal)
	}

	return matrix.NewVector(l.samples), nil
}

// FromMatrix implements Adapter. m must be a column vector.
func (l *Light) FromMatrix(m matrix.Matrix) error {
	if err := matrix.ValidateColumnVector(m); err != nil {
		return fmt.Errorf("signal: Light.FromMatrix: %w", err)
	}
	vals, err := matrix.Values(m)
	if err != nil {
		return fmt.Errorf("signal: Light.FromMatrix: %w", err)
	}
	l.samples = vals

	return nil
}
