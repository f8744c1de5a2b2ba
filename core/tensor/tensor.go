package tensor

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Tensor is a dense n-dimensional value stored row-major.
type Tensor struct {
	shape []int
	data  []float64
}

// New creates a Tensor from shape and row-major data.
func New(shape []int, data []float64) (*Tensor, error) {
	n := 1
	for _, d := range shape {
		if d <= 0 {
			return nil, fmt.Errorf("invalid dimension %d", d)
		}
		n *= d
	}
	if n != len(data) {
		return nil, fmt.Errorf("shape %v needs %d values, got %d", shape, n, len(data))
	}
	s := make([]int, len(shape))
	copy(s, shape)
	return &Tensor{shape: s, data: data}, nil
}

// Zeros creates a zero-filled Tensor with the given shape.
func Zeros(shape ...int) *Tensor {
	n := 1
	for _, d := range shape {
		n *= d
	}
	t, _ := New(shape, make([]float64, n))
	return t
}

// FromMatrix copies a gonum matrix into a rank-2 Tensor.
func FromMatrix(m mat.Matrix) *Tensor {
	r, c := m.Dims()
	data := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			data = append(data, m.At(i, j))
		}
	}
	t, _ := New([]int{r, c}, data)
	return t
}

// Shape returns the tensor dimensions.
func (t *Tensor) Shape() []int {
	s := make([]int, len(t.shape))
	copy(s, t.shape)
	return s
}

// Len returns the number of elements.
func (t *Tensor) Len() int { return len(t.data) }

// Values returns a copy of the flattened elements.
func (t *Tensor) Values() []float64 {
	out := make([]float64, len(t.data))
	copy(out, t.data)
	return out
}

// Set writes the element at the flat index.
func (t *Tensor) Set(i int, v float64) { t.data[i] = v }

// At reads the element at the flat index.
func (t *Tensor) At(i int) float64 { return t.data[i] }

// Norm returns the L2 norm of the elements.
func (t *Tensor) Norm() float64 { return floats.Norm(t.data, 2) }

// Matrix returns a rank-2 tensor as a gonum matrix.
func (t *Tensor) Matrix() (*mat.Dense, error) {
	if len(t.shape) != 2 {
		return nil, fmt.Errorf("rank %d tensor is not a matrix", len(t.shape))
	}
	return mat.NewDense(t.shape[0], t.shape[1], t.Values()), nil
}

// Parameter is a learnable tensor tracked inside a Module.
type Parameter struct {
	*Tensor
}

// NewParameter wraps a tensor as a learnable parameter.
func NewParameter(t *Tensor) *Parameter { return &Parameter{Tensor: t} }
