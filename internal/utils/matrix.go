package utils

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Matrix wraps a gonum Dense with a mutating-chain method set
// (Copy-before-mutate, Apply, Apply2, ElMul, Scale, Row, Col, ...).
// Every phase-space buffer in internal/kinetic (g, b, gbarp, bbarp,
// and their per-axis slope and face siblings) is one of these, shaped
// (Ns, Nv).
type Matrix struct {
	M *mat.Dense
}

func NewMatrix(nr, nc int, dataO ...[]float64) (R Matrix) {
	var data []float64
	if len(dataO) > 0 {
		data = dataO[0]
		if len(data) != nr*nc {
			panic(fmt.Sprintf("NewMatrix: data length %d does not match %d x %d", len(data), nr, nc))
		}
	} else {
		data = make([]float64, nr*nc)
	}
	return Matrix{M: mat.NewDense(nr, nc, data)}
}

func (m Matrix) Dims() (r, c int)    { return m.M.Dims() }
func (m Matrix) At(i, j int) float64 { return m.M.At(i, j) }

func (m Matrix) Set(i, j int, val float64) Matrix {
	m.M.Set(i, j, val)
	return m
}

func (m Matrix) RawData() []float64 {
	return m.M.RawMatrix().Data
}

func (m Matrix) Copy() (R Matrix) {
	nr, nc := m.Dims()
	R = NewMatrix(nr, nc)
	R.M.Copy(m.M)
	return
}

func (m Matrix) Row(i int) Vector {
	nr, nc := m.Dims()
	_ = nr
	return NewVector(nc, append([]float64(nil), mat.Row(nil, i, m.M)...))
}

func (m Matrix) Col(j int) Vector {
	nr, _ := m.Dims()
	return NewVector(nr, append([]float64(nil), mat.Col(nil, j, m.M)...))
}

func (m Matrix) SetCol(j int, v Vector) Matrix {
	m.M.SetCol(j, v.Data())
	return m
}

func (m Matrix) SetRow(i int, v Vector) Matrix {
	m.M.SetRow(i, v.Data())
	return m
}

// Apply mutates the receiver in place (a Copy() call upstream is the
// caller's responsibility when the original must be preserved).
func (m Matrix) Apply(f func(float64) float64) Matrix {
	d := m.RawData()
	for i, x := range d {
		d[i] = f(x)
	}
	return m
}

func (m Matrix) Apply2(A Matrix, f func(a, b float64) float64) Matrix {
	d, a := m.RawData(), A.RawData()
	for i := range d {
		d[i] = f(d[i], a[i])
	}
	return m
}

func (m Matrix) Apply3(A, B Matrix, f func(a, b, c float64) float64) Matrix {
	d, a, b := m.RawData(), A.RawData(), B.RawData()
	for i := range d {
		d[i] = f(d[i], a[i], b[i])
	}
	return m
}

func (m Matrix) Scale(a float64) Matrix {
	return m.Apply(func(x float64) float64 { return x * a })
}

func (m Matrix) AddScalar(a float64) Matrix {
	return m.Apply(func(x float64) float64 { return x + a })
}

func (m Matrix) Add(A Matrix) Matrix {
	return m.Apply2(A, func(a, b float64) float64 { return a + b })
}

func (m Matrix) Subtract(A Matrix) Matrix {
	return m.Apply2(A, func(a, b float64) float64 { return a - b })
}

func (m Matrix) ElMul(A Matrix) Matrix {
	return m.Apply2(A, func(a, b float64) float64 { return a * b })
}

func (m Matrix) ElDiv(A Matrix) Matrix {
	return m.Apply2(A, func(a, b float64) float64 { return a / b })
}

func (m Matrix) Min() float64 {
	d := m.RawData()
	min := d[0]
	for _, x := range d[1:] {
		if x < min {
			min = x
		}
	}
	return min
}

func (m Matrix) Max() float64 {
	d := m.RawData()
	max := d[0]
	for _, x := range d[1:] {
		if x > max {
			max = x
		}
	}
	return max
}

func (m Matrix) MaxAbs() float64 {
	d := m.RawData()
	var max float64
	for _, x := range d {
		a := x
		if a < 0 {
			a = -a
		}
		if a > max {
			max = a
		}
	}
	return max
}
