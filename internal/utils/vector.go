// Package utils provides the gonum-backed Matrix/Vector wrappers used
// throughout this repo's numerics, in a mutating-chain style.
package utils

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Vector wraps a gonum VecDense with the mutating-chain method set used
// across this repo's cell-centered scalar fields (rho, rhoE, quadrature
// nodes and weights).
type Vector struct {
	V *mat.VecDense
}

func NewVector(n int, dataO ...[]float64) Vector {
	var data []float64
	if len(dataO) > 0 {
		data = dataO[0]
	} else {
		data = make([]float64, n)
	}
	return Vector{V: mat.NewVecDense(n, data)}
}

func NewVectorConstant(n int, val float64) Vector {
	v := NewVector(n)
	for i := 0; i < n; i++ {
		v.V.SetVec(i, val)
	}
	return v
}

func (v Vector) Len() int         { return v.V.Len() }
func (v Vector) At(i int) float64 { return v.V.AtVec(i) }
func (v Vector) Data() []float64  { return v.V.RawVector().Data }
func (v Vector) Set(i int, x float64) Vector {
	v.V.SetVec(i, x)
	return v
}

func (v Vector) Copy() (r Vector) {
	r = NewVector(v.Len())
	r.V.CopyVec(v.V)
	return
}

// Apply mutates the receiver in place.
func (v Vector) Apply(f func(float64) float64) Vector {
	d := v.Data()
	for i, x := range d {
		d[i] = f(x)
	}
	return v
}

func (v Vector) Apply2(A Vector, f func(a, b float64) float64) Vector {
	d, a := v.Data(), A.Data()
	for i := range d {
		d[i] = f(d[i], a[i])
	}
	return v
}

func (v Vector) Scale(a float64) Vector {
	floats.Scale(a, v.Data())
	return v
}

func (v Vector) AddScalar(a float64) Vector {
	return v.Apply(func(x float64) float64 { return x + a })
}

func (v Vector) Add(A Vector) Vector {
	floats.Add(v.Data(), A.Data())
	return v
}

func (v Vector) Subtract(A Vector) Vector {
	floats.Sub(v.Data(), A.Data())
	return v
}

func (v Vector) ElMul(A Vector) Vector {
	floats.Mul(v.Data(), A.Data())
	return v
}

func (v Vector) ElDiv(A Vector) Vector {
	floats.Div(v.Data(), A.Data())
	return v
}

func (v Vector) Dot(A Vector) float64 {
	return floats.Dot(v.Data(), A.Data())
}

func (v Vector) Sum() float64 {
	return floats.Sum(v.Data())
}

func (v Vector) Min() float64 {
	return floats.Min(v.Data())
}

func (v Vector) Max() float64 {
	return floats.Max(v.Data())
}

func (v Vector) Norm() float64 {
	return mat.Norm(v.V, 2)
}
