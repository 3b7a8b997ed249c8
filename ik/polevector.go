// Package ik provides inverse kinematics helpers for three joint chains.
package ik

import (
	"errors"
	"math"

	"github.com/seqsense/pcgol/mat"
)

var (
	ErrZeroLengthAxis      = errors.New("root and end joints coincide")
	ErrMidOnAxis           = errors.New("mid joint lies on the root-end axis")
	ErrNonFiniteMultiplier = errors.New("multiplier must be finite")
)

// PoleVector returns the pole vector position of a joint chain given the
// world positions of its root, mid and end joints. The result is offset
// from the mid joint away from the root-end axis by the chain length
// (root to mid plus mid to end) scaled by multiplier. A negative
// multiplier flips the offset direction.
func PoleVector(root, mid, end mat.Vec3, multiplier float32) (mat.Vec3, error) {
	if isNonFinite(multiplier) {
		return mat.Vec3{}, ErrNonFiniteMultiplier
	}

	line := end.Sub(root)
	lineNormSq := line.NormSq()
	if lineNormSq == 0 {
		return mat.Vec3{}, ErrZeroLengthAxis
	}

	source := mid.Sub(root)
	closest := root.Add(line.Mul(line.Dot(source) / lineNormSq))

	offset := mid.Sub(closest)
	if offset.NormSq() == 0 {
		return mat.Vec3{}, ErrMidOnAxis
	}

	total := (source.Norm() + end.Sub(mid).Norm()) * multiplier
	return mid.Add(offset.Normalized().Mul(total)), nil
}

func isNonFinite(f float32) bool {
	f64 := float64(f)
	return math.IsNaN(f64) || math.IsInf(f64, 0)
}
