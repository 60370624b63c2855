package tiletree

import (
	"math"

	"github.com/etca-codec/etca/pixel"
)

// Variance computes the normalized color spread of buf: the mean of the
// per-channel standard deviation, each divided by 255 so the result falls
// in [0,1]. An empty buffer has zero variance.
//
// This plays the same role as a min/max spread heuristic over a block,
// but uses the stricter population-standard-deviation definition rather
// than a cheap min/max spread.
func Variance(buf *pixel.Buffer) float64 {
	n := len(buf.Pix)
	if n == 0 {
		return 0
	}

	var sumR, sumG, sumB float64
	for _, p := range buf.Pix {
		sumR += float64(p.R)
		sumG += float64(p.G)
		sumB += float64(p.B)
	}
	fn := float64(n)
	muR, muG, muB := sumR/fn, sumG/fn, sumB/fn

	var sumSqR, sumSqG, sumSqB float64
	for _, p := range buf.Pix {
		dr := float64(p.R) - muR
		dg := float64(p.G) - muG
		db := float64(p.B) - muB
		sumSqR += dr * dr
		sumSqG += dg * dg
		sumSqB += db * db
	}

	sigmaR := math.Sqrt(sumSqR/fn) / 255
	sigmaG := math.Sqrt(sumSqG/fn) / 255
	sigmaB := math.Sqrt(sumSqB/fn) / 255

	return (sigmaR + sigmaG + sigmaB) / 3
}

// ShouldSubdivide reports whether buf's variance strictly exceeds
// threshold. A buffer sitting exactly at the threshold stops recursing.
func ShouldSubdivide(buf *pixel.Buffer, threshold float64) bool {
	return Variance(buf) > threshold
}
