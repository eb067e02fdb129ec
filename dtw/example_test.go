// SPDX-License-Identifier: MIT

package dtw_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/squat/dtw"
	"github.com/katalvlaran/squat/matrix"
	"github.com/katalvlaran/squat/quaternion"
)

// ExampleAlign aligns a sequence of rotations about z against a copy with
// a repeated sample.
//
// Scenario:
//
//	a = [1, 2, 3] rad
//	b = [1, 2, 2, 3] rad
//
// The repeated rotation is absorbed by one horizontal move at zero cost.
func ExampleAlign() {
	z := quaternion.Vec3{Z: 1}
	a := []float64{1, 2, 3}
	b := []float64{1, 2, 2, 3}
	cost, err := matrix.NewDenseFunc(len(a), len(b), func(i, j int) float64 {
		return quaternion.GeodesicDistance(quaternion.FromAxisAngle(z, a[i]), quaternion.FromAxisAngle(z, b[j]))
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	opts := dtw.DefaultOptions()
	opts.ReturnPath = true

	res, err := dtw.Align(cost, &opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("distance=%.4f\npath=%v\n", res.Distance, res.Path)
	// Output:
	// distance=0.0000
	// path=[{0 0} {1 1} {1 2} {2 3}]
}

// ExampleAlign_normalized shows the Symmetric2 distance divided by N+M.
//
//	cost = [[0, 1, 1],
//	        [0, 1, 1],
//	        [1, 0, 0]]
//
// The path (0,0) (1,0) (2,1) (2,2) accumulates 0 + 0 + 2·0 + 0.
func ExampleAlign_normalized() {
	cost, _ := matrix.FromRows([][]float64{{0, 1, 1}, {0, 1, 1}, {1, 0, 0}})
	opts := dtw.DefaultOptions()
	opts.Pattern = dtw.Symmetric2
	opts.Normalize = true

	res, _ := dtw.Align(cost, &opts)
	fmt.Printf("normalized=%.4f\n", res.NormalizedDistance)
	// Output:
	// normalized=0.0000
}

// ExampleAlign_window shows a Sakoe–Chiba band too narrow to reach the end
// cell, which yields an infinite distance.
func ExampleAlign_window() {
	cost, _ := matrix.NewDenseFunc(3, 5, func(i, j int) float64 { return math.Abs(float64(i - j)) })
	opts := dtw.DefaultOptions()
	opts.Window = 1

	res, _ := dtw.Align(cost, &opts)
	if math.IsInf(res.Distance, 1) {
		fmt.Println("distance=+Inf")
	}
	// Output:
	// distance=+Inf
}
