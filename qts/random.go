// SPDX-License-Identifier: MIT

package qts

import (
	"fmt"
	"math/rand/v2"

	"github.com/katalvlaran/squat/quaternion"
)

// Random draws n series around mean: each point is mean.Rot[i]·Exp(ε) with
// ε ~ N(0, sigma²·I₃) drawn independently per point and per member.
// The same seed always produces the same sample.
func Random(mean QTS, n int, sigma float64, seed uint64) (Sample, error) {
	if n < 1 || sigma < 0 {
		return nil, fmt.Errorf("qts: random sample n=%d sigma=%g: %w", n, sigma, ErrInvalidConfiguration)
	}
	if err := mean.Validate(); err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	out := make(Sample, n)
	for k := range out {
		rot := make([]quaternion.Quaternion, mean.Len())
		for i, m := range mean.Rot {
			eps := quaternion.Vec3{
				X: sigma * rng.NormFloat64(),
				Y: sigma * rng.NormFloat64(),
				Z: sigma * rng.NormFloat64(),
			}
			rot[i] = quaternion.ExpAt(m, eps)
		}
		q, err := New(mean.Time, rot)
		if err != nil {
			return nil, fmt.Errorf("qts: random member %d: %w", k, err)
		}
		out[k] = q
	}

	return out, nil
}
