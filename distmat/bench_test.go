// SPDX-License-Identifier: MIT

package distmat_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/katalvlaran/squat/distance"
	"github.com/katalvlaran/squat/distmat"
	"github.com/katalvlaran/squat/logging"
	"github.com/katalvlaran/squat/qts"
	"github.com/katalvlaran/squat/quaternion"
)

func BenchmarkPairwiseDTW(b *testing.B) {
	mean, _ := qts.Constant(qts.UniformGrid(0, 1, 50), quaternion.Identity())
	sample, err := qts.Random(mean, 16, 0.2, 7)
	if err != nil {
		b.Fatal(err)
	}
	for _, workers := range []int{1, 4} {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			opts := distmat.DefaultOptions()
			opts.Workers = workers
			opts.Logger = logging.Nop()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := distmat.Pairwise(context.Background(), sample, distance.DTW, opts); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
