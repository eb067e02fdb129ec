// SPDX-License-Identifier: MIT

package frechet

import "errors"

// ErrNotConverged is reported by Result.Err when the iteration cap was hit
// before the step norm fell below the tolerance. The accompanying rotation
// is the last iterate and is still usable.
var ErrNotConverged = errors.New("frechet: iteration did not converge")
