// SPDX-License-Identifier: MIT

package quaternion

import "errors"

var (
	// ErrDegenerateQuaternion is returned when a quaternion with zero (or
	// numerically zero) norm is used where a rotation is required.
	ErrDegenerateQuaternion = errors.New("quaternion: degenerate (near-zero norm) quaternion")
)
