// SPDX-License-Identifier: MIT

package distmat

import "errors"

// ErrCorruptDistance indicates serialized data that cannot be decoded into
// a Distance.
var ErrCorruptDistance = errors.New("distmat: corrupt distance data")
