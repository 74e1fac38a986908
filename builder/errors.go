// SPDX-License-Identifier: MIT
// Package builder: sentinel error set. All public operations return these
// sentinels (wrapped with context); tests match them via errors.Is.

package builder

import "errors"

var (
	// ErrNilOperation indicates a nil operation record in the input sequence.
	ErrNilOperation = errors.New("builder: nil operation in sequence")

	// ErrInvalidSequence indicates an operation referencing a resource
	// outside the builder's configured universe (WithUniverse).
	ErrInvalidSequence = errors.New("builder: operation outside resource universe")
)
