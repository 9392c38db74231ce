// SPDX-License-Identifier: MIT

// Package histogram: functional configuration for New.
//
//   - Option / options (functional options with internal state),
//   - WithX constructors that panic on nonsensical values (programmer error),
//   - gatherOptions helper that applies options over the defaults.

package histogram

import "github.com/katalvlaran/ndhist/ndindex"

// Option mutates internal options. Safe to apply repeatedly; the last one wins.
type Option[T ndindex.Real] func(*options[T])

// options stores the effective configuration after applying Option setters.
type options[T ndindex.Real] struct {
	volume Volumer[T] // unitVolume unless WithVolume is given
}

// defaultOptions returns the zero-configuration: unit bin volumes.
func defaultOptions[T ndindex.Real]() options[T] {
	return options[T]{volume: unitVolume[T]{}}
}

// WithVolume installs the bin-volume strategy used by Normalize.
//
// Panics if v is nil (including a nil VolumeFunc).
//
// Example:
//
//	h, err := histogram.New(nBins, 3, limits,
//		histogram.WithVolume[float64](geometry.NewCylindrical[float64]()))
func WithVolume[T ndindex.Real](v Volumer[T]) Option[T] {
	if v == nil {
		panic(panicNilVolume)
	}
	if f, ok := v.(VolumeFunc[T]); ok && f == nil {
		panic(panicNilVolume)
	}

	return func(o *options[T]) { o.volume = v }
}

// gatherOptions applies opts over the defaults; nil options are skipped.
func gatherOptions[T ndindex.Real](opts ...Option[T]) options[T] {
	o := defaultOptions[T]()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
