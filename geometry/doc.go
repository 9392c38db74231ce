// Package geometry provides bin-volume strategies for histogram.Normalize.
//
//	Unit         — every bin has volume 1 (the histogram default, spelled out)
//	Box          — Cartesian volume Π Δ_d, turning counts into a density
//	Cylindrical  — annular-sector volume for (r, φ, z) grids
//
// Each strategy implements histogram.Volumer; strategies that constrain the
// grid also implement histogram.GridValidator so an unsuitable grid is
// rejected by histogram.New rather than at Normalize time.
package geometry
