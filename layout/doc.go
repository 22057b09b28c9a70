// Package layout is the entry point for field layout randomization.
//
// Rearrange runs the full pipeline for one aggregate: partition the declared
// members into buckets, shuffle the bucket order and the contents of each
// generic bucket from the configured seed, then flatten back into a single
// member order for the caller's layout engine. Offsets, alignment and
// padding remain the layout engine's responsibility.
//
//	order, err := layout.Rearrange(fields, widths, randstruct.Config{Seed: seed})
//
// ShouldRandomize carries the opt-in decision: records that explicitly
// requested randomization always get it, and Config.AutoSelect extends it to
// the rest.
package layout
