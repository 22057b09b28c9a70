// Package bucket provides the grouping primitive used during layout
// randomization.
//
// Fields are collected into buckets before shuffling so that randomization
// roughly preserves cache locality instead of scattering every field
// independently. Two bucket kinds exist:
//
//	Generic      fills to one cache line (64 size units); contents may be
//	             shuffled when finalized
//	BitfieldRun  collects consecutive bit-fields with no capacity limit;
//	             contents are returned exactly as admitted
//
// A generic bucket admits a field when it is empty or when the field's
// width still fits in the line. An oversized field therefore always lands
// alone in a fresh bucket rather than being unplaceable.
package bucket
