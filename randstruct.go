package randstruct

// Field is one direct member of an aggregate type. The descriptor is owned
// by the caller's declaration system; the library only reorders references
// and never copies or inspects member identity.
type Field interface {
	// IsBitfield reports whether the member is a bit-field.
	IsBitfield() bool
}

// WidthResolver reports the storage width of a non-bitfield field in bits.
// The resolver is consulted on demand during partitioning; it is never
// called for bit-field members.
type WidthResolver interface {
	WidthInBits(f Field) (uint64, error)
}

// Config carries the randomization settings for one Rearrange call.
//
// Seed drives the deterministic permutation: the same seed and the same
// input always produce the same layout, which keeps builds reproducible.
// An empty seed is still deterministic but is weak entropy; callers that
// care about the security properties should supply a real seed.
//
// AutoSelect extends randomization to records that did not explicitly opt
// in. The decision of which records are eligible stays with the caller; see
// layout.ShouldRandomize.
type Config struct {
	Seed       string
	AutoSelect bool
}
