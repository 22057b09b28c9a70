package bucket

import (
	randstruct "github.com/wippyai/randstruct"
	"github.com/wippyai/randstruct/shuffle"
)

// CacheLine is the capacity of a generic bucket, in size units.
// TODO: detect the real line size of the build target instead of assuming 64.
const CacheLine = 64

// Bucket holds fields during randomization. Two implementations exist:
// Generic groups fields up to a cache line, BitfieldRun keeps adjacent
// bit-fields together. The closed two-case interface replaces runtime type
// inspection.
type Bucket interface {
	// TryAdd admits a field if capacity allows and reports whether it was
	// admitted. width is ignored by bit-field runs.
	TryAdd(f randstruct.Field, width uint64) bool
	// Full reports whether the bucket accepts no further fields.
	Full() bool
	// Empty reports whether nothing has been admitted yet.
	Empty() bool
	// Len returns the number of admitted fields.
	Len() int
	// Finalize returns the bucket's fields in their output order.
	Finalize(src shuffle.Source) []randstruct.Field
}

// Generic is a bucket that fills up to one cache line.
type Generic struct {
	size   uint64
	fields []randstruct.Field
}

// NewGeneric returns an empty generic bucket.
func NewGeneric() *Generic {
	return &Generic{}
}

// TryAdd admits f when the bucket is empty or the accumulated size stays
// within a cache line. An empty bucket admits any width: plenty of fields
// (arrays, nested structs) are wider than a line yet still need a bucket.
func (b *Generic) TryAdd(f randstruct.Field, width uint64) bool {
	if !b.Empty() && b.size+width > CacheLine {
		return false
	}
	b.fields = append(b.fields, f)
	b.size += width
	return true
}

// Full reports whether the accumulated size reached a cache line.
func (b *Generic) Full() bool {
	return b.size >= CacheLine
}

// Empty reports whether no width has been accumulated.
func (b *Generic) Empty() bool {
	return b.size == 0
}

// Len returns the number of admitted fields.
func (b *Generic) Len() int {
	return len(b.fields)
}

// Size returns the accumulated width in size units.
func (b *Generic) Size() uint64 {
	return b.size
}

// Fields returns the admitted fields in admission order.
func (b *Generic) Fields() []randstruct.Field {
	return b.fields
}

// Finalize returns a seeded random permutation of the bucket's fields.
func (b *Generic) Finalize(src shuffle.Source) []randstruct.Field {
	src.Permute(len(b.fields), func(i, j int) {
		b.fields[i], b.fields[j] = b.fields[j], b.fields[i]
	})
	return b.fields
}

// BitfieldRun is a bucket for adjacent bit-fields. It has no capacity limit
// and never reorders its contents: bit positions within a byte are
// load-bearing.
type BitfieldRun struct {
	fields []randstruct.Field
}

// NewBitfieldRun returns an empty bit-field run.
func NewBitfieldRun() *BitfieldRun {
	return &BitfieldRun{}
}

// TryAdd admits any bit-field unconditionally and rejects everything else;
// a non-bitfield ends the run and belongs in a generic bucket.
func (r *BitfieldRun) TryAdd(f randstruct.Field, _ uint64) bool {
	if !f.IsBitfield() {
		return false
	}
	r.fields = append(r.fields, f)
	return true
}

// Full always reports false; another adjacent bit-field always fits.
func (r *BitfieldRun) Full() bool {
	return false
}

// Empty reports whether no bit-field has been admitted yet.
func (r *BitfieldRun) Empty() bool {
	return len(r.fields) == 0
}

// Len returns the number of admitted bit-fields.
func (r *BitfieldRun) Len() int {
	return len(r.fields)
}

// Fields returns the admitted bit-fields in admission order.
func (r *BitfieldRun) Fields() []randstruct.Field {
	return r.fields
}

// Finalize returns the run's fields unchanged.
func (r *BitfieldRun) Finalize(_ shuffle.Source) []randstruct.Field {
	return r.fields
}
