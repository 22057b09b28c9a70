package layout

import (
	"go.uber.org/zap"

	randstruct "github.com/wippyai/randstruct"
	"github.com/wippyai/randstruct/bucket"
	"github.com/wippyai/randstruct/partition"
	"github.com/wippyai/randstruct/shuffle"
)

// Rearrange produces a randomized member order for one aggregate.
//
// The fields are partitioned into cache-line buckets and bit-field runs,
// the bucket sequence is shuffled, and each generic bucket's contents are
// shuffled, all from the seed in cfg. The flattened result is returned.
//
// The output is a permutation of the input: same references, no duplication
// or loss. Maximal runs of adjacent bit-fields stay contiguous and keep
// their internal order. The same seed and the same input always produce the
// same output.
//
// Every element of fields must be a genuine field member supplied by the
// caller's declaration system; a nil element is a precondition violation and
// fails with a structured error. The call holds no shared state, so
// concurrent calls for different aggregates are safe.
func Rearrange(fields []randstruct.Field, res randstruct.WidthResolver, cfg randstruct.Config) ([]randstruct.Field, error) {
	if len(fields) == 0 {
		return nil, nil
	}

	buckets, err := partition.Partition(fields, res)
	if err != nil {
		return nil, err
	}

	src := shuffle.New(cfg.Seed)
	src.Permute(len(buckets), func(i, j int) {
		buckets[i], buckets[j] = buckets[j], buckets[i]
	})

	out := make([]randstruct.Field, 0, len(fields))
	for _, b := range buckets {
		out = append(out, b.Finalize(src)...)
	}

	Logger().Debug("rearranged fields",
		zap.Int("fields", len(out)),
		zap.Int("buckets", len(buckets)))

	return out, nil
}

// ShouldRandomize reports whether a record's layout should be randomized.
// explicit is true when the record opted in (e.g. carries an attribute);
// AutoSelect extends randomization to records that did not.
func ShouldRandomize(cfg randstruct.Config, explicit bool) bool {
	return explicit || cfg.AutoSelect
}

// Buckets exposes the partitioning step without shuffling. Useful for
// callers that want to inspect the grouping a seed will operate on.
func Buckets(fields []randstruct.Field, res randstruct.WidthResolver) ([]bucket.Bucket, error) {
	return partition.Partition(fields, res)
}
