package partition

import (
	"go.uber.org/zap"

	randstruct "github.com/wippyai/randstruct"
	"github.com/wippyai/randstruct/bucket"
	"github.com/wippyai/randstruct/errors"
)

// Partition groups fields into sealed buckets using greedy first-fit.
//
// Fields are processed from a work queue seeded with the input order. Runs
// of adjacent bit-fields become BitfieldRun buckets; everything else fills
// Generic buckets toward one cache line. A field that does not fit the open
// bucket is re-queued at the back; once a full pass places nothing, the open
// bucket is sealed as-is so the next field starts fresh. That skip counter
// bounds the loop (worst case quadratic) for adversarial width sequences.
//
// The returned buckets appear in the order they were sealed. Width
// resolution failures abort the call.
func Partition(fields []randstruct.Field, res randstruct.WidthResolver) ([]bucket.Bucket, error) {
	for i, f := range fields {
		if f == nil {
			return nil, errors.NilField(errors.PhasePartition, i)
		}
	}

	// The input slice belongs to the caller; the queue does not.
	queue := make([]randstruct.Field, len(fields))
	copy(queue, fields)

	var (
		sealed  []bucket.Bucket
		current *bucket.Generic
		run     *bucket.BitfieldRun
		skipped int
	)

	seal := func(b bucket.Bucket) {
		sealed = append(sealed, b)
		Logger().Debug("sealed bucket",
			zap.Int("index", len(sealed)-1),
			zap.Int("fields", b.Len()))
	}

	for len(queue) > 0 {
		// A full pass without a placement means nothing left fits the open
		// bucket; seal it so the next field gets a fresh one.
		if skipped >= len(queue) {
			skipped = 0
			if current != nil {
				seal(current)
				current = nil
			}
		}

		f := queue[0]
		queue = queue[1:]

		if f.IsBitfield() {
			if run == nil {
				run = bucket.NewBitfieldRun()
			}
			run.TryAdd(f, 1)
			continue
		}

		// A non-bitfield ends any open run; runs never span an interruption.
		if run != nil {
			seal(run)
			run = nil
		}
		if current == nil {
			current = bucket.NewGeneric()
		}

		width, err := res.WidthInBits(f)
		if err != nil {
			return nil, errors.WidthFailed(nil, err)
		}

		if current.TryAdd(f, width) {
			if current.Full() {
				skipped = 0
				seal(current)
				current = nil
			}
		} else {
			queue = append(queue, f)
			skipped++
		}
	}

	if current != nil {
		seal(current)
	}
	if run != nil {
		seal(run)
	}

	return sealed, nil
}
