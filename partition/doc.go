// Package partition assigns fields to buckets ahead of shuffling.
//
// The partitioner is a single-pass greedy first-fit over a work queue:
// consecutive bit-fields accumulate into order-preserving runs, other fields
// fill generic buckets toward one cache line, and fields that do not fit the
// open bucket rotate to the back of the queue. A skip counter guarantees
// progress: when a whole pass places nothing, the open bucket is sealed even
// though it is not full. The grouping is an approximation, not a bin-packing
// search; termination and the structural invariants are the guarantees, not
// packing quality.
package partition
