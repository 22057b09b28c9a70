// Package randstruct provides best-effort cache-line-aware randomization of
// struct field layouts.
//
// Given the declared member order of an aggregate, the library produces a
// permuted order that is harder for an attacker to predict while preserving
// two structural guarantees: consecutive bit-field members stay adjacent in
// their original relative order, and fields are regrouped into roughly
// cache-line-sized buckets rather than scattered individually.
//
// # Architecture Overview
//
// The library is organized into small packages with one responsibility each:
//
//	randstruct/          Root package with Field and WidthResolver interfaces
//	├── layout/          Entry point: Rearrange runs the full pipeline
//	├── partition/       Greedy first-fit grouping into buckets
//	├── bucket/          Cache-line buckets and bit-field runs
//	├── shuffle/         Deterministic seeded permutations
//	├── structdef/       YAML struct definitions for the CLI
//	└── errors/          Structured error types
//
// # Quick Start
//
// Implement Field and WidthResolver over your own member descriptors, then:
//
//	order, err := layout.Rearrange(fields, widths, randstruct.Config{
//	    Seed: "build-seed",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// order is a permutation of fields; hand it to your layout engine.
//
// # Guarantees
//
// The output is always a permutation of the input: same count, same set of
// references, no duplication or loss. Every maximal run of consecutive
// bit-fields in the input appears contiguous and internally unreordered in
// the output. Non-bitfield members move freely, but only within the bucket
// the partitioner assigned them to.
//
// The shuffle is deterministic: identical seed and identical input yield an
// identical layout, so explicitly seeded builds are reproducible. It is NOT
// cryptographically secure, and the library makes no claims about the
// distribution of permutations.
//
// # What This Library Does Not Do
//
// Offset assignment, alignment, and padding remain the layout engine's job;
// the library only decides member order. Nested aggregates are not recursed
// into. Each call reorders the direct members of one aggregate.
//
// # Thread Safety
//
// Rearrange holds no shared mutable state. Each call derives a fresh random
// source from the configured seed, so concurrent calls for different
// aggregates are safe as long as the Config value itself is not mutated
// mid-call.
package randstruct
