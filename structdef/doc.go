// Package structdef parses YAML struct definitions for the randstruct CLI.
//
// In a compiler integration the declaration system supplies field
// descriptors and widths; structdef fills that role for standalone use, so
// layouts can be explored from a plain file:
//
//	structs:
//	  - name: packet
//	    randomize: true
//	    fields:
//	      - {name: version, type: u8, bits: 3}
//	      - {name: flags, type: u8, bits: 5}
//	      - {name: length, type: u32}
//	      - {name: payload, type: "[16]u8"}
//
// A field with bits set is a bit-field. Widths resolve from a builtin table
// of primitive names (bool, char, u8..u64, i8..i64, f32, f64, ptr) and
// [N]T arrays of those; width overrides the table for anything else.
package structdef
