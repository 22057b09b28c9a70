// Package errors provides structured error types for the randstruct library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type includes the field path and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseResolve, errors.KindInvalidWidth).
//		Path("packet", "payload").
//		Detail("width resolver returned no size").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.UnknownType(errors.PhaseParse, path, "u128")
//	err := errors.NilField(errors.PhaseLayout, 3)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
