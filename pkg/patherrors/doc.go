// Package patherrors provides the error definitions shared by the path
// packages.
//
// Callers should match errors with [errors.Is] against the sentinels defined
// here, or with [errors.As] against [*ParseError] to recover the slice that
// could not be tokenized.
package patherrors
