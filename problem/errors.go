package problem

import "errors"

// Sentinel errors for Problem validation. Callers should branch with
// errors.Is, never string comparison.

// ErrInvalidVertexCount indicates a non-positive N was supplied.
// Usage: if errors.Is(err, ErrInvalidVertexCount) { ... }.
var ErrInvalidVertexCount = errors.New("problem: vertex count must be positive")

// ErrDomainSizeMismatch indicates len(DomainSizes) != N.
var ErrDomainSizeMismatch = errors.New("problem: domain size count must equal vertex count")

// ErrNonPositiveDomain indicates a DomainSizes entry is <= 0.
var ErrNonPositiveDomain = errors.New("problem: domain size must be positive")

// ErrScopeVertexOutOfRange indicates a scope names a vertex id outside [0,N).
var ErrScopeVertexOutOfRange = errors.New("problem: scope vertex out of range")

// ErrScopeDuplicateVertex indicates a scope names the same vertex twice.
var ErrScopeDuplicateVertex = errors.New("problem: scope contains a duplicate vertex")
