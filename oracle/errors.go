package oracle

import "fmt"

// OracleError wraps a failure from the underlying oracle call — a network
// failure, a protocol error, anything that isn't a conformance answer.
// Engine state remains valid for retry when this is returned: the attack is
// idempotent because all of its state lives in memory and the failing query
// can simply be reissued.
type OracleError struct {
	Query uint64 // 1-based index of the query that failed
	Err   error  // underlying cause
}

func (e *OracleError) Error() string {
	return fmt.Sprintf("oracle: query %d failed: %v", e.Query, e.Err)
}

func (e *OracleError) Unwrap() error { return e.Err }
