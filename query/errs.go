package query

import "fmt"

// UnsupportedResultTypeError reports an expression whose evaluation
// produced a result outside the supported scalar and node-set kinds.
type UnsupportedResultTypeError struct {
	Expr string
	Type string
}

func (e *UnsupportedResultTypeError) Error() string {
	return fmt.Sprintf("unsupported result type %s for xpath %q", e.Type, e.Expr)
}
