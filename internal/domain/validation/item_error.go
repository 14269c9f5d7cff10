package validation

import "fmt"

// ItemError locates a failure inside an order's item list.
// It unwraps to the underlying failure so KindOf and errors.As still work.
type ItemError struct {
	Index    int
	Category string
	Err      error
}

func (e *ItemError) Error() string {
	if e.Category == "" {
		return fmt.Sprintf("item[%d]: %v", e.Index, e.Err)
	}
	return fmt.Sprintf("item[%d] (%s): %v", e.Index, e.Category, e.Err)
}

func (e *ItemError) Unwrap() error { return e.Err }
