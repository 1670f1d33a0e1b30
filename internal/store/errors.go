package store

import "fmt"

// DuplicateIDError is returned when an add supplies an id that is already
// present in the target collection.
type DuplicateIDError struct {
	Kind string
	ID   int64
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("%s id already exists: %d", e.Kind, e.ID)
}
