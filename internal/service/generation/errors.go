package generation

import (
	"errors"
	"fmt"
)

// Sentinels matched by callers that need to tell the failure kinds apart.
var (
	ErrGeneration = errors.New("flashcard generation failed")
	ErrPersist    = errors.New("flashcard persistence failed")
)

// GenerationError reports that the model call or its output was unusable.
// Both ErrGeneration and the underlying cause are reachable through errors.Is/As.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generate flashcards: %v", e.Err)
}

func (e *GenerationError) Unwrap() []error { return []error{ErrGeneration, e.Err} }

// PersistError reports that generated proposals could not be saved.
type PersistError struct {
	Count int
	Err   error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("save %d generated flashcards: %v", e.Count, e.Err)
}

func (e *PersistError) Unwrap() []error { return []error{ErrPersist, e.Err} }
