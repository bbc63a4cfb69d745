package domain

// FlashcardSource is the provenance tag of a flashcard.
type FlashcardSource string

const (
	FlashcardSourceAI     FlashcardSource = "ai"
	FlashcardSourceManual FlashcardSource = "manual"
)

func (s FlashcardSource) String() string { return string(s) }

func (s FlashcardSource) IsValid() bool {
	switch s {
	case FlashcardSourceAI, FlashcardSourceManual:
		return true
	}
	return false
}
