package domain

// NewVersionThreshold is the modification percentage at or above which an
// edited flashcard is treated as a new version.
const NewVersionThreshold = 50

// FlashcardOriginal is the content a flashcard was created with.
type FlashcardOriginal struct {
	FrontOriginal string
	BackOriginal  string
}

// FlashcardEdit is a user edit. A nil side means the side was not edited.
type FlashcardEdit struct {
	FrontModified *string
	BackModified  *string
}

// CalculateModificationPercentage returns 0 when every edited side is absent or
// identical to its original and 100 otherwise. The measure is binary: any
// textual change counts as a full modification.
func CalculateModificationPercentage(original FlashcardOriginal, modified FlashcardEdit) int {
	if sideChanged(original.FrontOriginal, modified.FrontModified) ||
		sideChanged(original.BackOriginal, modified.BackModified) {
		return 100
	}
	return 0
}

// ShouldCreateNewVersion reports whether percentage reaches NewVersionThreshold.
func ShouldCreateNewVersion(percentage int) bool {
	return percentage >= NewVersionThreshold
}

func sideChanged(original string, modified *string) bool {
	return modified != nil && *modified != original
}
