package shared

import (
	"fmt"

	"github.com/zjrosen/regdesk/internal/ui/modal"
)

// DeleteModal builds the confirmation shown before deleting a noun such as
// "course type". When dependents is positive the modal warns how many
// records of dependentNoun will keep pointing at the deleted one.
func DeleteModal(noun string, dependents int, dependentNoun string) modal.Model {
	cfg := modal.Config{
		Title:          "Confirm Delete",
		Message:        fmt.Sprintf("Are you sure you want to delete this %s?", noun),
		ConfirmLabel:   "Delete",
		ConfirmVariant: modal.ButtonDanger,
	}
	if dependents > 0 {
		cfg.Warning = fmt.Sprintf("%d %s(s) still reference it and will show \"Unknown\".", dependents, dependentNoun)
	}
	return modal.New(cfg)
}
