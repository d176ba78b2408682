// Package manager implements the rules of the four list managers as pure
// functions. Each operation takes the current collection and the manager's
// uncommitted state and returns the next collection and state; a rejected
// operation returns the collection unchanged alongside a
// *domain.ValidationError whose message is also recorded in the state.
package manager

// IDSource hands out fresh identifiers. It is only consulted when a create
// succeeds.
type IDSource interface {
	Next() int64
}

// Phase is the coarse state of a manager.
type Phase string

const (
	PhaseIdle     Phase = "idle"
	PhaseCreating Phase = "creating"
	PhaseEditing  Phase = "editing"
)
