package manager

import (
	"slices"

	"github.com/zjrosen/regdesk/internal/domain"
)

const (
	msgSelectBoth        = "Please select both course and course type"
	msgDuplicateOffering = "This course offering already exists"
)

// OfferingState is the uncommitted state of the offerings manager.
type OfferingState struct {
	CourseID         domain.CourseID     `json:"course_id,omitempty"`
	CourseTypeID     domain.CourseTypeID `json:"course_type_id,omitempty"`
	EditingID        domain.OfferingID   `json:"editing_id,omitempty"`
	EditCourseID     domain.CourseID     `json:"edit_course_id,omitempty"`
	EditCourseTypeID domain.CourseTypeID `json:"edit_course_type_id,omitempty"`
	PendingDelete    domain.OfferingID   `json:"pending_delete,omitempty"`
	Err              string              `json:"error,omitempty"`
}

func (s OfferingState) Phase() Phase {
	switch {
	case s.EditingID != 0:
		return PhaseEditing
	case s.CourseID != 0 || s.CourseTypeID != 0:
		return PhaseCreating
	default:
		return PhaseIdle
	}
}

// OfferingManager manages course offerings.
type OfferingManager struct{}

func validatePair(offerings []domain.Offering, course domain.CourseID, kind domain.CourseTypeID, except domain.OfferingID) error {
	if course == 0 || kind == 0 {
		return domain.Invalid(domain.RuleMissingSelection, msgSelectBoth)
	}
	for _, o := range offerings {
		if o.ID != except && o.CourseID == course && o.CourseTypeID == kind {
			return domain.Invalid(domain.RuleDuplicateOffering, msgDuplicateOffering)
		}
	}
	return nil
}

// Create appends an offering for the selected course and course type.
func (OfferingManager) Create(offerings []domain.Offering, st OfferingState, ids IDSource) ([]domain.Offering, OfferingState, error) {
	if err := validatePair(offerings, st.CourseID, st.CourseTypeID, 0); err != nil {
		st.Err = err.Error()
		return offerings, st, err
	}

	next := append(slices.Clone(offerings), domain.Offering{
		ID:           domain.OfferingID(ids.Next()),
		CourseID:     st.CourseID,
		CourseTypeID: st.CourseTypeID,
	})
	st.CourseID = 0
	st.CourseTypeID = 0
	st.Err = ""
	return next, st, nil
}

// StartEdit loads the offering's current pair into the edit selection.
func (OfferingManager) StartEdit(offerings []domain.Offering, st OfferingState, id domain.OfferingID) OfferingState {
	o, ok := domain.FindOffering(offerings, id)
	if !ok {
		return st
	}
	st.EditingID = id
	st.EditCourseID = o.CourseID
	st.EditCourseTypeID = o.CourseTypeID
	st.Err = ""
	return st
}

// CommitEdit writes the edit selection back to the offering.
func (m OfferingManager) CommitEdit(offerings []domain.Offering, st OfferingState) ([]domain.Offering, OfferingState, error) {
	if st.EditingID == 0 {
		return offerings, st, nil
	}
	idx := slices.IndexFunc(offerings, func(o domain.Offering) bool { return o.ID == st.EditingID })
	if idx < 0 {
		return offerings, m.CancelEdit(st), nil
	}

	if err := validatePair(offerings, st.EditCourseID, st.EditCourseTypeID, st.EditingID); err != nil {
		st.Err = err.Error()
		return offerings, st, err
	}

	next := slices.Clone(offerings)
	next[idx].CourseID = st.EditCourseID
	next[idx].CourseTypeID = st.EditCourseTypeID
	st = m.CancelEdit(st)
	st.Err = ""
	return next, st, nil
}

// CancelEdit leaves edit mode without touching the collection.
func (OfferingManager) CancelEdit(st OfferingState) OfferingState {
	st.EditingID = 0
	st.EditCourseID = 0
	st.EditCourseTypeID = 0
	return st
}

// RequestDelete asks for confirmation before deleting id.
func (OfferingManager) RequestDelete(offerings []domain.Offering, st OfferingState, id domain.OfferingID) OfferingState {
	if _, ok := domain.FindOffering(offerings, id); ok {
		st.PendingDelete = id
	}
	return st
}

// ConfirmDelete removes the offering awaiting confirmation.
func (m OfferingManager) ConfirmDelete(offerings []domain.Offering, st OfferingState) ([]domain.Offering, OfferingState, bool) {
	id := st.PendingDelete
	st.PendingDelete = 0
	if id == 0 {
		return offerings, st, false
	}

	next := slices.DeleteFunc(slices.Clone(offerings), func(o domain.Offering) bool { return o.ID == id })
	if len(next) == len(offerings) {
		return offerings, st, false
	}
	if st.EditingID == id {
		st = m.CancelEdit(st)
	}
	st.Err = ""
	return next, st, true
}

// CancelDelete drops the pending confirmation.
func (OfferingManager) CancelDelete(st OfferingState) OfferingState {
	st.PendingDelete = 0
	return st
}
