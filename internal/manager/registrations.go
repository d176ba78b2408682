package manager

import (
	"slices"
	"strings"
	"time"

	"github.com/zjrosen/regdesk/internal/domain"
)

const (
	msgFillAllFields = "Please fill in all fields"
	msgInvalidEmail  = "Please enter a valid email address"

	// DefaultDateLayout renders registration dates as month/day/year.
	DefaultDateLayout = "1/2/2006"
)

// RegistrationState is the uncommitted state of the registrations manager.
type RegistrationState struct {
	StudentName   string                `json:"student_name"`
	StudentEmail  string                `json:"student_email"`
	OfferingID    domain.OfferingID     `json:"offering_id,omitempty"`
	FilterType    domain.CourseTypeID   `json:"filter_type,omitempty"`
	PendingDelete domain.RegistrationID `json:"pending_delete,omitempty"`
	Err           string                `json:"error,omitempty"`
}

func (s RegistrationState) Phase() Phase {
	if s.StudentName != "" || s.StudentEmail != "" || s.OfferingID != 0 {
		return PhaseCreating
	}
	return PhaseIdle
}

// RegistrationManager manages student registrations. Registrations cannot
// be edited, only created and deleted.
type RegistrationManager struct {
	DateLayout string
}

func (m RegistrationManager) layout() string {
	if m.DateLayout == "" {
		return DefaultDateLayout
	}
	return m.DateLayout
}

// Create registers the student in the selected offering, stamping the
// registration with now.
func (m RegistrationManager) Create(regs []domain.Registration, st RegistrationState, ids IDSource, now time.Time) ([]domain.Registration, RegistrationState, error) {
	name := strings.TrimSpace(st.StudentName)
	email := strings.TrimSpace(st.StudentEmail)

	var err error
	switch {
	case name == "" || email == "" || st.OfferingID == 0:
		err = domain.Invalid(domain.RuleIncompleteFields, msgFillAllFields)
	case !domain.ValidEmail(st.StudentEmail):
		// Checked on the raw input, so surrounding whitespace is rejected.
		err = domain.Invalid(domain.RuleEmailShape, msgInvalidEmail)
	}
	if err != nil {
		st.Err = err.Error()
		return regs, st, err
	}

	next := append(slices.Clone(regs), domain.Registration{
		ID:           domain.RegistrationID(ids.Next()),
		StudentName:  name,
		StudentEmail: email,
		OfferingID:   st.OfferingID,
		RegisteredAt: now.Format(m.layout()),
	})
	st.StudentName = ""
	st.StudentEmail = ""
	st.OfferingID = 0
	st.Err = ""
	return next, st, nil
}

// SetFilter restricts the offering choices to one course type, or lifts the
// restriction when filter is zero. A selected offering that the filter
// hides is deselected.
func (m RegistrationManager) SetFilter(offerings []domain.Offering, st RegistrationState, filter domain.CourseTypeID) RegistrationState {
	st.FilterType = filter
	if st.OfferingID == 0 {
		return st
	}
	visible := FilteredOfferings(offerings, filter)
	if !slices.ContainsFunc(visible, func(o domain.Offering) bool { return o.ID == st.OfferingID }) {
		st.OfferingID = 0
	}
	return st
}

// RequestDelete asks for confirmation before deleting id.
func (RegistrationManager) RequestDelete(regs []domain.Registration, st RegistrationState, id domain.RegistrationID) RegistrationState {
	if _, ok := domain.FindRegistration(regs, id); ok {
		st.PendingDelete = id
	}
	return st
}

// ConfirmDelete removes the registration awaiting confirmation.
func (RegistrationManager) ConfirmDelete(regs []domain.Registration, st RegistrationState) ([]domain.Registration, RegistrationState, bool) {
	id := st.PendingDelete
	st.PendingDelete = 0
	if id == 0 {
		return regs, st, false
	}

	next := slices.DeleteFunc(slices.Clone(regs), func(r domain.Registration) bool { return r.ID == id })
	if len(next) == len(regs) {
		return regs, st, false
	}
	st.Err = ""
	return next, st, true
}

// CancelDelete drops the pending confirmation.
func (RegistrationManager) CancelDelete(st RegistrationState) RegistrationState {
	st.PendingDelete = 0
	return st
}

// FilteredOfferings returns the offerings of one course type, or all of
// them when filter is zero.
func FilteredOfferings(offerings []domain.Offering, filter domain.CourseTypeID) []domain.Offering {
	if filter == 0 {
		return offerings
	}
	var out []domain.Offering
	for _, o := range offerings {
		if o.CourseTypeID == filter {
			out = append(out, o)
		}
	}
	return out
}

// Group is one offering with the students registered in it.
type Group struct {
	Offering domain.Offering
	Students []domain.Registration
}

// Grouped buckets registrations by offering, in offering order, keeping
// registration order within each bucket. Offerings without students are
// left out, as are registrations whose offering no longer exists.
func Grouped(offerings []domain.Offering, regs []domain.Registration) []Group {
	var groups []Group
	for _, o := range offerings {
		var students []domain.Registration
		for _, r := range regs {
			if r.OfferingID == o.ID {
				students = append(students, r)
			}
		}
		if len(students) > 0 {
			groups = append(groups, Group{Offering: o, Students: students})
		}
	}
	return groups
}

// Orphaned counts registrations whose offering no longer exists.
func Orphaned(offerings []domain.Offering, regs []domain.Registration) int {
	n := 0
	for _, r := range regs {
		if _, ok := domain.FindOffering(offerings, r.OfferingID); !ok {
			n++
		}
	}
	return n
}
