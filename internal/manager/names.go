package manager

import (
	"slices"
	"strings"

	"github.com/zjrosen/regdesk/internal/domain"
)

// Named is a record identified by an id and displayed by a unique name.
type Named[ID ~int64, T any] interface {
	Key() ID
	Label() string
	Renamed(name string) T
}

// NameState is the uncommitted state of a name list manager.
type NameState[ID ~int64] struct {
	Draft         string `json:"draft"`
	EditingID     ID     `json:"editing_id,omitempty"`
	EditName      string `json:"edit_name,omitempty"`
	PendingDelete ID     `json:"pending_delete,omitempty"`
	Err           string `json:"error,omitempty"`
}

// Phase reports whether the manager is idle, has a draft, or is editing.
func (s NameState[ID]) Phase() Phase {
	switch {
	case s.EditingID != 0:
		return PhaseEditing
	case s.Draft != "":
		return PhaseCreating
	default:
		return PhaseIdle
	}
}

// NameManager manages a list of uniquely named records. Course types and
// courses share it and differ only in Noun.
type NameManager[ID ~int64, T Named[ID, T]] struct {
	Noun string
	New  func(id ID, name string) T
}

// CourseTypeManager manages course types.
func CourseTypeManager() NameManager[domain.CourseTypeID, domain.CourseType] {
	return NameManager[domain.CourseTypeID, domain.CourseType]{Noun: "Course type", New: domain.NewCourseType}
}

// CourseManager manages courses.
func CourseManager() NameManager[domain.CourseID, domain.Course] {
	return NameManager[domain.CourseID, domain.Course]{Noun: "Course", New: domain.NewCourse}
}

// validate trims raw and checks it against every item except the one with
// id except.
func (m NameManager[ID, T]) validate(items []T, raw string, except ID) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", domain.Invalid(domain.RuleRequired, m.Noun+" name cannot be empty")
	}
	for _, item := range items {
		if item.Key() != except && strings.EqualFold(item.Label(), name) {
			return "", domain.Invalid(domain.RuleDuplicateName, m.Noun+" already exists")
		}
	}
	return name, nil
}

// Create appends a record named after the draft.
func (m NameManager[ID, T]) Create(items []T, st NameState[ID], ids IDSource) ([]T, NameState[ID], error) {
	name, err := m.validate(items, st.Draft, 0)
	if err != nil {
		st.Err = err.Error()
		return items, st, err
	}

	next := append(slices.Clone(items), m.New(ID(ids.Next()), name))
	st.Draft = ""
	st.Err = ""
	return next, st, nil
}

// StartEdit puts the record with id into edit mode, abandoning any other
// edit in progress. Unknown ids leave the state untouched.
func (m NameManager[ID, T]) StartEdit(items []T, st NameState[ID], id ID) NameState[ID] {
	idx := slices.IndexFunc(items, func(item T) bool { return item.Key() == id })
	if idx < 0 {
		return st
	}
	st.EditingID = id
	st.EditName = items[idx].Label()
	st.Err = ""
	return st
}

// CommitEdit renames the record being edited to EditName.
func (m NameManager[ID, T]) CommitEdit(items []T, st NameState[ID]) ([]T, NameState[ID], error) {
	if st.EditingID == 0 {
		return items, st, nil
	}
	idx := slices.IndexFunc(items, func(item T) bool { return item.Key() == st.EditingID })
	if idx < 0 {
		return items, m.CancelEdit(st), nil
	}

	name, err := m.validate(items, st.EditName, st.EditingID)
	if err != nil {
		st.Err = err.Error()
		return items, st, err
	}

	next := slices.Clone(items)
	next[idx] = next[idx].Renamed(name)
	st.EditingID = 0
	st.EditName = ""
	st.Err = ""
	return next, st, nil
}

// CancelEdit leaves edit mode without touching the collection.
func (m NameManager[ID, T]) CancelEdit(st NameState[ID]) NameState[ID] {
	st.EditingID = 0
	st.EditName = ""
	return st
}

// RequestDelete asks for confirmation before deleting id.
func (m NameManager[ID, T]) RequestDelete(items []T, st NameState[ID], id ID) NameState[ID] {
	if slices.ContainsFunc(items, func(item T) bool { return item.Key() == id }) {
		st.PendingDelete = id
	}
	return st
}

// ConfirmDelete removes the record awaiting confirmation. The bool reports
// whether anything was removed.
func (m NameManager[ID, T]) ConfirmDelete(items []T, st NameState[ID]) ([]T, NameState[ID], bool) {
	id := st.PendingDelete
	st.PendingDelete = 0
	if id == 0 {
		return items, st, false
	}

	next := slices.DeleteFunc(slices.Clone(items), func(item T) bool { return item.Key() == id })
	if len(next) == len(items) {
		return items, st, false
	}
	if st.EditingID == id {
		st = m.CancelEdit(st)
	}
	st.Err = ""
	return next, st, true
}

// CancelDelete drops the pending confirmation.
func (m NameManager[ID, T]) CancelDelete(st NameState[ID]) NameState[ID] {
	st.PendingDelete = 0
	return st
}
