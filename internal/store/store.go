// Package store holds the four collections regdesk manages together with
// the active tab. A State is a value: every mutation produces a new State
// through Apply and never edits a slice another State can see.
package store

import (
	"slices"

	"github.com/zjrosen/regdesk/internal/domain"
)

// Collection names one of the four collections.
type Collection string

const (
	CourseTypes   Collection = "course_types"
	Courses       Collection = "courses"
	Offerings     Collection = "offerings"
	Registrations Collection = "registrations"
)

// State is the complete in-memory application state.
type State struct {
	CourseTypes   []domain.CourseType
	Courses       []domain.Course
	Offerings     []domain.Offering
	Registrations []domain.Registration
	Active        Tab
}

// Change replaces one collection wholesale.
type Change struct {
	Collection Collection

	courseTypes   []domain.CourseType
	courses       []domain.Course
	offerings     []domain.Offering
	registrations []domain.Registration
}

func ReplaceCourseTypes(items []domain.CourseType) Change {
	return Change{Collection: CourseTypes, courseTypes: slices.Clone(items)}
}

func ReplaceCourses(items []domain.Course) Change {
	return Change{Collection: Courses, courses: slices.Clone(items)}
}

func ReplaceOfferings(items []domain.Offering) Change {
	return Change{Collection: Offerings, offerings: slices.Clone(items)}
}

func ReplaceRegistrations(items []domain.Registration) Change {
	return Change{Collection: Registrations, registrations: slices.Clone(items)}
}

// Len returns the size of the replacement collection.
func (c Change) Len() int {
	switch c.Collection {
	case CourseTypes:
		return len(c.courseTypes)
	case Courses:
		return len(c.courses)
	case Offerings:
		return len(c.offerings)
	case Registrations:
		return len(c.registrations)
	}
	return 0
}

// Apply returns a copy of s with the change's collection replaced. The
// other collections are shared with s, which is safe because no State
// mutates its slices in place.
func (s State) Apply(c Change) State {
	switch c.Collection {
	case CourseTypes:
		s.CourseTypes = slices.Clone(c.courseTypes)
	case Courses:
		s.Courses = slices.Clone(c.courses)
	case Offerings:
		s.Offerings = slices.Clone(c.offerings)
	case Registrations:
		s.Registrations = slices.Clone(c.registrations)
	}
	return s
}

// Len returns the size of one collection.
func (s State) Len(c Collection) int {
	switch c {
	case CourseTypes:
		return len(s.CourseTypes)
	case Courses:
		return len(s.Courses)
	case Offerings:
		return len(s.Offerings)
	case Registrations:
		return len(s.Registrations)
	}
	return 0
}

// WithActive returns a copy of s showing tab t.
func (s State) WithActive(t Tab) State {
	s.Active = t
	return s
}

// MaxID returns the largest id used by any collection.
func (s State) MaxID() int64 {
	var top int64
	for _, ct := range s.CourseTypes {
		top = max(top, int64(ct.ID))
	}
	for _, c := range s.Courses {
		top = max(top, int64(c.ID))
	}
	for _, o := range s.Offerings {
		top = max(top, int64(o.ID))
	}
	for _, r := range s.Registrations {
		top = max(top, int64(r.ID))
	}
	return top
}
