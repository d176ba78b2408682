package catalog

import (
	"github.com/zjrosen/regdesk/internal/domain"
	"github.com/zjrosen/regdesk/internal/manager"
	"github.com/zjrosen/regdesk/internal/store"
)

// Kind binds the generic name list screen to one collection.
type Kind[ID ~int64, T manager.Named[ID, T]] struct {
	Manager     manager.NameManager[ID, T]
	Collection  store.Collection
	Noun        string // lower case, used in prompts
	FormTitle   string
	Placeholder string
	ListTitle   string
	Empty       string
	Items       func(store.State) []T
	Replace     func([]T) store.Change
	// Dependents counts offerings that reference the record.
	Dependents func(store.State, ID) int
}

// CourseTypes is the Course Types tab.
func CourseTypes() Kind[domain.CourseTypeID, domain.CourseType] {
	return Kind[domain.CourseTypeID, domain.CourseType]{
		Manager:     manager.CourseTypeManager(),
		Collection:  store.CourseTypes,
		Noun:        "course type",
		FormTitle:   "Add New Course Type",
		Placeholder: "Enter course type name",
		ListTitle:   "Existing Course Types",
		Empty:       "No course types available. Add one above!",
		Items:       func(s store.State) []domain.CourseType { return s.CourseTypes },
		Replace:     store.ReplaceCourseTypes,
		Dependents: func(s store.State, id domain.CourseTypeID) int {
			return domain.OfferingsUsingType(s.Offerings, id)
		},
	}
}

// Courses is the Courses tab.
func Courses() Kind[domain.CourseID, domain.Course] {
	return Kind[domain.CourseID, domain.Course]{
		Manager:     manager.CourseManager(),
		Collection:  store.Courses,
		Noun:        "course",
		FormTitle:   "Add New Course",
		Placeholder: "Enter course name",
		ListTitle:   "Existing Courses",
		Empty:       "No courses available. Add one above!",
		Items:       func(s store.State) []domain.Course { return s.Courses },
		Replace:     store.ReplaceCourses,
		Dependents: func(s store.State, id domain.CourseID) int {
			return domain.OfferingsUsingCourse(s.Offerings, id)
		},
	}
}
