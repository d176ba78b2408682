package store

// Tab selects which manager view is visible.
type Tab int

const (
	TabCourseTypes Tab = iota
	TabCourses
	TabOfferings
	TabRegistrations
)

// Tabs lists every tab in display order.
var Tabs = []Tab{TabCourseTypes, TabCourses, TabOfferings, TabRegistrations}

func (t Tab) String() string {
	switch t {
	case TabCourseTypes:
		return "Course Types"
	case TabCourses:
		return "Courses"
	case TabOfferings:
		return "Course Offerings"
	case TabRegistrations:
		return "Registrations"
	default:
		return "Unknown"
	}
}

// Next returns the following tab, wrapping around.
func (t Tab) Next() Tab {
	return Tab((int(t) + 1) % len(Tabs))
}

// Prev returns the preceding tab, wrapping around.
func (t Tab) Prev() Tab {
	return Tab((int(t) + len(Tabs) - 1) % len(Tabs))
}
