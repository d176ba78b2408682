package domain

import "fmt"

// Unknown is displayed in place of a name whose record no longer exists.
const Unknown = "Unknown"

func find[T any](items []T, match func(T) bool) (T, bool) {
	for _, item := range items {
		if match(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// FindCourseType resolves a course type id.
func FindCourseType(types []CourseType, id CourseTypeID) (CourseType, bool) {
	return find(types, func(t CourseType) bool { return t.ID == id })
}

// FindCourse resolves a course id.
func FindCourse(courses []Course, id CourseID) (Course, bool) {
	return find(courses, func(c Course) bool { return c.ID == id })
}

// FindOffering resolves an offering id.
func FindOffering(offerings []Offering, id OfferingID) (Offering, bool) {
	return find(offerings, func(o Offering) bool { return o.ID == id })
}

// FindRegistration resolves a registration id.
func FindRegistration(regs []Registration, id RegistrationID) (Registration, bool) {
	return find(regs, func(r Registration) bool { return r.ID == id })
}

// CourseTypeName returns the type's name, or Unknown when it is gone.
func CourseTypeName(types []CourseType, id CourseTypeID) string {
	if t, ok := FindCourseType(types, id); ok {
		return t.Name
	}
	return Unknown
}

// CourseName returns the course's name, or Unknown when it is gone.
func CourseName(courses []Course, id CourseID) string {
	if c, ok := FindCourse(courses, id); ok {
		return c.Name
	}
	return Unknown
}

// OfferingLabel renders an offering as "<type> - <course>".
func OfferingLabel(o Offering, courses []Course, types []CourseType) string {
	return CourseTypeName(types, o.CourseTypeID) + " - " + CourseName(courses, o.CourseID)
}

// OfferingDetail renders the secondary line shown under an offering.
func OfferingDetail(o Offering, courses []Course, types []CourseType) string {
	return fmt.Sprintf("Course: %s | Type: %s", CourseName(courses, o.CourseID), CourseTypeName(types, o.CourseTypeID))
}

// OfferingsUsingCourse counts offerings that reference the course.
func OfferingsUsingCourse(offerings []Offering, id CourseID) int {
	n := 0
	for _, o := range offerings {
		if o.CourseID == id {
			n++
		}
	}
	return n
}

// OfferingsUsingType counts offerings that reference the course type.
func OfferingsUsingType(offerings []Offering, id CourseTypeID) int {
	n := 0
	for _, o := range offerings {
		if o.CourseTypeID == id {
			n++
		}
	}
	return n
}

// RegistrationsFor counts registrations that reference the offering.
func RegistrationsFor(regs []Registration, id OfferingID) int {
	n := 0
	for _, r := range regs {
		if r.OfferingID == id {
			n++
		}
	}
	return n
}
