// Package domain defines the records regdesk manages and the lookups that
// resolve references between them.
//
// Offerings point at a course and a course type by id, and registrations
// point at an offering. Deletes never cascade, so any of these references
// may dangle; every lookup reports that explicitly.
package domain

// Typed identifiers. The zero value means "nothing selected".
type (
	CourseTypeID   int64
	CourseID       int64
	OfferingID     int64
	RegistrationID int64
)

// CourseType is a delivery format such as Individual or Group.
type CourseType struct {
	ID   CourseTypeID `json:"id"`
	Name string       `json:"name"`
}

// NewCourseType builds a course type from its parts.
func NewCourseType(id CourseTypeID, name string) CourseType {
	return CourseType{ID: id, Name: name}
}

func (c CourseType) Key() CourseTypeID { return c.ID }
func (c CourseType) Label() string     { return c.Name }

// Renamed returns a copy with the name replaced.
func (c CourseType) Renamed(name string) CourseType {
	c.Name = name
	return c
}

// Course is a subject such as Hindi or English.
type Course struct {
	ID   CourseID `json:"id"`
	Name string   `json:"name"`
}

// NewCourse builds a course from its parts.
func NewCourse(id CourseID, name string) Course {
	return Course{ID: id, Name: name}
}

func (c Course) Key() CourseID  { return c.ID }
func (c Course) Label() string { return c.Name }

// Renamed returns a copy with the name replaced.
func (c Course) Renamed(name string) Course {
	c.Name = name
	return c
}

// Offering pairs a course with a course type. The pair is unique across
// all offerings.
type Offering struct {
	ID           OfferingID   `json:"id"`
	CourseID     CourseID     `json:"course_id"`
	CourseTypeID CourseTypeID `json:"course_type_id"`
}

// Registration enrolls one student in one offering.
type Registration struct {
	ID           RegistrationID `json:"id"`
	StudentName  string         `json:"student_name"`
	StudentEmail string         `json:"student_email"`
	OfferingID   OfferingID     `json:"offering_id"`
	RegisteredAt string         `json:"registered_at"`
}
