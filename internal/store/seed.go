package store

import (
	"fmt"
	"strings"

	"github.com/zjrosen/regdesk/internal/domain"
)

// Seed describes the records loaded at startup, by name.
type Seed struct {
	CourseTypes []string
	Courses     []string
	Offerings   []SeedOffering
}

// SeedOffering names the course and course type of a seeded offering.
type SeedOffering struct {
	Course string
	Type   string
}

// DefaultSeed is the sample catalog a fresh session starts with.
func DefaultSeed() Seed {
	return Seed{
		CourseTypes: []string{"Individual", "Group", "Special"},
		Courses:     []string{"Hindi", "English", "Urdu"},
		Offerings: []SeedOffering{
			{Course: "English", Type: "Individual"},
			{Course: "Hindi", Type: "Group"},
		},
	}
}

// Seeded builds the initial State. Seeded ids run 1..n within each
// collection. The seed must itself satisfy every collection invariant.
func Seeded(seed Seed) (State, error) {
	var s State

	typeIDs := make(map[string]domain.CourseTypeID, len(seed.CourseTypes))
	for i, raw := range seed.CourseTypes {
		name := strings.TrimSpace(raw)
		if name == "" {
			return State{}, fmt.Errorf("seed course type %d: empty name", i+1)
		}
		key := strings.ToLower(name)
		if _, dup := typeIDs[key]; dup {
			return State{}, fmt.Errorf("seed course type %q: duplicate name", name)
		}
		id := domain.CourseTypeID(i + 1)
		typeIDs[key] = id
		s.CourseTypes = append(s.CourseTypes, domain.NewCourseType(id, name))
	}

	courseIDs := make(map[string]domain.CourseID, len(seed.Courses))
	for i, raw := range seed.Courses {
		name := strings.TrimSpace(raw)
		if name == "" {
			return State{}, fmt.Errorf("seed course %d: empty name", i+1)
		}
		key := strings.ToLower(name)
		if _, dup := courseIDs[key]; dup {
			return State{}, fmt.Errorf("seed course %q: duplicate name", name)
		}
		id := domain.CourseID(i + 1)
		courseIDs[key] = id
		s.Courses = append(s.Courses, domain.NewCourse(id, name))
	}

	type pair struct {
		course domain.CourseID
		kind   domain.CourseTypeID
	}
	seen := make(map[pair]bool, len(seed.Offerings))
	for i, so := range seed.Offerings {
		courseID, ok := courseIDs[strings.ToLower(strings.TrimSpace(so.Course))]
		if !ok {
			return State{}, fmt.Errorf("seed offering %d: unknown course %q", i+1, so.Course)
		}
		typeID, ok := typeIDs[strings.ToLower(strings.TrimSpace(so.Type))]
		if !ok {
			return State{}, fmt.Errorf("seed offering %d: unknown course type %q", i+1, so.Type)
		}
		p := pair{courseID, typeID}
		if seen[p] {
			return State{}, fmt.Errorf("seed offering %d: duplicate of %s/%s", i+1, so.Course, so.Type)
		}
		seen[p] = true
		s.Offerings = append(s.Offerings, domain.Offering{
			ID:           domain.OfferingID(i + 1),
			CourseID:     courseID,
			CourseTypeID: typeID,
		})
	}

	return s, nil
}
