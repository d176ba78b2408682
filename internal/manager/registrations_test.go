package manager

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/zjrosen/regdesk/internal/domain"
)

func sampleOfferings() []domain.Offering {
	return []domain.Offering{
		{ID: 1, CourseID: 2, CourseTypeID: 1},
		{ID: 2, CourseID: 1, CourseTypeID: 2},
		{ID: 3, CourseID: 3, CourseTypeID: 1},
	}
}

func TestRegistrationManager_Create(t *testing.T) {
	m := RegistrationManager{}
	st := RegistrationState{StudentName: "  Asha Rao ", StudentEmail: "asha@example.com", OfferingID: 1, FilterType: 1}

	regs, st, err := m.Create(nil, st, &counter{next: 7}, registeredOn)
	require.NoError(t, err)
	require.Equal(t, []domain.Registration{{
		ID:           8,
		StudentName:  "Asha Rao",
		StudentEmail: "asha@example.com",
		OfferingID:   1,
		RegisteredAt: "3/7/2026",
	}}, regs)
	require.Equal(t, RegistrationState{FilterType: 1}, st, "the filter survives a create")
}

func TestRegistrationManager_DateLayout(t *testing.T) {
	m := RegistrationManager{DateLayout: "2006-01-02"}
	st := RegistrationState{StudentName: "Asha", StudentEmail: "asha@example.com", OfferingID: 1}

	regs, _, err := m.Create(nil, st, &counter{}, registeredOn)
	require.NoError(t, err)
	require.Equal(t, "2026-03-07", regs[0].RegisteredAt)
}

func TestRegistrationManager_CreateRejects(t *testing.T) {
	tests := []struct {
		name string
		st   RegistrationState
		rule domain.Rule
		msg  string
	}{
		{"blank name", RegistrationState{StudentName: "  ", StudentEmail: "a@b.co", OfferingID: 1}, domain.RuleIncompleteFields, "Please fill in all fields"},
		{"blank email", RegistrationState{StudentName: "Asha", OfferingID: 1}, domain.RuleIncompleteFields, "Please fill in all fields"},
		{"no offering", RegistrationState{StudentName: "Asha", StudentEmail: "a@b.co"}, domain.RuleIncompleteFields, "Please fill in all fields"},
		{"no at sign", RegistrationState{StudentName: "Asha", StudentEmail: "asha.example.com", OfferingID: 1}, domain.RuleEmailShape, "Please enter a valid email address"},
		{"no dot after at", RegistrationState{StudentName: "Asha", StudentEmail: "asha@example", OfferingID: 1}, domain.RuleEmailShape, "Please enter a valid email address"},
		{"padded email", RegistrationState{StudentName: "Asha", StudentEmail: " asha@example.com", OfferingID: 1}, domain.RuleEmailShape, "Please enter a valid email address"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			existing := []domain.Registration{{ID: 1, StudentName: "Ravi", StudentEmail: "ravi@example.com", OfferingID: 2}}
			next, st, err := RegistrationManager{}.Create(existing, tt.st, &counter{}, registeredOn)

			ve, ok := domain.AsValidation(err)
			require.True(t, ok)
			require.Equal(t, tt.rule, ve.Rule)
			require.Equal(t, tt.msg, st.Err)
			require.Equal(t, existing, next)
			require.Equal(t, tt.st.StudentName, st.StudentName, "fields are kept for correction")
		})
	}
}

func TestRegistrationManager_MalformedEmailNeverAdds(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		email := rapid.OneOf(
			rapid.StringMatching(`[a-z]{1,10}\.[a-z]{2,4}`),
			rapid.StringMatching(`[a-z]{1,10}@[a-z]{1,10}`),
		).Draw(rt, "email")

		st := RegistrationState{StudentName: "Student", StudentEmail: email, OfferingID: 1}
		next, st, err := RegistrationManager{}.Create(nil, st, &counter{}, registeredOn)

		require.Error(rt, err)
		require.Empty(rt, next)
		require.Equal(rt, "Please enter a valid email address", st.Err)
	})
}

func TestFilteredOfferings(t *testing.T) {
	offs := sampleOfferings()

	require.Equal(t, offs, FilteredOfferings(offs, 0))
	require.Equal(t, []domain.Offering{offs[0], offs[2]}, FilteredOfferings(offs, 1))
	require.Empty(t, FilteredOfferings(offs, 9))
}

func TestRegistrationManager_SetFilter(t *testing.T) {
	m := RegistrationManager{}
	offs := sampleOfferings()

	st := m.SetFilter(offs, RegistrationState{OfferingID: 3}, 1)
	require.Equal(t, domain.OfferingID(3), st.OfferingID, "selection still visible")

	st = m.SetFilter(offs, st, 2)
	require.Equal(t, domain.CourseTypeID(2), st.FilterType)
	require.Zero(t, st.OfferingID, "hidden selection is cleared")

	st = m.SetFilter(offs, st, 0)
	require.Zero(t, st.FilterType)
}

func TestGrouped(t *testing.T) {
	offs := sampleOfferings()
	regs := []domain.Registration{
		{ID: 10, StudentName: "A", OfferingID: 3},
		{ID: 11, StudentName: "B", OfferingID: 1},
		{ID: 12, StudentName: "C", OfferingID: 3},
		{ID: 13, StudentName: "D", OfferingID: 99},
	}

	groups := Grouped(offs, regs)
	require.Len(t, groups, 2)
	require.Equal(t, domain.OfferingID(1), groups[0].Offering.ID, "groups follow offering order")
	require.Equal(t, domain.OfferingID(3), groups[1].Offering.ID)
	require.Equal(t, []domain.Registration{regs[0], regs[2]}, groups[1].Students)
	require.Equal(t, 1, Orphaned(offs, regs))
}

func TestGrouped_Empty(t *testing.T) {
	require.Empty(t, Grouped(sampleOfferings(), nil))
	require.Zero(t, Orphaned(sampleOfferings(), nil))
}

func TestRegistrationManager_Delete(t *testing.T) {
	m := RegistrationManager{}
	regs := []domain.Registration{{ID: 10, OfferingID: 1}, {ID: 11, OfferingID: 1}}

	st := m.RequestDelete(regs, RegistrationState{Err: "old"}, 10)
	next, st, removed := m.ConfirmDelete(regs, st)
	require.True(t, removed)
	require.Equal(t, []domain.Registration{{ID: 11, OfferingID: 1}}, next)
	require.Empty(t, st.Err)

	st = m.RequestDelete(next, st, 11)
	st = m.CancelDelete(st)
	same, _, removed := m.ConfirmDelete(next, st)
	require.False(t, removed)
	require.Equal(t, next, same)
}

func TestScenario_RegistrationsGroupTogether(t *testing.T) {
	m := RegistrationManager{}
	offs := []domain.Offering{{ID: 1, CourseID: 2, CourseTypeID: 1}}
	ids := &counter{}

	regs, _, err := m.Create(nil, RegistrationState{StudentName: "Asha Rao", StudentEmail: "asha@example.com", OfferingID: 1}, ids, registeredOn)
	require.NoError(t, err)

	groups := Grouped(offs, regs)
	require.Len(t, groups, 1)
	require.Len(t, groups[0].Students, 1)

	regs, _, err = m.Create(regs, RegistrationState{StudentName: "Ravi Kumar", StudentEmail: "ravi@example.com", OfferingID: 1}, ids, registeredOn)
	require.NoError(t, err)

	groups = Grouped(offs, regs)
	require.Len(t, groups, 1)
	require.Len(t, groups[0].Students, 2)
	require.Equal(t, "Asha Rao", groups[0].Students[0].StudentName)
	require.Equal(t, "Ravi Kumar", groups[0].Students[1].StudentName)
}
