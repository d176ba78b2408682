package manager

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/zjrosen/regdesk/internal/domain"
)

func seededTypes() []domain.CourseType {
	return []domain.CourseType{
		{ID: 1, Name: "Individual"},
		{ID: 2, Name: "Group"},
		{ID: 3, Name: "Special"},
	}
}

func TestNameManager_Create(t *testing.T) {
	m := CourseTypeManager()
	ids := &counter{next: 100}

	items, st, err := m.Create(seededTypes(), NameState[domain.CourseTypeID]{Draft: "  Workshop  "}, ids)
	require.NoError(t, err)
	require.Len(t, items, 4)
	require.Equal(t, domain.CourseType{ID: 101, Name: "Workshop"}, items[3])
	require.Empty(t, st.Draft)
	require.Empty(t, st.Err)
}

func TestNameManager_CreateRejects(t *testing.T) {
	tests := []struct {
		name  string
		draft string
		rule  domain.Rule
		msg   string
	}{
		{"empty", "", domain.RuleRequired, "Course type name cannot be empty"},
		{"whitespace", "   \t", domain.RuleRequired, "Course type name cannot be empty"},
		{"duplicate", "Group", domain.RuleDuplicateName, "Course type already exists"},
		{"duplicate ignoring case and padding", "  gROUP ", domain.RuleDuplicateName, "Course type already exists"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := seededTypes()
			items, st, err := CourseTypeManager().Create(before, NameState[domain.CourseTypeID]{Draft: tt.draft}, &counter{})

			ve, ok := domain.AsValidation(err)
			require.True(t, ok)
			require.Equal(t, tt.rule, ve.Rule)
			require.Equal(t, tt.msg, st.Err)
			require.Equal(t, seededTypes(), items)
			require.Equal(t, tt.draft, st.Draft, "draft is kept so the user can fix it")
		})
	}
}

func TestNameManager_CourseMessages(t *testing.T) {
	courses := []domain.Course{{ID: 1, Name: "Hindi"}}
	m := CourseManager()

	_, st, err := m.Create(courses, NameState[domain.CourseID]{Draft: ""}, &counter{})
	require.Error(t, err)
	require.Equal(t, "Course name cannot be empty", st.Err)

	_, st, err = m.Create(courses, NameState[domain.CourseID]{Draft: "hindi"}, &counter{})
	require.Error(t, err)
	require.Equal(t, "Course already exists", st.Err)
}

func TestNameManager_SuccessClearsError(t *testing.T) {
	m := CourseTypeManager()
	ids := &counter{next: 10}

	_, st, err := m.Create(seededTypes(), NameState[domain.CourseTypeID]{Draft: "group"}, ids)
	require.Error(t, err)

	st.Draft = "Evening"
	items, st, err := m.Create(seededTypes(), st, ids)
	require.NoError(t, err)
	require.Empty(t, st.Err)
	require.Len(t, items, 4)
}

func TestNameManager_Edit(t *testing.T) {
	m := CourseTypeManager()
	items := seededTypes()

	st := m.StartEdit(items, NameState[domain.CourseTypeID]{Err: "stale"}, 2)
	require.Equal(t, PhaseEditing, st.Phase())
	require.Equal(t, "Group", st.EditName)
	require.Empty(t, st.Err, "starting an edit clears the error")

	st.EditName = " Cohort "
	next, st, err := m.CommitEdit(items, st)
	require.NoError(t, err)
	require.Equal(t, domain.CourseType{ID: 2, Name: "Cohort"}, next[1])
	require.Equal(t, PhaseIdle, st.Phase())
	require.Equal(t, "Group", items[1].Name, "input slice is not mutated")
}

func TestNameManager_EditKeepsOwnName(t *testing.T) {
	m := CourseTypeManager()
	items := seededTypes()

	st := m.StartEdit(items, NameState[domain.CourseTypeID]{}, 2)
	st.EditName = "GROUP"
	next, _, err := m.CommitEdit(items, st)
	require.NoError(t, err, "renaming to a case variant of its own name is allowed")
	require.Equal(t, "GROUP", next[1].Name)
}

func TestNameManager_EditRejectsDuplicate(t *testing.T) {
	m := CourseTypeManager()
	items := seededTypes()

	st := m.StartEdit(items, NameState[domain.CourseTypeID]{}, 2)
	st.EditName = "special"
	next, st, err := m.CommitEdit(items, st)
	require.Error(t, err)
	require.Equal(t, "Course type already exists", st.Err)
	require.Equal(t, items, next)
	require.Equal(t, PhaseEditing, st.Phase(), "a rejected edit stays open")
}

func TestNameManager_StartEditAbandonsPrevious(t *testing.T) {
	m := CourseTypeManager()
	items := seededTypes()

	st := m.StartEdit(items, NameState[domain.CourseTypeID]{}, 1)
	st.EditName = "half typed"
	st = m.StartEdit(items, st, 3)

	require.Equal(t, domain.CourseTypeID(3), st.EditingID)
	require.Equal(t, "Special", st.EditName)
}

func TestNameManager_StartEditUnknownID(t *testing.T) {
	m := CourseTypeManager()
	st := m.StartEdit(seededTypes(), NameState[domain.CourseTypeID]{Err: "kept"}, 42)
	require.Equal(t, PhaseIdle, st.Phase())
	require.Equal(t, "kept", st.Err)
}

func TestNameManager_CancelKeepsError(t *testing.T) {
	m := CourseTypeManager()
	items := seededTypes()

	st := m.StartEdit(items, NameState[domain.CourseTypeID]{}, 1)
	st.EditName = ""
	_, st, err := m.CommitEdit(items, st)
	require.Error(t, err)

	st = m.CancelEdit(st)
	require.Equal(t, PhaseIdle, st.Phase())
	require.Equal(t, "Course type name cannot be empty", st.Err)
}

func TestNameManager_Delete(t *testing.T) {
	m := CourseTypeManager()
	items := seededTypes()

	st := m.RequestDelete(items, NameState[domain.CourseTypeID]{}, 2)
	require.Equal(t, domain.CourseTypeID(2), st.PendingDelete)

	next, st, removed := m.ConfirmDelete(items, st)
	require.True(t, removed)
	require.Len(t, next, 2)
	require.Zero(t, st.PendingDelete)
	require.Len(t, items, 3)
}

func TestNameManager_DeleteCancelled(t *testing.T) {
	m := CourseTypeManager()
	items := seededTypes()

	st := m.RequestDelete(items, NameState[domain.CourseTypeID]{}, 2)
	st = m.CancelDelete(st)

	next, _, removed := m.ConfirmDelete(items, st)
	require.False(t, removed)
	require.Equal(t, items, next)
}

func TestNameManager_DeleteUnknownNotRequested(t *testing.T) {
	st := CourseTypeManager().RequestDelete(seededTypes(), NameState[domain.CourseTypeID]{}, 99)
	require.Zero(t, st.PendingDelete)
}

func TestNameManager_DeleteEditedRecordExitsEdit(t *testing.T) {
	m := CourseTypeManager()
	items := seededTypes()

	st := m.StartEdit(items, NameState[domain.CourseTypeID]{}, 3)
	st = m.RequestDelete(items, st, 3)
	_, st, removed := m.ConfirmDelete(items, st)

	require.True(t, removed)
	require.Equal(t, PhaseIdle, st.Phase())
}

func TestNameManager_CommitAfterRecordVanished(t *testing.T) {
	m := CourseTypeManager()
	items := seededTypes()

	st := m.StartEdit(items, NameState[domain.CourseTypeID]{}, 3)
	st.EditName = "Renamed"
	next, st, err := m.CommitEdit(items[:2], st)

	require.NoError(t, err)
	require.Len(t, next, 2)
	require.Equal(t, PhaseIdle, st.Phase())
}

func TestNameState_JSON(t *testing.T) {
	st := NameState[domain.CourseID]{Draft: "Urdu", EditingID: 3, EditName: "Tamil", Err: "Course already exists"}

	data, err := json.Marshal(st)
	require.NoError(t, err)
	require.JSONEq(t, `{"draft":"Urdu","editing_id":3,"edit_name":"Tamil","error":"Course already exists"}`, string(data))

	var back NameState[domain.CourseID]
	require.NoError(t, json.Unmarshal(data, &back))
	require.Equal(t, st, back)
}

func drawNames(rt *rapid.T) []domain.Course {
	names := rapid.SliceOfNDistinct(rapid.StringMatching(`[a-z]{1,8}`), 0, 8, strings.ToLower).Draw(rt, "names")
	courses := make([]domain.Course, len(names))
	for i, n := range names {
		courses[i] = domain.Course{ID: domain.CourseID(i + 1), Name: n}
	}
	return courses
}

func TestNameManager_DuplicateIgnoringCaseNeverAdds(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		courses := drawNames(rt)
		if len(courses) == 0 {
			rt.Skip("need an existing name")
		}
		pick := courses[rapid.IntRange(0, len(courses)-1).Draw(rt, "pick")]
		draft := strings.ToUpper(pick.Name)

		next, st, err := CourseManager().Create(courses, NameState[domain.CourseID]{Draft: draft}, &counter{next: 1000})

		require.Error(rt, err)
		require.Equal(rt, courses, next)
		require.Equal(rt, "Course already exists", st.Err)
	})
}

func TestNameManager_CreateAddsExactlyOne(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		courses := drawNames(rt)
		draft := rapid.StringMatching(`[A-Z][a-z]{8,12}`).Draw(rt, "draft")

		next, _, err := CourseManager().Create(courses, NameState[domain.CourseID]{Draft: draft}, &counter{next: 1000})

		require.NoError(rt, err)
		require.Len(rt, next, len(courses)+1)
		added := next[len(next)-1]
		for _, c := range courses {
			require.NotEqual(rt, c.ID, added.ID)
		}
	})
}

func TestNameManager_EditCancelIsIdentity(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		courses := drawNames(rt)
		if len(courses) == 0 {
			rt.Skip("need a record to edit")
		}
		m := CourseManager()
		id := courses[rapid.IntRange(0, len(courses)-1).Draw(rt, "pick")].ID

		st := m.StartEdit(courses, NameState[domain.CourseID]{}, id)
		st.EditName = rapid.String().Draw(rt, "typed")
		st = m.CancelEdit(st)

		require.Equal(rt, PhaseIdle, st.Phase())
		next, _, err := m.CommitEdit(courses, st)
		require.NoError(rt, err)
		require.Equal(rt, courses, next)
	})
}
