package sqlite

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/praxishq/praxis-cli/internal/errors"
	"github.com/praxishq/praxis-cli/internal/models"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()

	store := NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func testGroup(t *testing.T, store *Store, ownerID string) models.Group {
	t.Helper()

	group := models.Group{
		ID:        uuid.NewString(),
		Name:      "Evening Circle",
		JoinCode:  "ABC234",
		OwnerID:   ownerID,
		CreatedAt: time.Now().UTC(),
	}
	if err := store.AddGroup(group); err != nil {
		t.Fatalf("failed to add group: %v", err)
	}
	return group
}

func testPractice(t *testing.T, store *Store, groupID, title string, createdAt time.Time) models.Practice {
	t.Helper()

	p := models.Practice{
		ID:        uuid.NewString(),
		GroupID:   groupID,
		Title:     title,
		StartDate: "2026-01-01",
		EndDate:   "2026-12-31",
		CreatedAt: createdAt,
	}
	if err := store.AddPractice(p); err != nil {
		t.Fatalf("failed to add practice %q: %v", title, err)
	}
	return p
}

func TestGroupCRUD(t *testing.T) {
	store := setupTestStore(t)
	ownerID := uuid.NewString()

	group := testGroup(t, store, ownerID)

	t.Run("get by id", func(t *testing.T) {
		got, err := store.GetGroup(group.ID)
		if err != nil {
			t.Fatalf("GetGroup() returned unexpected error: %v", err)
		}
		if got.Name != group.Name || got.OwnerID != ownerID {
			t.Errorf("GetGroup() = %+v, want name %q owner %q", got, group.Name, ownerID)
		}
	})

	t.Run("get by join code", func(t *testing.T) {
		got, err := store.GetGroupByJoinCode("ABC234")
		if err != nil {
			t.Fatalf("GetGroupByJoinCode() returned unexpected error: %v", err)
		}
		if got.ID != group.ID {
			t.Errorf("GetGroupByJoinCode() = %s, want %s", got.ID, group.ID)
		}
	})

	t.Run("missing group is not found", func(t *testing.T) {
		_, err := store.GetGroup(uuid.NewString())
		if !errors.Is(err, apperrors.ErrNotFound) {
			t.Errorf("GetGroup() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("delete", func(t *testing.T) {
		if err := store.DeleteGroup(group.ID); err != nil {
			t.Fatalf("DeleteGroup() returned unexpected error: %v", err)
		}
		if err := store.DeleteGroup(group.ID); !errors.Is(err, apperrors.ErrNotFound) {
			t.Errorf("second DeleteGroup() error = %v, want ErrNotFound", err)
		}
	})
}

func TestMemberships(t *testing.T) {
	store := setupTestStore(t)
	ownerID := uuid.NewString()
	userID := uuid.NewString()
	group := testGroup(t, store, ownerID)

	m := models.Membership{GroupID: group.ID, UserID: userID, JoinedAt: time.Now().UTC()}
	if err := store.AddMembership(m); err != nil {
		t.Fatalf("AddMembership() returned unexpected error: %v", err)
	}

	t.Run("duplicate join is a no-op", func(t *testing.T) {
		if err := store.AddMembership(m); err != nil {
			t.Errorf("repeated AddMembership() returned unexpected error: %v", err)
		}
		members, err := store.GetMemberships(group.ID)
		if err != nil {
			t.Fatalf("GetMemberships() returned unexpected error: %v", err)
		}
		if len(members) != 1 {
			t.Errorf("GetMemberships() returned %d members, want 1", len(members))
		}
	})

	t.Run("is member", func(t *testing.T) {
		ok, err := store.IsMember(group.ID, userID)
		if err != nil {
			t.Fatalf("IsMember() returned unexpected error: %v", err)
		}
		if !ok {
			t.Error("IsMember() = false, want true")
		}

		ok, err = store.IsMember(group.ID, uuid.NewString())
		if err != nil {
			t.Fatalf("IsMember() returned unexpected error: %v", err)
		}
		if ok {
			t.Error("IsMember() = true for non-member, want false")
		}
	})

	t.Run("groups for user", func(t *testing.T) {
		groups, err := store.GetGroupsForUser(userID)
		if err != nil {
			t.Fatalf("GetGroupsForUser() returned unexpected error: %v", err)
		}
		if len(groups) != 1 || groups[0].ID != group.ID {
			t.Errorf("GetGroupsForUser() = %+v, want single group %s", groups, group.ID)
		}
	})
}

func TestPracticeReadOrder(t *testing.T) {
	store := setupTestStore(t)
	group := testGroup(t, store, uuid.NewString())

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	// Two ordered practices, two unordered ones created at different times.
	second := testPractice(t, store, group.ID, "second", base)
	first := testPractice(t, store, group.ID, "first", base)
	older := testPractice(t, store, group.ID, "older unordered", base.Add(-time.Hour))
	newer := testPractice(t, store, group.ID, "newer unordered", base.Add(time.Hour))

	if err := store.SetDisplayOrder(first.ID, 1); err != nil {
		t.Fatalf("SetDisplayOrder() returned unexpected error: %v", err)
	}
	if err := store.SetDisplayOrder(second.ID, 2); err != nil {
		t.Fatalf("SetDisplayOrder() returned unexpected error: %v", err)
	}

	got, err := store.GetPracticesForGroup(group.ID)
	if err != nil {
		t.Fatalf("GetPracticesForGroup() returned unexpected error: %v", err)
	}

	want := []string{first.ID, second.ID, newer.ID, older.ID}
	if len(got) != len(want) {
		t.Fatalf("GetPracticesForGroup() returned %d practices, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("position %d = %s, want %s", i, got[i].ID, id)
		}
	}
}

func TestMaxDisplayOrder(t *testing.T) {
	store := setupTestStore(t)
	group := testGroup(t, store, uuid.NewString())

	max, err := store.MaxDisplayOrder(group.ID)
	if err != nil {
		t.Fatalf("MaxDisplayOrder() returned unexpected error: %v", err)
	}
	if max != 0 {
		t.Errorf("MaxDisplayOrder() on empty group = %d, want 0", max)
	}

	p := testPractice(t, store, group.ID, "ordered", time.Now().UTC())
	if err := store.SetDisplayOrder(p.ID, 4); err != nil {
		t.Fatalf("SetDisplayOrder() returned unexpected error: %v", err)
	}

	max, err = store.MaxDisplayOrder(group.ID)
	if err != nil {
		t.Fatalf("MaxDisplayOrder() returned unexpected error: %v", err)
	}
	if max != 4 {
		t.Errorf("MaxDisplayOrder() = %d, want 4", max)
	}
}

func TestDeleteGroupCascades(t *testing.T) {
	store := setupTestStore(t)
	userID := uuid.NewString()
	group := testGroup(t, store, userID)
	practice := testPractice(t, store, group.ID, "cascaded", time.Now().UTC())

	if err := store.AddMembership(models.Membership{
		GroupID: group.ID, UserID: userID, JoinedAt: time.Now().UTC(),
	}); err != nil {
		t.Fatalf("AddMembership() returned unexpected error: %v", err)
	}

	if err := store.DeleteGroup(group.ID); err != nil {
		t.Fatalf("DeleteGroup() returned unexpected error: %v", err)
	}

	if _, err := store.GetPractice(practice.ID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("GetPractice() after group delete error = %v, want ErrNotFound", err)
	}
	members, err := store.GetMemberships(group.ID)
	if err != nil {
		t.Fatalf("GetMemberships() returned unexpected error: %v", err)
	}
	if len(members) != 0 {
		t.Errorf("memberships survived group delete: %+v", members)
	}
}

func TestOverrideUpsert(t *testing.T) {
	store := setupTestStore(t)
	group := testGroup(t, store, uuid.NewString())
	practice := testPractice(t, store, group.ID, "with override", time.Now().UTC())
	userID := uuid.NewString()

	now := time.Now().UTC()
	o := models.PracticeOverride{
		ID:         uuid.NewString(),
		PracticeID: practice.ID,
		UserID:     userID,
		StartDate:  "2026-02-01",
		EndDate:    "2026-02-10",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := store.UpsertOverride(o); err != nil {
		t.Fatalf("UpsertOverride() returned unexpected error: %v", err)
	}

	o.StartDate = "2026-03-01"
	o.EndDate = "2026-03-10"
	o.UpdatedAt = now.Add(time.Minute)
	if err := store.UpsertOverride(o); err != nil {
		t.Fatalf("second UpsertOverride() returned unexpected error: %v", err)
	}

	got, err := store.GetOverride(practice.ID, userID)
	if err != nil {
		t.Fatalf("GetOverride() returned unexpected error: %v", err)
	}
	if got.StartDate != "2026-03-01" || got.EndDate != "2026-03-10" {
		t.Errorf("GetOverride() = %s..%s, want 2026-03-01..2026-03-10", got.StartDate, got.EndDate)
	}

	if err := store.DeleteOverride(practice.ID, userID); err != nil {
		t.Fatalf("DeleteOverride() returned unexpected error: %v", err)
	}
	if _, err := store.GetOverride(practice.ID, userID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("GetOverride() after delete error = %v, want ErrNotFound", err)
	}
}

func TestProgressUpsert(t *testing.T) {
	store := setupTestStore(t)
	group := testGroup(t, store, uuid.NewString())
	practice := testPractice(t, store, group.ID, "tracked", time.Now().UTC())
	userID := uuid.NewString()

	now := time.Now().UTC()
	e := models.ProgressEntry{
		ID:         uuid.NewString(),
		PracticeID: practice.ID,
		UserID:     userID,
		Day:        "2026-03-05",
		Count:      1,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := store.UpsertProgress(e); err != nil {
		t.Fatalf("UpsertProgress() returned unexpected error: %v", err)
	}

	// Same user/practice/day updates the existing row instead of adding one.
	e.Count = 2
	e.Completed = true
	e.UpdatedAt = now.Add(time.Minute)
	if err := store.UpsertProgress(e); err != nil {
		t.Fatalf("second UpsertProgress() returned unexpected error: %v", err)
	}

	entries, err := store.GetProgressForDay(userID, "2026-03-05")
	if err != nil {
		t.Fatalf("GetProgressForDay() returned unexpected error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("GetProgressForDay() returned %d entries, want 1", len(entries))
	}
	if entries[0].Count != 2 || !entries[0].Completed {
		t.Errorf("entry = count %d completed %v, want count 2 completed true",
			entries[0].Count, entries[0].Completed)
	}
}

func TestReminderPrefsDefaults(t *testing.T) {
	store := setupTestStore(t)
	userID := uuid.NewString()

	prefs, err := store.GetReminderPrefs(userID)
	if err != nil {
		t.Fatalf("GetReminderPrefs() returned unexpected error: %v", err)
	}
	if prefs.FrequencyPerDay != 1 || len(prefs.Times) != 1 || prefs.Times[0] != "13:00" {
		t.Errorf("default prefs = %+v, want frequency 1 at 13:00", prefs)
	}

	prefs.FrequencyPerDay = 2
	prefs.Times = []string{"08:30", "20:00"}
	prefs.Enabled = true
	if err := store.SaveReminderPrefs(prefs); err != nil {
		t.Fatalf("SaveReminderPrefs() returned unexpected error: %v", err)
	}

	got, err := store.GetReminderPrefs(userID)
	if err != nil {
		t.Fatalf("GetReminderPrefs() returned unexpected error: %v", err)
	}
	if got.FrequencyPerDay != 2 || len(got.Times) != 2 || got.Times[1] != "20:00" {
		t.Errorf("saved prefs = %+v, want frequency 2 at 08:30/20:00", got)
	}
}

func TestGetActivePractices(t *testing.T) {
	store := setupTestStore(t)
	userID := uuid.NewString()
	group := testGroup(t, store, userID)

	if err := store.AddMembership(models.Membership{
		GroupID: group.ID, UserID: userID, JoinedAt: time.Now().UTC(),
	}); err != nil {
		t.Fatalf("AddMembership() returned unexpected error: %v", err)
	}

	now := time.Now().UTC()
	current := testPractice(t, store, group.ID, "current", now)

	expired := models.Practice{
		ID:        uuid.NewString(),
		GroupID:   group.ID,
		Title:     "expired",
		StartDate: "2025-01-01",
		EndDate:   "2025-01-31",
		CreatedAt: now,
	}
	if err := store.AddPractice(expired); err != nil {
		t.Fatalf("AddPractice() returned unexpected error: %v", err)
	}

	t.Run("expired practices are excluded", func(t *testing.T) {
		active, err := store.GetActivePractices(userID, "2026-06-15")
		if err != nil {
			t.Fatalf("GetActivePractices() returned unexpected error: %v", err)
		}
		if len(active) != 1 || active[0].ID != current.ID {
			t.Errorf("GetActivePractices() = %+v, want only %q", active, current.Title)
		}
	})

	t.Run("override range replaces the default", func(t *testing.T) {
		o := models.PracticeOverride{
			ID:         uuid.NewString(),
			PracticeID: current.ID,
			UserID:     userID,
			StartDate:  "2026-06-01",
			EndDate:    "2026-06-10",
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := store.UpsertOverride(o); err != nil {
			t.Fatalf("UpsertOverride() returned unexpected error: %v", err)
		}

		// The override ends before the query day, so nothing is active even
		// though the practice's own range still covers it.
		active, err := store.GetActivePractices(userID, "2026-06-15")
		if err != nil {
			t.Fatalf("GetActivePractices() returned unexpected error: %v", err)
		}
		if len(active) != 0 {
			t.Errorf("GetActivePractices() = %+v, want none after expired override", active)
		}
	})

	t.Run("non-member sees nothing", func(t *testing.T) {
		active, err := store.GetActivePractices(uuid.NewString(), "2026-06-15")
		if err != nil {
			t.Fatalf("GetActivePractices() returned unexpected error: %v", err)
		}
		if len(active) != 0 {
			t.Errorf("GetActivePractices() = %+v for non-member, want none", active)
		}
	})
}
