package storage

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"clubnotes/internal/notes"
)

func testSession(id, date string) notes.Session {
	return notes.Session{
		ID:   id,
		Date: date,
		Notes: []notes.Note{
			{Title: "Run", Pronunciation: "https://example.com/run.mp3", Definition: "to move fast", Examples: []string{"I run daily"}},
			{Title: "SOLO", Examples: []string{}},
		},
		Exercises: []notes.Exercise{
			{Type: notes.ExerciseMultipleChoice, Question: "Pick", Options: []string{"a", "b"}, CorrectIndex: 1},
		},
		Links: []notes.Link{
			{Title: "Docs", URL: "https://example.com"},
		},
	}
}

func TestNewSessionRepo(t *testing.T) {
	db := newTestDB(t)

	repo := NewSessionRepo(db)
	if repo == nil {
		t.Fatal("NewSessionRepo() returned nil")
	}
}

func TestSessionRepo_UpsertAndGet(t *testing.T) {
	db := newTestDB(t)
	repo := NewSessionRepo(db)
	ctx := context.Background()

	want := testSession("s1", "2024-03-05")
	if err := repo.Upsert(ctx, want); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	got, err := repo.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Get() = %#v, want %#v", got, want)
	}
}

func TestSessionRepo_UpsertReplacesNotes(t *testing.T) {
	db := newTestDB(t)
	repo := NewSessionRepo(db)
	ctx := context.Background()

	if err := repo.Upsert(ctx, testSession("s1", "2024-03-05")); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	updated := notes.Session{
		ID:    "s1",
		Date:  "2024-03-06",
		Notes: []notes.Note{{Title: "Walk", Definition: "on foot", Examples: []string{}}},
	}
	if err := repo.Upsert(ctx, updated); err != nil {
		t.Fatalf("Upsert() update error = %v", err)
	}

	got, err := repo.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Date != "2024-03-06" {
		t.Errorf("Get().Date = %q, want 2024-03-06", got.Date)
	}
	if len(got.Notes) != 1 || got.Notes[0].Title != "Walk" {
		t.Errorf("Get().Notes = %+v, want only Walk", got.Notes)
	}
	if got.Exercises == nil || len(got.Exercises) != 0 {
		t.Errorf("Get().Exercises = %#v, want empty slice", got.Exercises)
	}
	if got.Links == nil || len(got.Links) != 0 {
		t.Errorf("Get().Links = %#v, want empty slice", got.Links)
	}
}

func TestSessionRepo_Upsert_RequiresID(t *testing.T) {
	db := newTestDB(t)
	repo := NewSessionRepo(db)

	if err := repo.Upsert(context.Background(), notes.Session{Date: "2024-01-01"}); err == nil {
		t.Error("Upsert() without id should return error")
	}
}

func TestSessionRepo_Get_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewSessionRepo(db)

	_, err := repo.Get(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}
}

func TestSessionRepo_List(t *testing.T) {
	db := newTestDB(t)
	repo := NewSessionRepo(db)
	ctx := context.Background()

	for _, s := range []notes.Session{
		testSession("old", "2024-01-10"),
		testSession("new", "2024-03-01"),
		testSession("mid", "2024-02-15"),
	} {
		if err := repo.Upsert(ctx, s); err != nil {
			t.Fatalf("Upsert(%s) error = %v", s.ID, err)
		}
	}

	got, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	wantIDs := []string{"new", "mid", "old"}
	if len(got) != len(wantIDs) {
		t.Fatalf("List() returned %d sessions, want %d", len(got), len(wantIDs))
	}
	for i, id := range wantIDs {
		if got[i].ID != id {
			t.Errorf("List()[%d].ID = %q, want %q", i, got[i].ID, id)
		}
	}
}

func TestSessionRepo_List_Empty(t *testing.T) {
	db := newTestDB(t)
	repo := NewSessionRepo(db)

	got, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("List() = %#v, want empty slice", got)
	}
}

func TestSessionRepo_Delete(t *testing.T) {
	db := newTestDB(t)
	repo := NewSessionRepo(db)
	favRepo := NewFavoriteRepo(db)
	ctx := context.Background()

	session := testSession("s1", "2024-03-05")
	if err := repo.Upsert(ctx, session); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}
	if err := favRepo.Insert(ctx, &FavoriteRecord{
		UserID:      "u1",
		SessionID:   "s1",
		SessionDate: session.Date,
		Note:        session.Notes[0],
	}); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	if err := repo.Delete(ctx, "s1"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := repo.Get(ctx, "s1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() after Delete() error = %v, want ErrNotFound", err)
	}
	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(list) != 0 {
		t.Errorf("List() after Delete() returned %d sessions, want 0", len(list))
	}

	favs, err := favRepo.ListByUser(ctx, "u1")
	if err != nil {
		t.Fatalf("ListByUser() error = %v", err)
	}
	if len(favs) != 0 {
		t.Errorf("favorites of a trashed session should be hidden, got %d", len(favs))
	}

	if err := repo.Delete(ctx, "s1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Delete() error = %v, want ErrNotFound", err)
	}
}

func TestSessionRepo_Restore(t *testing.T) {
	db := newTestDB(t)
	repo := NewSessionRepo(db)
	favRepo := NewFavoriteRepo(db)
	ctx := context.Background()

	session := testSession("s1", "2024-03-05")
	if err := repo.Upsert(ctx, session); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}
	if err := favRepo.Insert(ctx, &FavoriteRecord{UserID: "u1", SessionID: "s1", SessionDate: session.Date, Note: session.Notes[0]}); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	if err := repo.Restore(ctx, "s1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Restore() of a live session error = %v, want ErrNotFound", err)
	}

	if err := repo.Delete(ctx, "s1"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := repo.Restore(ctx, "s1"); err != nil {
		t.Fatalf("Restore() error = %v", err)
	}

	got, err := repo.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("Get() after Restore() error = %v", err)
	}
	if !reflect.DeepEqual(got, session) {
		t.Errorf("Get() after Restore() = %+v, want %+v", got, session)
	}

	favs, err := favRepo.ListByUser(ctx, "u1")
	if err != nil {
		t.Fatalf("ListByUser() error = %v", err)
	}
	if len(favs) != 1 {
		t.Errorf("favorites should come back with the session, got %d", len(favs))
	}

	if err := repo.Restore(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Restore() of unknown session error = %v, want ErrNotFound", err)
	}
}

func TestSessionRepo_PurgeDeleted(t *testing.T) {
	db := newTestDB(t)
	repo := NewSessionRepo(db)
	favRepo := NewFavoriteRepo(db)
	completions := NewCompletionRepo(db)
	ctx := context.Background()

	for _, id := range []string{"trashed", "live"} {
		session := testSession(id, "2024-03-05")
		if err := repo.Upsert(ctx, session); err != nil {
			t.Fatalf("Upsert() error = %v", err)
		}
		if err := favRepo.Insert(ctx, &FavoriteRecord{UserID: "u1", SessionID: id, SessionDate: session.Date, Note: session.Notes[0]}); err != nil {
			t.Fatalf("Insert() error = %v", err)
		}
		if err := completions.Set(ctx, "u1", id, time.Now()); err != nil {
			t.Fatalf("Set() error = %v", err)
		}
	}
	if err := repo.Delete(ctx, "trashed"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	purged, err := repo.PurgeDeleted(ctx, time.Now().Add(-time.Hour))
	if err != nil {
		t.Fatalf("PurgeDeleted() error = %v", err)
	}
	if purged != 0 {
		t.Errorf("PurgeDeleted() before the deletion purged %d, want 0", purged)
	}

	purged, err = repo.PurgeDeleted(ctx, time.Now().Add(time.Second))
	if err != nil {
		t.Fatalf("PurgeDeleted() error = %v", err)
	}
	if purged != 1 {
		t.Errorf("PurgeDeleted() purged %d, want 1", purged)
	}

	if err := repo.Restore(ctx, "trashed"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Restore() after purge error = %v, want ErrNotFound", err)
	}
	if _, err := repo.Get(ctx, "live"); err != nil {
		t.Errorf("live session should survive the purge: %v", err)
	}

	var favCount, completionCount int
	if err := db.QueryRow("SELECT COUNT(*) FROM favorites WHERE session_id = 'trashed'").Scan(&favCount); err != nil {
		t.Fatalf("failed to count favorites: %v", err)
	}
	if err := db.QueryRow("SELECT COUNT(*) FROM completions WHERE session_id = 'trashed'").Scan(&completionCount); err != nil {
		t.Fatalf("failed to count completions: %v", err)
	}
	if favCount != 0 || completionCount != 0 {
		t.Errorf("purge should cascade, favorites = %d, completions = %d", favCount, completionCount)
	}
}
