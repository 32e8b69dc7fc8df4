package storage

import (
	"path/filepath"
	"testing"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.MigrateUp(); err != nil {
		t.Fatalf("MigrateUp failed: %v", err)
	}
	return db
}

func TestMigrations(t *testing.T) {
	db := openTestDB(t)

	version, err := db.CurrentVersion()
	if err != nil {
		t.Fatalf("CurrentVersion failed: %v", err)
	}
	if version != 1 {
		t.Errorf("Schema version = %d, want 1", version)
	}

	// Migrations are idempotent
	if err := db.MigrateUp(); err != nil {
		t.Errorf("Second MigrateUp failed: %v", err)
	}
}

func TestSessionLifecycle(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionRepository(db)

	selected := []string{"T", "Ua", "Ub"}
	id, err := sessions.Create(selected)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	s, err := sessions.Get(id)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if s == nil {
		t.Fatal("Get returned nil for existing session")
	}
	if len(s.SelectedCases) != 3 || s.SelectedCases[0] != "T" {
		t.Errorf("SelectedCases = %v, want %v", s.SelectedCases, selected)
	}
	if s.EndedAt != nil {
		t.Error("New session should not have an end time")
	}
	if s.TotalAttempts != 0 || s.CorrectAttempts != 0 {
		t.Error("New session should have zero counters")
	}

	if err := sessions.End(id); err != nil {
		t.Fatalf("End failed: %v", err)
	}
	s, err = sessions.Get(id)
	if err != nil {
		t.Fatal(err)
	}
	if s.EndedAt == nil {
		t.Error("Ended session should have an end time")
	}
	if s.Duration() < 0 {
		t.Errorf("Duration = %v, should not be negative", s.Duration())
	}

	if err := sessions.End("no-such-session"); err == nil {
		t.Error("Ending a missing session should fail")
	}

	missing, err := sessions.Get("no-such-session")
	if err != nil {
		t.Fatal(err)
	}
	if missing != nil {
		t.Error("Get for missing session should return nil")
	}
}

func TestSessionList(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionRepository(db)

	for i := 0; i < 3; i++ {
		if _, err := sessions.Create([]string{"H"}); err != nil {
			t.Fatal(err)
		}
	}

	list, err := sessions.List(10)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 3 {
		t.Errorf("List returned %d sessions, want 3", len(list))
	}

	list, err = sessions.List(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 {
		t.Errorf("List with limit 2 returned %d sessions", len(list))
	}
}

func TestRecordAttempts(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionRepository(db)
	attempts := NewAttemptRepository(db)

	id, err := sessions.Create([]string{"T", "H"})
	if err != nil {
		t.Fatal(err)
	}

	if err := attempts.Record(id, "T", "T", true, 1200); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if err := attempts.Record(id, "H", "Z", false, 3000); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if err := attempts.Record(id, "T", "t", true, 800); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	s, err := sessions.Get(id)
	if err != nil {
		t.Fatal(err)
	}
	if s.TotalAttempts != 3 || s.CorrectAttempts != 2 {
		t.Errorf("Session counters = %d/%d, want 3/2", s.TotalAttempts, s.CorrectAttempts)
	}

	list, err := attempts.ListBySession(id)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 3 {
		t.Fatalf("ListBySession returned %d attempts, want 3", len(list))
	}
	if list[0].CaseName != "T" || !list[0].IsCorrect || list[0].ReactionMs != 1200 {
		t.Errorf("First attempt = %+v", list[0])
	}
	if list[1].IsCorrect {
		t.Error("Second attempt should be incorrect")
	}

	if err := attempts.Record("no-such-session", "T", "T", true, 100); err == nil {
		t.Error("Recording against a missing session should fail")
	}
}

func TestCaseStats(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionRepository(db)
	attempts := NewAttemptRepository(db)

	id, err := sessions.Create([]string{"T"})
	if err != nil {
		t.Fatal(err)
	}

	if err := attempts.Record(id, "T", "T", true, 2000); err != nil {
		t.Fatal(err)
	}
	if err := attempts.Record(id, "T", "Y", false, 5000); err != nil {
		t.Fatal(err)
	}
	if err := attempts.Record(id, "T", "T", true, 1000); err != nil {
		t.Fatal(err)
	}

	stats, err := attempts.StatsForCase("T")
	if err != nil {
		t.Fatalf("StatsForCase failed: %v", err)
	}
	if stats.TotalAttempts != 3 || stats.CorrectAttempts != 2 {
		t.Errorf("Counts = %d/%d, want 3/2", stats.TotalAttempts, stats.CorrectAttempts)
	}
	if stats.BestMs != 1000 {
		t.Errorf("BestMs = %d, want 1000", stats.BestMs)
	}
	if stats.AverageMs != 1500 {
		t.Errorf("AverageMs = %v, want 1500", stats.AverageMs)
	}
	if stats.Accuracy < 66 || stats.Accuracy > 67 {
		t.Errorf("Accuracy = %v, want about 66.7", stats.Accuracy)
	}
	if len(stats.Recent) != 3 {
		t.Errorf("Recent has %d attempts, want 3", len(stats.Recent))
	}
	if stats.Recent[0].ReactionMs != 1000 {
		t.Error("Recent should be newest first")
	}

	empty, err := attempts.StatsForCase("Z")
	if err != nil {
		t.Fatal(err)
	}
	if empty.TotalAttempts != 0 || empty.BestMs != 0 {
		t.Errorf("Stats for untrained case = %+v, want zeroes", empty)
	}

	history, err := attempts.ListByCase("T")
	if err != nil {
		t.Fatalf("ListByCase failed: %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("ListByCase returned %d attempts, want 3", len(history))
	}
	if history[0].ReactionMs != 2000 || history[2].ReactionMs != 1000 {
		t.Error("ListByCase should be oldest first")
	}
}

func TestSessionAndOverallStats(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionRepository(db)
	attempts := NewAttemptRepository(db)

	id, err := sessions.Create([]string{"T"})
	if err != nil {
		t.Fatal(err)
	}
	if err := attempts.Record(id, "T", "T", true, 1000); err != nil {
		t.Fatal(err)
	}
	if err := attempts.Record(id, "T", "F", false, 9000); err != nil {
		t.Fatal(err)
	}

	ss, err := attempts.StatsForSession(id)
	if err != nil {
		t.Fatalf("StatsForSession failed: %v", err)
	}
	if ss == nil {
		t.Fatal("StatsForSession returned nil for existing session")
	}
	if ss.TotalAttempts != 2 || ss.CorrectAttempts != 1 {
		t.Errorf("Session stats = %d/%d, want 2/1", ss.TotalAttempts, ss.CorrectAttempts)
	}
	if ss.AverageMs != 1000 {
		t.Errorf("AverageMs = %v, want 1000 (incorrect answers excluded)", ss.AverageMs)
	}

	missing, err := attempts.StatsForSession("no-such-session")
	if err != nil {
		t.Fatal(err)
	}
	if missing != nil {
		t.Error("StatsForSession for missing session should return nil")
	}

	overall, err := attempts.StatsOverall()
	if err != nil {
		t.Fatalf("StatsOverall failed: %v", err)
	}
	if overall.TotalSessions != 1 || overall.TotalAttempts != 2 || overall.CorrectAttempts != 1 {
		t.Errorf("Overall = %+v", overall)
	}
	if overall.BestMs != 1000 {
		t.Errorf("Overall BestMs = %d, want 1000", overall.BestMs)
	}
}

func TestDeleteCascades(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionRepository(db)
	attempts := NewAttemptRepository(db)

	id, err := sessions.Create([]string{"T"})
	if err != nil {
		t.Fatal(err)
	}
	if err := attempts.Record(id, "T", "T", true, 500); err != nil {
		t.Fatal(err)
	}

	if err := sessions.Delete(id); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	list, err := attempts.ListBySession(id)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 0 {
		t.Errorf("Attempts should be deleted with their session, got %d", len(list))
	}
}

func TestReset(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionRepository(db)
	attempts := NewAttemptRepository(db)

	id, err := sessions.Create([]string{"T"})
	if err != nil {
		t.Fatal(err)
	}
	if err := attempts.Record(id, "T", "T", true, 500); err != nil {
		t.Fatal(err)
	}

	if err := db.Reset(); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}

	overall, err := attempts.StatsOverall()
	if err != nil {
		t.Fatal(err)
	}
	if overall.TotalSessions != 0 || overall.TotalAttempts != 0 {
		t.Errorf("After reset stats = %+v, want zeroes", overall)
	}
}
