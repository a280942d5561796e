package engine

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"todotui/internal/model"
	"todotui/internal/storage"
)

func setupStore(t *testing.T) *storage.SQLiteStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "engine-test.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := storage.MigrateUp(db); err != nil {
		t.Fatalf("migrate up: %v", err)
	}
	store, err := storage.NewSQLiteStore(db)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return store
}

func setupList(t *testing.T) (*List, *storage.SQLiteStore) {
	t.Helper()
	store := setupStore(t)
	return New(context.Background(), store, nil), store
}

func TestAddAppendsWithFreshID(t *testing.T) {
	l, _ := setupList(t)

	l.Add("buy milk")
	l.Add("walk dog")

	tasks := l.Tasks()
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	if tasks[0].ID != 1 || tasks[0].Text != "buy milk" || tasks[0].Completed {
		t.Fatalf("unexpected first task: %+v", tasks[0])
	}
	if tasks[1].ID != 2 || tasks[1].Text != "walk dog" {
		t.Fatalf("unexpected second task: %+v", tasks[1])
	}
}

func TestAddEmptyTextIsNoOp(t *testing.T) {
	l, store := setupList(t)

	l.Add("")
	l.Add("   ")
	if l.Len() != 0 {
		t.Fatalf("expected empty list, got %d tasks", l.Len())
	}
	if _, err := store.Load(context.Background(), storage.KeyTasks); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected no stored entry after no-op adds, got: %v", err)
	}
}

func TestAddIDSkipsAfterDeletion(t *testing.T) {
	l, _ := setupList(t)

	l.Add("one")
	l.Add("two")
	l.Delete(1)
	l.Add("three")

	tasks := l.Tasks()
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	if tasks[1].ID != 3 {
		t.Fatalf("expected new id 3 (max+1 over live list), got %d", tasks[1].ID)
	}
}

func TestAddIDRestartsAfterTotalDeletion(t *testing.T) {
	l, _ := setupList(t)

	l.Add("one")
	l.Add("two")
	l.Delete(1)
	l.Delete(2)
	l.Add("fresh start")

	tasks := l.Tasks()
	if len(tasks) != 1 || tasks[0].ID != 1 {
		t.Fatalf("expected renumbering to restart at 1, got %+v", tasks)
	}
}

func TestToggleCompleteIsInvolution(t *testing.T) {
	l, _ := setupList(t)
	l.Add("task")

	l.ToggleComplete(1)
	if !l.Tasks()[0].Completed {
		t.Fatal("expected task completed after first toggle")
	}
	l.ToggleComplete(1)
	if l.Tasks()[0].Completed {
		t.Fatal("expected task incomplete after second toggle")
	}
}

func TestToggleCompleteMissingIDIsNoOp(t *testing.T) {
	l, _ := setupList(t)
	l.Add("task")

	l.ToggleComplete(99)
	if l.Tasks()[0].Completed {
		t.Fatal("toggle on missing id mutated an existing task")
	}
}

func TestToggleCompleteBlockedWhileEditing(t *testing.T) {
	l, _ := setupList(t)
	l.Add("task")

	l.BeginEdit(1)
	l.ToggleComplete(1)
	if l.Tasks()[0].Completed {
		t.Fatal("toggle should be a no-op while the task is being edited")
	}

	l.CancelEdit()
	l.ToggleComplete(1)
	if !l.Tasks()[0].Completed {
		t.Fatal("toggle should work again after the edit session ends")
	}
}

func TestDeleteRemovesExactlyOneTask(t *testing.T) {
	l, _ := setupList(t)
	l.Add("one")
	l.Add("two")
	l.Add("three")

	l.Delete(2)
	tasks := l.Tasks()
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	if tasks[0].ID != 1 || tasks[1].ID != 3 {
		t.Fatalf("wrong tasks survived deletion: %+v", tasks)
	}

	l.Delete(42)
	if l.Len() != 2 {
		t.Fatal("delete on missing id should be a no-op")
	}
}

func TestBeginEditThenSaveReplacesOnlyText(t *testing.T) {
	l, _ := setupList(t)
	l.Add("draft")
	l.ToggleComplete(1)

	l.BeginEdit(1)
	session, active := l.Editing()
	if !active || session.TaskID != 1 || session.Text != "draft" {
		t.Fatalf("unexpected edit session: %+v active=%v", session, active)
	}

	l.SetEditText("final")
	l.SaveEdit(1)

	if _, active := l.Editing(); active {
		t.Fatal("expected session cleared after save")
	}
	got := l.Tasks()[0]
	if got.Text != "final" || got.ID != 1 || !got.Completed {
		t.Fatalf("save must replace text and preserve id and completed: %+v", got)
	}
}

func TestSaveEditEmptyTextKeepsSessionOpen(t *testing.T) {
	l, _ := setupList(t)
	l.Add("keep me")

	l.BeginEdit(1)
	l.SetEditText("   ")
	l.SaveEdit(1)

	if _, active := l.Editing(); !active {
		t.Fatal("expected session to stay open after empty save")
	}
	if l.Tasks()[0].Text != "keep me" {
		t.Fatalf("task text changed by empty save: %q", l.Tasks()[0].Text)
	}
}

type countingStore struct {
	storage.Store
	saves int
}

func (c *countingStore) Save(ctx context.Context, key, value string) error {
	c.saves++
	return c.Store.Save(ctx, key, value)
}

func TestSaveEditDeletedTaskClearsSessionWithoutPersist(t *testing.T) {
	cs := &countingStore{Store: setupStore(t)}
	l := New(context.Background(), cs, nil)
	l.Add("one")
	l.Add("two")

	l.BeginEdit(2)
	l.SetEditText("changed")
	l.Delete(2)

	saves := cs.saves
	l.SaveEdit(2)

	if _, active := l.Editing(); active {
		t.Fatal("expected session cleared after saving a deleted task")
	}
	if cs.saves != saves {
		t.Fatalf("save on a deleted task must not rewrite storage, saves %d -> %d", saves, cs.saves)
	}
	if l.Len() != 1 || l.Tasks()[0].Text != "one" {
		t.Fatalf("unexpected list: %+v", l.Tasks())
	}
}

func TestCancelEditDiscardsBuffer(t *testing.T) {
	l, _ := setupList(t)
	l.Add("original")

	l.BeginEdit(1)
	l.SetEditText("scratch work")
	l.CancelEdit()

	if _, active := l.Editing(); active {
		t.Fatal("expected no session after cancel")
	}
	if l.Tasks()[0].Text != "original" {
		t.Fatalf("cancel must not mutate the task, got %q", l.Tasks()[0].Text)
	}
}

func TestBeginEditOverwritesPriorSession(t *testing.T) {
	l, _ := setupList(t)
	l.Add("first")
	l.Add("second")

	l.BeginEdit(1)
	l.SetEditText("unsaved change")
	l.BeginEdit(2)

	session, _ := l.Editing()
	if session.TaskID != 2 || session.Text != "second" {
		t.Fatalf("expected session switched to task 2, got %+v", session)
	}
	if l.Tasks()[0].Text != "first" {
		t.Fatal("abandoned edit must not touch the first task")
	}
}

func TestHydrationRoundTrip(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	l := New(ctx, store, nil)
	l.Add("buy milk")
	l.Add("walk dog")
	l.ToggleComplete(2)

	reloaded := New(ctx, store, nil)
	want := []model.Task{
		{ID: 1, Text: "buy milk", Completed: false},
		{ID: 2, Text: "walk dog", Completed: true},
	}
	got := reloaded.Tasks()
	if len(got) != len(want) {
		t.Fatalf("expected %d tasks after reload, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("task %d mismatch: got %+v want %+v", i, got[i], want[i])
		}
	}
}

func TestHydrationCorruptValueResetsAndRemovesKey(t *testing.T) {
	for _, corrupt := range []string{`{not json`, `{"a":1}`, `null`, `"plain string"`} {
		store := setupStore(t)
		ctx := context.Background()
		if err := store.Save(ctx, storage.KeyTasks, corrupt); err != nil {
			t.Fatalf("seed corrupt value: %v", err)
		}

		l := New(ctx, store, nil)
		if l.Len() != 0 {
			t.Fatalf("corrupt value %q: expected empty list, got %d tasks", corrupt, l.Len())
		}
		if _, err := store.Load(ctx, storage.KeyTasks); !errors.Is(err, storage.ErrNotFound) {
			t.Fatalf("corrupt value %q: expected key removed, got: %v", corrupt, err)
		}
	}
}

func TestHydrationDropsInvalidRecords(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()
	seed := `[{"id":1,"text":"good","completed":false},{"id":0,"text":"bad id","completed":false},{"id":2,"text":"   ","completed":true}]`
	if err := store.Save(ctx, storage.KeyTasks, seed); err != nil {
		t.Fatalf("seed stored tasks: %v", err)
	}

	l := New(ctx, store, nil)
	tasks := l.Tasks()
	if len(tasks) != 1 || tasks[0].ID != 1 || tasks[0].Text != "good" {
		t.Fatalf("expected only the valid record to survive, got %+v", tasks)
	}
}

func TestDeleteLastTaskOverwritesStoredBlob(t *testing.T) {
	l, store := setupList(t)
	ctx := context.Background()

	l.Add("buy milk")
	raw, err := store.Load(ctx, storage.KeyTasks)
	if err != nil {
		t.Fatalf("load after add: %v", err)
	}
	if raw != `[{"id":1,"text":"buy milk","completed":false}]` {
		t.Fatalf("unexpected stored blob: %q", raw)
	}

	l.ToggleComplete(1)
	l.Delete(1)

	raw, err = store.Load(ctx, storage.KeyTasks)
	if err != nil {
		t.Fatalf("load after delete: %v", err)
	}
	if raw != `[]` {
		t.Fatalf("expected empty array overwrite, got %q", raw)
	}
}

func TestScenarioAddToggleDelete(t *testing.T) {
	l, _ := setupList(t)

	l.Add("buy milk")
	tasks := l.Tasks()
	if len(tasks) != 1 || tasks[0].ID != 1 || tasks[0].Text != "buy milk" || tasks[0].Completed {
		t.Fatalf("unexpected list after add: %+v", tasks)
	}

	l.ToggleComplete(1)
	if !l.Tasks()[0].Completed {
		t.Fatal("expected completed after toggle")
	}

	l.Delete(1)
	if l.Len() != 0 {
		t.Fatalf("expected empty list after delete, got %d", l.Len())
	}
}
