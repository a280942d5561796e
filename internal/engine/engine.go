// Package engine holds the in-memory task list and its persistence
// policy: every mutation is followed by a synchronous write-through of
// the full serialized list.
package engine

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"todotui/internal/model"
	"todotui/internal/storage"
)

// EditSession is the transient buffer for an in-progress edit. At most
// one session is active at a time; a zero TaskID means no session.
type EditSession struct {
	TaskID int64
	Text   string
}

func (s EditSession) Active() bool {
	return s.TaskID != 0
}

// List is the ordered task collection. Operations are total: missing
// ids and empty input are policy no-ops, never errors. Persistence
// failures are logged and otherwise swallowed.
type List struct {
	tasks     []model.Task
	edit      EditSession
	store     storage.Store
	ctx       context.Context
	logger    *log.Logger
	hadStored bool
}

// New hydrates the list from the store. An absent entry yields an empty
// list; a malformed or non-array entry is removed from the store and
// the list starts empty.
func New(ctx context.Context, store storage.Store, logger *log.Logger) *List {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	l := &List{store: store, ctx: ctx, logger: logger}
	l.hydrate()
	return l
}

func (l *List) hydrate() {
	raw, err := l.store.Load(l.ctx, storage.KeyTasks)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			l.logger.Error("load task state", "err", err)
		}
		return
	}

	var tasks []model.Task
	if err := json.Unmarshal([]byte(raw), &tasks); err != nil || strings.TrimSpace(raw) == "null" {
		l.logger.Warn("discarding corrupt task state", "err", err)
		if removeErr := l.store.Remove(l.ctx, storage.KeyTasks); removeErr != nil {
			l.logger.Error("remove corrupt task state", "err", removeErr)
		}
		return
	}
	kept := make([]model.Task, 0, len(tasks))
	for _, task := range tasks {
		if err := task.Validate(); err != nil {
			l.logger.Warn("dropping invalid stored task", "err", err)
			continue
		}
		kept = append(kept, task)
	}
	l.tasks = kept
	l.hadStored = true
}

// persist writes the full list through to the store. The list is not
// written while it is empty and nothing was ever stored, so a fresh
// start leaves no entry behind; once anything has been stored, even an
// emptied list overwrites the previous blob.
func (l *List) persist() {
	if len(l.tasks) == 0 && !l.hadStored {
		return
	}
	payload, err := json.Marshal(l.tasks)
	if err != nil {
		l.logger.Error("serialize task state", "err", err)
		return
	}
	if err := l.store.Save(l.ctx, storage.KeyTasks, string(payload)); err != nil {
		l.logger.Error("save task state", "err", err)
		return
	}
	l.hadStored = true
}

// Tasks returns the live backing slice; callers must treat it as
// read-only and go through the operations for mutation.
func (l *List) Tasks() []model.Task {
	return l.tasks
}

func (l *List) Len() int {
	return len(l.tasks)
}

func (l *List) Editing() (EditSession, bool) {
	return l.edit, l.edit.Active()
}

func (l *List) indexOf(id int64) int {
	for i := range l.tasks {
		if l.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// nextID derives a fresh id from the live list, so after every task has
// been deleted the numbering restarts at 1.
func (l *List) nextID() int64 {
	var max int64
	for i := range l.tasks {
		if l.tasks[i].ID > max {
			max = l.tasks[i].ID
		}
	}
	return max + 1
}

// Add appends a new incomplete task. Input that trims to empty is
// silently ignored; the text is stored as given.
func (l *List) Add(text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	l.tasks = append(l.tasks, model.Task{ID: l.nextID(), Text: text})
	l.persist()
}

// ToggleComplete flips the completed flag. It is a no-op for a missing
// id and for a task that currently has an active edit session.
func (l *List) ToggleComplete(id int64) {
	if l.edit.TaskID == id {
		return
	}
	i := l.indexOf(id)
	if i < 0 {
		return
	}
	l.tasks[i].Completed = !l.tasks[i].Completed
	l.persist()
}

func (l *List) Delete(id int64) {
	i := l.indexOf(id)
	if i < 0 {
		return
	}
	l.tasks = append(l.tasks[:i], l.tasks[i+1:]...)
	l.persist()
}

// BeginEdit opens an edit session seeded with the task's current text.
// Any prior session is abandoned without warning.
func (l *List) BeginEdit(id int64) {
	i := l.indexOf(id)
	if i < 0 {
		return
	}
	l.edit = EditSession{TaskID: id, Text: l.tasks[i].Text}
}

// SetEditText replaces the session buffer. No-op without a session.
func (l *List) SetEditText(text string) {
	if !l.edit.Active() {
		return
	}
	l.edit.Text = text
}

func (l *List) CancelEdit() {
	l.edit = EditSession{}
}

// SaveEdit commits the session text to the task with the given id. If
// the buffer trims to empty the edit stays open, mirroring Add's guard.
// A task deleted mid-edit just clears the session.
func (l *List) SaveEdit(id int64) {
	if !l.edit.Active() || l.edit.TaskID != id {
		return
	}
	if strings.TrimSpace(l.edit.Text) == "" {
		return
	}
	i := l.indexOf(id)
	if i < 0 {
		l.edit = EditSession{}
		return
	}
	l.tasks[i].Text = l.edit.Text
	l.edit = EditSession{}
	l.persist()
}
