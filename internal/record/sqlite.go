//go:build !tinygo

// Package record keeps a SQLite trace of a lockbox session: every accepted
// key and every controller transition, stamped with its tick.
package record

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"sync"

	// Need to use SQLite connections.
	_ "github.com/mattn/go-sqlite3"

	"github.com/rs/xid"
	"github.com/tebeka/atexit"

	"lockbox/firmware/keypad"
	"lockbox/firmware/lockctl"
	"lockbox/internal/buildinfo"
)

// Kinds of recorded events.
const (
	KindKey        = "key"
	KindTransition = "transition"
)

// Event is one row of the trace.
type Event struct {
	Session  string
	Tick     uint64
	Kind     string
	Key      string
	From     string
	To       string
	Failures int
}

func (e Event) String() string {
	if e.Kind == KindKey {
		return fmt.Sprintf("%10d  key         %s", e.Tick, e.Key)
	}
	s := fmt.Sprintf("%10d  transition  %s -> %s", e.Tick, e.From, e.To)
	if e.Failures > 0 {
		s += fmt.Sprintf(" (failures %d)", e.Failures)
	}
	return s
}

// Recorder buffers events and writes them in batches. It is safe for use
// from the firmware loop and the exit handler at the same time.
type Recorder struct {
	mu        sync.Mutex
	db        *sql.DB
	stmt      *sql.Stmt
	path      string
	session   string
	pending   []Event
	batchSize int
	closed    bool
	err       error
}

// New returns a recorder writing to path. An empty path selects
// lockbox_trace_<id>.sqlite3 in the working directory. The recorder flushes
// and closes itself when the program exits through atexit.
func New(path string) *Recorder {
	session := xid.New().String()
	if path == "" {
		path = "lockbox_trace_" + session + ".sqlite3"
	}
	r := &Recorder{
		path:      path,
		session:   session,
		batchSize: 1000,
	}
	atexit.Register(func() { _ = r.Close() })
	return r
}

// Path returns the database file name.
func (r *Recorder) Path() string { return r.path }

// Session returns the id stamped on every row of this run.
func (r *Recorder) Session() string { return r.session }

// Init creates the database. It refuses to overwrite an existing file.
func (r *Recorder) Init() error {
	if _, err := os.Stat(r.path); err == nil {
		return fmt.Errorf("record: file %s already exists", r.path)
	}

	db, err := sql.Open("sqlite3", r.path)
	if err != nil {
		return fmt.Errorf("record: open %s: %w", r.path, err)
	}
	for _, q := range schema {
		if _, err := db.Exec(q); err != nil {
			db.Close()
			return fmt.Errorf("record: create schema: %w", err)
		}
	}
	if _, err := db.Exec(
		`INSERT INTO session (id, build) VALUES (?, ?)`,
		r.session, buildinfo.Short(),
	); err != nil {
		db.Close()
		return fmt.Errorf("record: insert session: %w", err)
	}
	stmt, err := db.Prepare(`INSERT INTO event
		(session, tick, kind, key, from_state, to_state, failures)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		db.Close()
		return fmt.Errorf("record: prepare: %w", err)
	}

	r.mu.Lock()
	r.db = db
	r.stmt = stmt
	r.mu.Unlock()
	return nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS session
	(
		id    VARCHAR(20) PRIMARY KEY,
		build VARCHAR(200) NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS event
	(
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		session    VARCHAR(20) NOT NULL,
		tick       INTEGER NOT NULL,
		kind       VARCHAR(20) NOT NULL,
		key        VARCHAR(20) NOT NULL DEFAULT '',
		from_state VARCHAR(20) NOT NULL DEFAULT '',
		to_state   VARCHAR(20) NOT NULL DEFAULT '',
		failures   INTEGER NOT NULL DEFAULT 0
	);`,
	`CREATE INDEX IF NOT EXISTS event_tick_index ON event (tick);`,
	`CREATE INDEX IF NOT EXISTS event_kind_index ON event (kind);`,
}

// Key records an accepted key.
func (r *Recorder) Key(tick uint64, ev keypad.Event) {
	r.write(Event{Tick: tick, Kind: KindKey, Key: ev.String()})
}

// Transition records a controller state change.
func (r *Recorder) Transition(tick uint64, t lockctl.Transition) {
	r.write(Event{
		Tick:     tick,
		Kind:     KindTransition,
		From:     t.From.String(),
		To:       t.To.String(),
		Failures: t.Failures,
	})
}

func (r *Recorder) write(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	e.Session = r.session
	r.pending = append(r.pending, e)
	if len(r.pending) >= r.batchSize {
		r.flushLocked()
	}
}

// Flush writes the buffered events in one transaction.
func (r *Recorder) Flush() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.flushLocked()
	return r.err
}

func (r *Recorder) flushLocked() {
	if len(r.pending) == 0 || r.db == nil || r.err != nil {
		return
	}
	tx, err := r.db.Begin()
	if err != nil {
		r.err = fmt.Errorf("record: begin: %w", err)
		return
	}
	stmt := tx.Stmt(r.stmt)
	for _, e := range r.pending {
		if _, err := stmt.Exec(e.Session, int64(e.Tick), e.Kind, e.Key, e.From, e.To, e.Failures); err != nil {
			_ = tx.Rollback()
			r.err = fmt.Errorf("record: insert: %w", err)
			return
		}
	}
	if err := tx.Commit(); err != nil {
		r.err = fmt.Errorf("record: commit: %w", err)
		return
	}
	r.pending = r.pending[:0]
}

// Close flushes and closes the database. Further events are dropped.
func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return r.err
	}
	r.flushLocked()
	r.closed = true
	if r.db == nil {
		return r.err
	}
	err := errors.Join(r.err, r.stmt.Close(), r.db.Close())
	r.db = nil
	return err
}

// Read loads every event of the trace at path in recording order.
func Read(path string) ([]Event, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("record: %w", err)
	}
	db, err := sql.Open("sqlite3", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("record: open %s: %w", path, err)
	}
	defer db.Close()

	rows, err := db.Query(`SELECT session, tick, kind, key, from_state, to_state, failures
		FROM event ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("record: query %s: %w", path, err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var e Event
		var tick int64
		if err := rows.Scan(&e.Session, &tick, &e.Kind, &e.Key, &e.From, &e.To, &e.Failures); err != nil {
			return nil, fmt.Errorf("record: scan: %w", err)
		}
		e.Tick = uint64(tick)
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("record: %w", err)
	}
	return events, nil
}
