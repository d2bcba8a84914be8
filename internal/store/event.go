package store

import (
	"database/sql"
	"time"

	"github.com/ayusman/holoblocks/internal/scene"
)

// Event is a journaled scene event.
type Event struct {
	ID        int64           `json:"id"`
	SessionID string          `json:"session_id"`
	Seq       int64           `json:"seq"`
	Kind      scene.EventKind `json:"kind"`
	BlockID   string          `json:"block_id,omitempty"`
	Position  scene.Vec3      `json:"position"`
	Color     scene.Color     `json:"color"`
	CreatedAt time.Time       `json:"created_at"`
}

// EventRepository appends and reads journaled events.
type EventRepository struct {
	db *sql.DB
}

// Events returns the event repository for this store.
func (s *Store) Events() *EventRepository {
	return &EventRepository{db: s.db}
}

// Append stores events for a session in one transaction, continuing the
// session's sequence numbering.
func (r *EventRepository) Append(sessionID string, events []scene.Event) error {
	if len(events) == 0 {
		return nil
	}

	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var next int64
	if err := tx.QueryRow(`SELECT COALESCE(MAX(seq), 0) FROM events WHERE session_id = ?`, sessionID).
		Scan(&next); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`INSERT INTO events (session_id, seq, kind, block_id, x, y, z, color, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	now := time.Now()
	for _, e := range events {
		next++
		if _, err := stmt.Exec(sessionID, next, string(e.Kind), e.BlockID,
			e.Position.X, e.Position.Y, e.Position.Z, e.Color.Hex(), now); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// ListBySession returns up to limit events for a session in sequence order.
// A limit of 0 or less returns every event.
func (r *EventRepository) ListBySession(sessionID string, limit int) ([]Event, error) {
	query := `SELECT id, session_id, seq, kind, block_id, x, y, z, color, created_at
		FROM events WHERE session_id = ? ORDER BY seq`
	args := []any{sessionID}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var e Event
		var kind, color string
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Seq, &kind, &e.BlockID,
			&e.Position.X, &e.Position.Y, &e.Position.Z, &color, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.Kind = scene.EventKind(kind)
		if c, err := scene.ParseColor(color); err == nil {
			e.Color = c
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// CountByKind returns how many events of kind a session has.
func (r *EventRepository) CountByKind(sessionID string, kind scene.EventKind) (int, error) {
	var n int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM events WHERE session_id = ? AND kind = ?`,
		sessionID, string(kind)).Scan(&n)
	return n, err
}
