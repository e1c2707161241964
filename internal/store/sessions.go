package store

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"errors"
	"strings"
	"time"
)

// Session is a saved interview-practice conversation. Messages are an
// append-only log; the session row carries denormalized metadata so list
// views don't touch the log.
type Session struct {
	ID           string `json:"id"`
	Kind         string `json:"kind"` // behavioral | technical
	Title        string `json:"title"`
	LastMessage  string `json:"lastMessage"`
	MessageCount int    `json:"messageCount"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`
}

type Message struct {
	SessionID string `json:"sessionId"`
	Seq       int    `json:"seq"`
	Role      string `json:"role"` // user | assistant
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
}

var ErrSessionNotFound = errors.New("session not found")

// lastMessageMax keeps the denormalized preview short.
const lastMessageMax = 200

func Migrate(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var v int
	if err := tx.QueryRow(`PRAGMA user_version;`).Scan(&v); err != nil {
		return err
	}

	if v >= 1 {
		return tx.Commit()
	}

	if _, err := tx.Exec(`
CREATE TABLE IF NOT EXISTS sessions (
  id TEXT PRIMARY KEY,
  kind TEXT NOT NULL DEFAULT '',
  title TEXT NOT NULL,
  last_message TEXT NOT NULL DEFAULT '',
  message_count INTEGER NOT NULL DEFAULT 0,
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL
);
`); err != nil {
		return err
	}

	if _, err := tx.Exec(`
CREATE TABLE IF NOT EXISTS messages (
  session_id TEXT NOT NULL,
  seq INTEGER NOT NULL,
  role TEXT NOT NULL,
  content TEXT NOT NULL,
  created_at TEXT NOT NULL,
  PRIMARY KEY (session_id, seq)
);
`); err != nil {
		return err
	}

	if _, err := tx.Exec(`
CREATE INDEX IF NOT EXISTS idx_sessions_updated_at
ON sessions(updated_at DESC);
`); err != nil {
		return err
	}

	if _, err := tx.Exec(`PRAGMA user_version = 1;`); err != nil {
		return err
	}

	return tx.Commit()
}

func newSessionID() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}

func CreateSession(ctx context.Context, db *sql.DB, kind, title string) (Session, error) {
	now := time.Now().UTC().Format(time.RFC3339)
	s := Session{
		ID:        newSessionID(),
		Kind:      strings.TrimSpace(kind),
		Title:     strings.TrimSpace(title),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if s.Title == "" {
		s.Title = "Untitled session"
	}

	_, err := db.ExecContext(ctx, `
INSERT INTO sessions(id, kind, title, last_message, message_count, created_at, updated_at)
VALUES(?,?,?,?,?,?,?);`,
		s.ID, s.Kind, s.Title, "", 0, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return Session{}, err
	}
	return s, nil
}

func ListSessions(ctx context.Context, db *sql.DB, limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 200
	}
	rows, err := db.QueryContext(ctx, `
SELECT id, kind, title, last_message, message_count, created_at, updated_at
FROM sessions
ORDER BY updated_at DESC
LIMIT ?;`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Session
	for rows.Next() {
		var s Session
		if err := rows.Scan(&s.ID, &s.Kind, &s.Title, &s.LastMessage, &s.MessageCount, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func GetSession(ctx context.Context, db *sql.DB, id string) (Session, []Message, error) {
	var s Session
	err := db.QueryRowContext(ctx, `
SELECT id, kind, title, last_message, message_count, created_at, updated_at
FROM sessions WHERE id = ?;`, id).
		Scan(&s.ID, &s.Kind, &s.Title, &s.LastMessage, &s.MessageCount, &s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Session{}, nil, ErrSessionNotFound
	}
	if err != nil {
		return Session{}, nil, err
	}

	rows, err := db.QueryContext(ctx, `
SELECT session_id, seq, role, content, created_at
FROM messages WHERE session_id = ?
ORDER BY seq ASC;`, id)
	if err != nil {
		return Session{}, nil, err
	}
	defer rows.Close()

	var msgs []Message
	for rows.Next() {
		var m Message
		if err := rows.Scan(&m.SessionID, &m.Seq, &m.Role, &m.Content, &m.CreatedAt); err != nil {
			return Session{}, nil, err
		}
		msgs = append(msgs, m)
	}
	return s, msgs, rows.Err()
}

// AppendMessage adds a message to the session log and refreshes the session's
// denormalized metadata in the same transaction.
func AppendMessage(ctx context.Context, db *sql.DB, sessionID, role, content string) (Message, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return Message{}, err
	}
	defer func() { _ = tx.Rollback() }()

	var exists int
	err = tx.QueryRowContext(ctx, `SELECT COUNT(1) FROM sessions WHERE id = ?;`, sessionID).Scan(&exists)
	if err != nil {
		return Message{}, err
	}
	if exists == 0 {
		return Message{}, ErrSessionNotFound
	}

	var seq int
	if err := tx.QueryRowContext(ctx, `
SELECT COALESCE(MAX(seq), 0) + 1 FROM messages WHERE session_id = ?;`, sessionID).Scan(&seq); err != nil {
		return Message{}, err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	m := Message{
		SessionID: sessionID,
		Seq:       seq,
		Role:      strings.TrimSpace(role),
		Content:   content,
		CreatedAt: now,
	}

	if _, err := tx.ExecContext(ctx, `
INSERT INTO messages(session_id, seq, role, content, created_at)
VALUES(?,?,?,?,?);`,
		m.SessionID, m.Seq, m.Role, m.Content, m.CreatedAt,
	); err != nil {
		return Message{}, err
	}

	preview := strings.TrimSpace(content)
	if len(preview) > lastMessageMax {
		preview = preview[:lastMessageMax]
	}

	if _, err := tx.ExecContext(ctx, `
UPDATE sessions
SET last_message = ?, message_count = ?, updated_at = ?
WHERE id = ?;`,
		preview, seq, now, sessionID,
	); err != nil {
		return Message{}, err
	}

	return m, tx.Commit()
}

func DeleteSession(ctx context.Context, db *sql.DB, id string) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?;`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrSessionNotFound
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM messages WHERE session_id = ?;`, id); err != nil {
		return err
	}

	return tx.Commit()
}

// PruneSessions removes sessions (and their logs) last touched before cutoff.
func PruneSessions(ctx context.Context, db *sql.DB, cutoff time.Time) (int64, error) {
	cut := cutoff.UTC().Format(time.RFC3339)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `
DELETE FROM messages
WHERE session_id IN (SELECT id FROM sessions WHERE updated_at < ?);`, cut); err != nil {
		return 0, err
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM sessions WHERE updated_at < ?;`, cut)
	if err != nil {
		return 0, err
	}
	n, _ := res.RowsAffected()

	return n, tx.Commit()
}
