package httpapi

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"techready-engine/internal/events"
	"techready-engine/internal/store"
)

type SessionsHandler struct {
	DB  *sql.DB
	Hub *events.Hub
}

type createSessionReq struct {
	Kind  string `json:"kind"`
	Title string `json:"title"`
}

type appendMessageReq struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

func (h SessionsHandler) List(w http.ResponseWriter, r *http.Request) {
	sessions, err := store.ListSessions(r.Context(), h.DB, 500)
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	if sessions == nil {
		sessions = []store.Session{}
	}
	writeJSON(w, http.StatusOK, sessions)
}

func (h SessionsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createSessionReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	s, err := store.CreateSession(r.Context(), h.DB, req.Kind, req.Title)
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}

	reqID := RequestIDFrom(r.Context())
	h.Hub.Publish(events.MakeEvent(reqID, events.TypeSessionCreated, 1, map[string]any{"id": s.ID}))
	writeJSON(w, http.StatusCreated, s)
}

// GetByPath handles GET /sessions/{id}.
func (h SessionsHandler) GetByPath(w http.ResponseWriter, r *http.Request) {
	id := sessionIDFromPath(r.URL.Path)
	if id == "" {
		writeErr(w, http.StatusBadRequest, "invalid session id")
		return
	}

	s, msgs, err := store.GetSession(r.Context(), h.DB, id)
	if errors.Is(err, store.ErrSessionNotFound) {
		writeErr(w, http.StatusNotFound, "session not found")
		return
	}
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	if msgs == nil {
		msgs = []store.Message{}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"session":  s,
		"messages": msgs,
	})
}

// DeleteByPath handles DELETE /sessions/{id}.
func (h SessionsHandler) DeleteByPath(w http.ResponseWriter, r *http.Request) {
	id := sessionIDFromPath(r.URL.Path)
	if id == "" {
		writeErr(w, http.StatusBadRequest, "invalid session id")
		return
	}

	if err := store.DeleteSession(r.Context(), h.DB, id); err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			writeErr(w, http.StatusNotFound, "session not found")
			return
		}
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}

	reqID := RequestIDFrom(r.Context())
	h.Hub.Publish(events.MakeEvent(reqID, events.TypeSessionDeleted, 1, map[string]any{"id": id}))
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "id": id})
}

// AppendByPath handles POST /sessions/{id}/messages.
func (h SessionsHandler) AppendByPath(w http.ResponseWriter, r *http.Request) {
	id := sessionIDFromPath(r.URL.Path)
	if id == "" {
		writeErr(w, http.StatusBadRequest, "invalid session id")
		return
	}

	var req appendMessageReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		writeErr(w, http.StatusBadRequest, "content is required")
		return
	}

	m, err := store.AppendMessage(r.Context(), h.DB, id, req.Role, req.Content)
	if errors.Is(err, store.ErrSessionNotFound) {
		writeErr(w, http.StatusNotFound, "session not found")
		return
	}
	if err != nil {
		writeErr(w, http.StatusInternalServerError, err.Error())
		return
	}

	reqID := RequestIDFrom(r.Context())
	h.Hub.Publish(events.MakeEvent(reqID, events.TypeMessageAppended, 1, map[string]any{
		"id":  id,
		"seq": m.Seq,
	}))
	writeJSON(w, http.StatusCreated, m)
}

// sessionIDFromPath pulls {id} out of /sessions/{id}[/messages].
func sessionIDFromPath(path string) string {
	rest := strings.TrimPrefix(path, "/sessions/")
	rest = strings.TrimSuffix(rest, "/messages")
	if rest == "" || strings.Contains(rest, "/") {
		return ""
	}
	return rest
}
