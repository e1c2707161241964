package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"techready-engine/internal/events"
	"techready-engine/internal/store"
)

func newSessionsHandler(t *testing.T) SessionsHandler {
	t.Helper()
	d, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })
	require.NoError(t, store.Migrate(d.Pool))
	return SessionsHandler{DB: d.Pool, Hub: events.NewHub()}
}

func createSession(t *testing.T, h SessionsHandler, body string) store.Session {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/sessions", strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.Create(rr, req)
	require.Equal(t, http.StatusCreated, rr.Code)

	var s store.Session
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &s))
	return s
}

func TestSessionsCreateAndList(t *testing.T) {
	h := newSessionsHandler(t)

	s := createSession(t, h, `{"kind":"behavioral","title":"Mock interview"}`)
	assert.Equal(t, "Mock interview", s.Title)

	rr := httptest.NewRecorder()
	h.List(rr, httptest.NewRequest(http.MethodGet, "/sessions", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var list []store.Session
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, s.ID, list[0].ID)
}

// An empty store lists as [], not null.
func TestSessionsListEmpty(t *testing.T) {
	h := newSessionsHandler(t)

	rr := httptest.NewRecorder()
	h.List(rr, httptest.NewRequest(http.MethodGet, "/sessions", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rr.Body.String()))
}

func TestSessionsGetByPath(t *testing.T) {
	h := newSessionsHandler(t)
	s := createSession(t, h, `{"kind":"technical","title":"drill"}`)

	rr := httptest.NewRecorder()
	h.GetByPath(rr, httptest.NewRequest(http.MethodGet, "/sessions/"+s.ID, nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var out struct {
		Session  store.Session   `json:"session"`
		Messages []store.Message `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	assert.Equal(t, s.ID, out.Session.ID)
	assert.NotNil(t, out.Messages)
	assert.Empty(t, out.Messages)
}

func TestSessionsGetNotFound(t *testing.T) {
	h := newSessionsHandler(t)

	rr := httptest.NewRecorder()
	h.GetByPath(rr, httptest.NewRequest(http.MethodGet, "/sessions/missing", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestSessionsAppendMessage(t *testing.T) {
	h := newSessionsHandler(t)
	s := createSession(t, h, `{}`)

	req := httptest.NewRequest(http.MethodPost, "/sessions/"+s.ID+"/messages",
		strings.NewReader(`{"role":"user","content":"Tell me about yourself."}`))
	rr := httptest.NewRecorder()
	h.AppendByPath(rr, req)
	require.Equal(t, http.StatusCreated, rr.Code)

	var m store.Message
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &m))
	assert.Equal(t, 1, m.Seq)
	assert.Equal(t, s.ID, m.SessionID)
}

func TestSessionsAppendRequiresContent(t *testing.T) {
	h := newSessionsHandler(t)
	s := createSession(t, h, `{}`)

	req := httptest.NewRequest(http.MethodPost, "/sessions/"+s.ID+"/messages",
		strings.NewReader(`{"role":"user","content":"   "}`))
	rr := httptest.NewRecorder()
	h.AppendByPath(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSessionsDeleteByPath(t *testing.T) {
	h := newSessionsHandler(t)
	s := createSession(t, h, `{}`)

	rr := httptest.NewRecorder()
	h.DeleteByPath(rr, httptest.NewRequest(http.MethodDelete, "/sessions/"+s.ID, nil))
	require.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	h.DeleteByPath(rr, httptest.NewRequest(http.MethodDelete, "/sessions/"+s.ID, nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestSessionIDFromPath(t *testing.T) {
	assert.Equal(t, "abc123", sessionIDFromPath("/sessions/abc123"))
	assert.Equal(t, "abc123", sessionIDFromPath("/sessions/abc123/messages"))
	assert.Equal(t, "", sessionIDFromPath("/sessions/"))
	assert.Equal(t, "", sessionIDFromPath("/sessions/a/b"))
}
