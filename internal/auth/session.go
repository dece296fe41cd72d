package auth

import (
	"encoding/gob"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/securecookie"
)

func init() {
	// Register types for gob encoding
	gob.Register(uuid.UUID{})
	gob.Register(SessionData{})
	gob.Register(Flash{})
}

// SessionData holds the signed-in user as stored in the cookie.
type SessionData struct {
	UserID    uuid.UUID
	Username  string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// FlashKind selects how a flash message is styled.
type FlashKind string

const (
	FlashSuccess FlashKind = "success"
	FlashError   FlashKind = "error"
	FlashInfo    FlashKind = "info"
)

// Flash is a one-shot notification shown on the next page render.
type Flash struct {
	Kind    FlashKind
	Message string
}

// SessionStore manages the session and flash cookies.
type SessionStore struct {
	cookie    *securecookie.SecureCookie
	name      string
	flashName string
	maxAge    int
	secure    bool
}

// NewSessionStore creates a new session store.
// The secret must be at least 64 bytes: first 32 for hash key, next 32 for block key.
func NewSessionStore(secret string, maxAge time.Duration, secure bool) *SessionStore {
	hashKey := []byte(secret)[:32]
	blockKey := []byte(secret)[32:64]

	return &SessionStore{
		cookie:    securecookie.New(hashKey, blockKey),
		name:      "wms_session",
		flashName: "wms_flash",
		maxAge:    int(maxAge.Seconds()),
		secure:    secure,
	}
}

// Get retrieves the session data from the request cookie.
func (s *SessionStore) Get(r *http.Request) (*SessionData, error) {
	cookie, err := r.Cookie(s.name)
	if err != nil {
		return nil, err
	}

	var data SessionData
	if err := s.cookie.Decode(s.name, cookie.Value, &data); err != nil {
		return nil, err
	}

	if time.Now().After(data.ExpiresAt) {
		return nil, http.ErrNoCookie
	}

	return &data, nil
}

// Set stores the session data in a cookie.
func (s *SessionStore) Set(w http.ResponseWriter, data *SessionData) error {
	data.CreatedAt = time.Now()
	data.ExpiresAt = time.Now().Add(time.Duration(s.maxAge) * time.Second)

	encoded, err := s.cookie.Encode(s.name, data)
	if err != nil {
		return err
	}

	http.SetCookie(w, s.newCookie(s.name, encoded, s.maxAge))
	return nil
}

// Clear removes the session cookie.
func (s *SessionStore) Clear(w http.ResponseWriter) {
	http.SetCookie(w, s.newCookie(s.name, "", -1))
}

// SetFlash queues a flash message for the next request.
func (s *SessionStore) SetFlash(w http.ResponseWriter, f Flash) error {
	encoded, err := s.cookie.Encode(s.flashName, f)
	if err != nil {
		return err
	}
	http.SetCookie(w, s.newCookie(s.flashName, encoded, 60))
	return nil
}

// PopFlash returns the queued flash message, if any, and clears it.
func (s *SessionStore) PopFlash(w http.ResponseWriter, r *http.Request) (*Flash, bool) {
	cookie, err := r.Cookie(s.flashName)
	if err != nil {
		return nil, false
	}
	http.SetCookie(w, s.newCookie(s.flashName, "", -1))

	var f Flash
	if err := s.cookie.Decode(s.flashName, cookie.Value, &f); err != nil {
		return nil, false
	}
	return &f, true
}

func (s *SessionStore) newCookie(name, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	}
}
