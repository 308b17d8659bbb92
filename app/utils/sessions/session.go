package sessions

import (
	"net/http"
	"time"

	"github.com/gorilla/sessions"
	"github.com/sirupsen/logrus"
)

const (
	sessionCookieName = "aurelia-session"

	adminIDSessionKey       = "adminID"
	distributorIDSessionKey = "distributorID"
)

type SessionStore interface {
	GetAdminID(r *http.Request) string
	SetAdminID(w http.ResponseWriter, r *http.Request, adminID string) error
	ClearAdminID(w http.ResponseWriter, r *http.Request) error

	GetDistributorID(r *http.Request) string
	SetDistributorID(w http.ResponseWriter, r *http.Request, distributorID string) error
	ClearDistributorID(w http.ResponseWriter, r *http.Request) error

	ClearSession(w http.ResponseWriter, r *http.Request) error
}

type CookieSessionStore struct {
	store *sessions.CookieStore
}

func NewCookieSessionStore(keyPairs ...[]byte) *CookieSessionStore {
	store := sessions.NewCookieStore(keyPairs...)

	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(30 * 24 * time.Hour / time.Second),
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
	}
	return &CookieSessionStore{store: store}
}

func (c *CookieSessionStore) getSession(r *http.Request) (*sessions.Session, error) {
	session, err := c.store.Get(r, sessionCookieName)
	if err != nil {
		logrus.Warnf("Error getting session: %v", err)
	}
	return session, nil
}

func (c *CookieSessionStore) GetAdminID(r *http.Request) string {
	return c.getString(r, adminIDSessionKey)
}

func (c *CookieSessionStore) SetAdminID(w http.ResponseWriter, r *http.Request, adminID string) error {
	return c.setString(w, r, adminIDSessionKey, adminID)
}

func (c *CookieSessionStore) ClearAdminID(w http.ResponseWriter, r *http.Request) error {
	return c.clearKey(w, r, adminIDSessionKey)
}

func (c *CookieSessionStore) GetDistributorID(r *http.Request) string {
	return c.getString(r, distributorIDSessionKey)
}

func (c *CookieSessionStore) SetDistributorID(w http.ResponseWriter, r *http.Request, distributorID string) error {
	return c.setString(w, r, distributorIDSessionKey, distributorID)
}

func (c *CookieSessionStore) ClearDistributorID(w http.ResponseWriter, r *http.Request) error {
	return c.clearKey(w, r, distributorIDSessionKey)
}

func (c *CookieSessionStore) ClearSession(w http.ResponseWriter, r *http.Request) error {
	session, err := c.getSession(r)
	if err != nil || session == nil {
		return err
	}
	session.Values = make(map[interface{}]interface{})
	session.Options.MaxAge = -1
	return session.Save(r, w)
}

func (c *CookieSessionStore) getString(r *http.Request, key string) string {
	session, err := c.getSession(r)
	if err != nil || session == nil {
		return ""
	}
	value, ok := session.Values[key].(string)
	if !ok {
		return ""
	}
	return value
}

func (c *CookieSessionStore) setString(w http.ResponseWriter, r *http.Request, key, value string) error {
	session, err := c.getSession(r)
	if err != nil || session == nil {
		return err
	}
	session.Values[key] = value
	return session.Save(r, w)
}

func (c *CookieSessionStore) clearKey(w http.ResponseWriter, r *http.Request, key string) error {
	session, err := c.getSession(r)
	if err != nil || session == nil {
		return err
	}
	delete(session.Values, key)
	return session.Save(r, w)
}
