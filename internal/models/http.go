// Package models defines the records kept in memory and the request and
// response data structures exchanged with HTTP clients.
package models

import (
	"net/url"
	"time"
)

// Credentials is the body of registration and login requests.
type Credentials struct {
	// Email identifies the account.
	Email string `json:"email" validate:"required"`

	// Password is the plaintext credential. It is hashed before storage.
	Password string `json:"password" validate:"required"`
}

// FromForm fills c from urlencoded form values.
func (c *Credentials) FromForm(v url.Values) {
	c.Email = v.Get("email")
	c.Password = v.Get("password")
}

// CreateURLRequest is the body of a short URL creation request.
type CreateURLRequest struct {
	// LongURL is the destination. A missing scheme defaults to http.
	LongURL string `json:"longURL" validate:"required"`
}

// FromForm fills r from urlencoded form values.
func (r *CreateURLRequest) FromForm(v url.Values) {
	r.LongURL = v.Get("longURL")
}

// EditURLRequest is the body of a destination update request. Edit is the
// field name the edit form posts; LongURL is accepted as an alias.
type EditURLRequest struct {
	Edit    string `json:"edit"`
	LongURL string `json:"longURL"`
}

// FromForm fills r from urlencoded form values.
func (r *EditURLRequest) FromForm(v url.Values) {
	r.Edit = v.Get("edit")
	r.LongURL = v.Get("longURL")
}

// Target returns the requested destination.
func (r *EditURLRequest) Target() string {
	if r.Edit != "" {
		return r.Edit
	}
	return r.LongURL
}

// URLResponse describes one short URL of the caller.
type URLResponse struct {
	ShortCode string `json:"short_code"`
	ShortURL  string `json:"short_url"`
	LongURL   string `json:"long_url"`
}

// VisitResponse is one entry of a visit log.
type VisitResponse struct {
	VisitorID string    `json:"visitor_id"`
	At        time.Time `json:"at"`
}

// URLDetailsResponse describes a short URL together with its visit statistics.
type URLDetailsResponse struct {
	URLResponse
	CreatedAt      time.Time       `json:"created_at"`
	TotalVisits    int             `json:"total_visits"`
	UniqueVisitors int             `json:"unique_visitors"`
	Visits         []VisitResponse `json:"visits"`
}

// StatsResponse holds the service wide counters.
type StatsResponse struct {
	URLs  int `json:"urls"`
	Users int `json:"users"`
}
