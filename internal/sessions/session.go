package sessions

import "time"

// DefaultTTL is how long an issued admin token stays valid.
const DefaultTTL = 24 * time.Hour

// Session is one issued bearer token. ExpiresAt is in Unix milliseconds, the
// representation the token file has always used.
type Session struct {
	Token     string `bson:"token" json:"token"`
	Email     string `bson:"email" json:"email"`
	ExpiresAt int64  `bson:"expiresAt" json:"expiresAt"`
}

// Expired reports whether the token is no longer usable at now.
func (s *Session) Expired(now time.Time) bool {
	return now.UnixMilli() >= s.ExpiresAt
}

// ExpiresTime returns ExpiresAt as a UTC time.
func (s *Session) ExpiresTime() time.Time {
	return time.UnixMilli(s.ExpiresAt).UTC()
}
