// Package session holds the locally cached identity of the signed-in user
// and its persistence across process restarts.
package session

import (
	"encoding/json"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session is the identity returned by a successful login or register call.
// Server fields the client does not model are kept in Extra so they survive
// a save/restore cycle verbatim.
type Session struct {
	Name  string
	Email string
	Token string
	Extra map[string]json.RawMessage
}

// Active reports whether the session carries a usable bearer credential.
// Its presence is the sole gate for authenticated operations.
func (s *Session) Active() bool {
	return s != nil && s.Token != ""
}

// ExpiresAt peeks at the exp claim of the bearer token without verifying the
// signature. Opaque (non-JWT) tokens simply report no expiry.
func (s *Session) ExpiresAt() (time.Time, bool) {
	if !s.Active() {
		return time.Time{}, false
	}

	parser := jwt.NewParser()
	token, _, err := parser.ParseUnverified(s.Token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}

	return exp.Time, true
}

func (s Session) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(s.Extra)+3)
	for k, v := range s.Extra {
		out[k] = v
	}
	out["name"] = s.Name
	out["email"] = s.Email
	out["token"] = s.Token

	return json.Marshal(out)
}

func (s *Session) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	for key, target := range map[string]*string{
		"name":  &s.Name,
		"email": &s.Email,
		"token": &s.Token,
	} {
		if raw, ok := fields[key]; ok {
			// a non-string value here means a malformed session payload
			if err := json.Unmarshal(raw, target); err != nil {
				return err
			}
			delete(fields, key)
		}
	}

	if len(fields) > 0 {
		s.Extra = fields
	} else {
		s.Extra = nil
	}

	return nil
}
