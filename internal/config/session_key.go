package config

import "fmt"

type SessionKeyStruct struct{}

func NewSessionKeyStruct() *SessionKeyStruct {
	return &SessionKeyStruct{}
}

// RevokedTokenKey returns the Redis key that marks a JWT (by JTI) as revoked.
func (r *SessionKeyStruct) RevokedTokenKey(jti string) string {
	return fmt.Sprintf("revoked:%s", jti)
}

var SessionKey = NewSessionKeyStruct()
