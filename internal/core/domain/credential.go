package domain

import "errors"

var ErrUserNotFound = errors.New("no user found")
var ErrUserExists = errors.New("user already exists")
var ErrPasswordMismatch = errors.New("password mismatch")
var ErrUnauthenticated = errors.New("unauthenticated")

// Credential models a stored login identity. The password is only ever held
// as a bcrypt hash and never serialized into responses.
type Credential struct {
	ID           string `json:"id" bson:"_id"`
	UserName     string `json:"user_name" bson:"userName"`
	PasswordHash string `json:"-" bson:"password"`
	Email        string `json:"email,omitempty" bson:"email"`
}
