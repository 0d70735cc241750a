package domain

import "errors"

var ErrUserExists = errors.New("e-mail já cadastrado")
var ErrUserNotFound = errors.New("usuário não encontrado")
var ErrInvalidCredentials = errors.New("credenciais inválidas")
var ErrInvalidToken = errors.New("token inválido")

// User models a registered customer. IDs are assigned sequentially by the
// store, starting at 1. The password is kept exactly as provided at
// registration and is never serialized.
type User struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"-"`
}
