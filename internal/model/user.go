package model

import (
	"github.com/golang-jwt/jwt/v5"
)

type User struct {
	ID       int
	Username string
	Password string
	Balance  int
}

type UserClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

type AuthData struct {
	UserID   int
	Username string
	Token    string
}
