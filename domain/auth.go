package domain

import (
	"github.com/golang-jwt/jwt"

	"github.com/bidhaus/goauction/base/ctx"
)

type JwtCustomClaims struct {
	Address string `json:"address"`
	jwt.StandardClaims
}

type AuthUsecase interface {
	// Nonce issues the one-time value the client embeds into the login
	// message before signing it.
	Nonce(c ctx.Ctx, address Address) (string, error)

	// SignToken verifies that signature was produced by address over
	// the login message and mints a bearer token for it.
	SignToken(c ctx.Ctx, address Address, signature string) (string, error)

	// ParseToken returns the address a valid token was minted for.
	ParseToken(c ctx.Ctx, token string) (string, error)
}
