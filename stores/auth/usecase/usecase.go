package usecase

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"

	"github.com/bidhaus/goauction/base/ctx"
	"github.com/bidhaus/goauction/base/ethereum"
	"github.com/bidhaus/goauction/base/validator"
	"github.com/bidhaus/goauction/domain"
	"github.com/bidhaus/goauction/domain/keys"
	"github.com/bidhaus/goauction/service/redis"
)

const nonceTTL = 10 * time.Minute

type impl struct {
	jwtSecret          []byte
	signingMsgTemplate string
	nonces             redis.Service
}

func New(jwtSecret, signingMsgTemplate string, nonces redis.Service) domain.AuthUsecase {
	return &impl{
		jwtSecret:          []byte(jwtSecret),
		signingMsgTemplate: signingMsgTemplate,
		nonces:             nonces,
	}
}

func (im *impl) Nonce(c ctx.Ctx, address domain.Address) (string, error) {
	if !validator.IsValidAddress(address.ToLowerStr()) {
		return "", domain.ErrInvalidAddress
	}

	key := nonceKey(address)
	if val, err := im.nonces.Get(c, key); err == nil {
		return string(val), nil
	} else if err != redis.ErrNotFound {
		c.WithField("err", err).Error("nonces.Get failed")
		return "", err
	}

	nonce := uuid.New().String()
	if err := im.nonces.Set(c, key, []byte(nonce), nonceTTL); err != nil {
		c.WithField("err", err).Error("nonces.Set failed")
		return "", err
	}
	return nonce, nil
}

func (im *impl) SignToken(c ctx.Ctx, address domain.Address, signature string) (string, error) {
	if !validator.IsValidAddress(address.ToLowerStr()) {
		return "", domain.ErrInvalidAddress
	}

	nonce, err := im.nonces.Get(c, nonceKey(address))
	if err == redis.ErrNotFound {
		return "", domain.ErrInvalidSignature
	} else if err != nil {
		c.WithField("err", err).Error("nonces.Get failed")
		return "", err
	}

	msg := fmt.Sprintf(im.signingMsgTemplate, string(nonce))
	valid, err := ethereum.ValidateMsgSignature([]byte(msg), signature, address.ToLowerStr())
	if err != nil {
		c.WithField("err", err).Error("ethereum.ValidateMsgSignature failed")
		return "", domain.ErrInvalidSignature
	}
	if !valid {
		return "", domain.ErrInvalidSignature
	}

	// a nonce signs in at most once
	if _, err := im.nonces.Del(c, nonceKey(address)); err != nil {
		c.WithField("err", err).Error("nonces.Del failed")
	}

	claims := domain.JwtCustomClaims{
		Address: address.ToLowerStr(),
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(24 * time.Hour).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	if ss, err := token.SignedString(im.jwtSecret); err != nil {
		c.WithField("err", err).Error("token.SignedString failed")
		return "", err
	} else {
		return ss, nil
	}
}

func (im *impl) ParseToken(c ctx.Ctx, str string) (string, error) {
	token, err := jwt.ParseWithClaims(str, &domain.JwtCustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("Unexpected signing method: %v", token.Header["alg"])
		}
		return im.jwtSecret, nil
	})
	if err != nil {
		return "", err
	}

	if claims, ok := token.Claims.(*domain.JwtCustomClaims); ok && token.Valid {
		return claims.Address, nil
	}

	return "", domain.ErrInvalidSignature
}

func nonceKey(address domain.Address) string {
	return keys.RedisKey(keys.PfxNonce, address.ToLowerStr())
}
