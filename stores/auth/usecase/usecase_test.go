package usecase_test

import (
	"fmt"
	"testing"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"

	"github.com/bidhaus/goauction/base/ctx"
	"github.com/bidhaus/goauction/domain"
	"github.com/bidhaus/goauction/domain/keys"
	mockRedis "github.com/bidhaus/goauction/service/redis/mocks"
	"github.com/bidhaus/goauction/stores/auth/usecase"
)

const signingMsgTemplate = "Welcome to BidHaus!\n\nNonce: %s"

var mockCtx = ctx.Background()

func TestSignAndParseToken(t *testing.T) {
	key, err := crypto.GenerateKey()
	assert.NoError(t, err)
	address := domain.Address(crypto.PubkeyToAddress(key.PublicKey).Hex()).ToLower()

	nonce := "my-nonce"
	msg := fmt.Sprintf(signingMsgTemplate, nonce)
	sig, err := crypto.Sign(accounts.TextHash([]byte(msg)), key)
	assert.NoError(t, err)
	sig[crypto.RecoveryIDOffset] += 27

	mockNonces := &mockRedis.Service{}
	nonceKey := keys.RedisKey(keys.PfxNonce, address.ToLowerStr())
	mockNonces.On("Get", mockCtx, nonceKey).Return([]byte(nonce), nil)
	mockNonces.On("Del", mockCtx, nonceKey).Return(1, nil)

	u := usecase.New("jwt-secret", signingMsgTemplate, mockNonces)

	tkn, err := u.SignToken(mockCtx, address, hexutil.Encode(sig))
	assert.NoError(t, err)
	assert.NotEmpty(t, tkn)

	ads, err := u.ParseToken(mockCtx, tkn)
	assert.NoError(t, err)
	assert.Equal(t, address.ToLowerStr(), ads)
}

func TestSignTokenWithWrongSigner(t *testing.T) {
	key, err := crypto.GenerateKey()
	assert.NoError(t, err)

	// signed by key but presented as someone else's address
	address := domain.Address("0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13d")

	nonce := "my-nonce"
	msg := fmt.Sprintf(signingMsgTemplate, nonce)
	sig, err := crypto.Sign(accounts.TextHash([]byte(msg)), key)
	assert.NoError(t, err)
	sig[crypto.RecoveryIDOffset] += 27

	mockNonces := &mockRedis.Service{}
	nonceKey := keys.RedisKey(keys.PfxNonce, address.ToLowerStr())
	mockNonces.On("Get", mockCtx, nonceKey).Return([]byte(nonce), nil)

	u := usecase.New("jwt-secret", signingMsgTemplate, mockNonces)

	_, err = u.SignToken(mockCtx, address, hexutil.Encode(sig))
	assert.Equal(t, domain.ErrInvalidSignature, err)
	mockNonces.AssertNotCalled(t, "Del")
}

func TestNonceIssuedOnce(t *testing.T) {
	address := domain.Address("0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13d")
	nonceKey := keys.RedisKey(keys.PfxNonce, address.ToLowerStr())

	mockNonces := &mockRedis.Service{}
	mockNonces.On("Get", mockCtx, nonceKey).Return([]byte("existing"), nil)

	u := usecase.New("jwt-secret", signingMsgTemplate, mockNonces)

	nonce, err := u.Nonce(mockCtx, address)
	assert.NoError(t, err)
	assert.Equal(t, "existing", nonce)
	mockNonces.AssertNotCalled(t, "Set")
}
