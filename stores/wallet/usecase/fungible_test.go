package usecase

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/bidhaus/goauction/base/ctx"
	"github.com/bidhaus/goauction/domain"
	mockDomain "github.com/bidhaus/goauction/domain/mocks"
)

var (
	mockCtx = ctx.Background()
)

type testsuite struct {
	suite.Suite
	mockWallet   *mockDomain.FungibleRepo
	mockOperator *mockDomain.OperatorUsecase
	subject      *impl
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (t *testsuite) SetupTest() {
	t.mockWallet = &mockDomain.FungibleRepo{}
	t.mockOperator = &mockDomain.OperatorUsecase{}
	t.subject = &impl{
		wallet:   t.mockWallet,
		operator: t.mockOperator,
	}
}

func (t *testsuite) TestTransfer() {
	var (
		asset  = domain.NativeAsset()
		from   = domain.Address("0xaaa")
		to     = domain.Address("0xbbb")
		amount = decimal.NewFromInt(10)
	)

	t.mockWallet.On("Debit", mockCtx, asset, from, amount).Return(nil)
	t.mockWallet.On("Credit", mockCtx, asset, to, amount).Return(nil)

	t.NoError(t.subject.Transfer(mockCtx, asset, from, to, amount))
	t.mockWallet.AssertExpectations(t.T())
}

func (t *testsuite) TestTransferInsufficientBalance() {
	var (
		asset  = domain.NativeAsset()
		from   = domain.Address("0xaaa")
		to     = domain.Address("0xbbb")
		amount = decimal.NewFromInt(10)
	)

	t.mockWallet.On("Debit", mockCtx, asset, from, amount).Return(domain.ErrInsufficientBalance)

	t.Equal(domain.ErrInsufficientBalance, t.subject.Transfer(mockCtx, asset, from, to, amount))
	t.mockWallet.AssertNotCalled(t.T(), "Credit")
}

func (t *testsuite) TestTransferCompensatesFailedCredit() {
	var (
		asset  = domain.NativeAsset()
		from   = domain.Address("0xaaa")
		to     = domain.Address("0xbbb")
		amount = decimal.NewFromInt(10)
	)

	t.mockWallet.On("Debit", mockCtx, asset, from, amount).Return(nil)
	t.mockWallet.On("Credit", mockCtx, asset, to, amount).Return(domain.ErrInternalServerError)
	t.mockWallet.On("Credit", mockCtx, asset, from, amount).Return(nil)

	t.Equal(domain.ErrTransferFailed, t.subject.Transfer(mockCtx, asset, from, to, amount))
	t.mockWallet.AssertExpectations(t.T())
}

func (t *testsuite) TestTransferFrom() {
	var (
		asset   = domain.FungibleAsset("0xccc")
		spender = domain.Address("0xddd")
		owner   = domain.Address("0xaaa")
		to      = domain.Address("0xbbb")
		amount  = decimal.NewFromInt(5)
	)

	t.mockWallet.On("DebitAllowance", mockCtx, asset, owner, spender, amount).Return(nil)
	t.mockWallet.On("Debit", mockCtx, asset, owner, amount).Return(nil)
	t.mockWallet.On("Credit", mockCtx, asset, to, amount).Return(nil)

	t.NoError(t.subject.TransferFrom(mockCtx, asset, spender, owner, to, amount))
	t.mockWallet.AssertExpectations(t.T())
}

func (t *testsuite) TestTransferFromWithoutAllowance() {
	var (
		asset   = domain.FungibleAsset("0xccc")
		spender = domain.Address("0xddd")
		owner   = domain.Address("0xaaa")
		to      = domain.Address("0xbbb")
		amount  = decimal.NewFromInt(5)
	)

	t.mockWallet.On("DebitAllowance", mockCtx, asset, owner, spender, amount).Return(domain.ErrInsufficientAllowance)

	t.Equal(domain.ErrInsufficientAllowance, t.subject.TransferFrom(mockCtx, asset, spender, owner, to, amount))
	t.mockWallet.AssertNotCalled(t.T(), "Debit")
}

func (t *testsuite) TestMintRequiresOperator() {
	caller := domain.Address("0xeee")

	t.mockOperator.On("IsOperator", mockCtx, caller).Return(false, nil)

	err := t.subject.Mint(mockCtx, caller, domain.NativeAsset(), "0xaaa", decimal.NewFromInt(1))
	t.Equal(domain.ErrUnauthorized, err)
	t.mockWallet.AssertNotCalled(t.T(), "Credit")
}
