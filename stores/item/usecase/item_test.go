package usecase

import (
	"testing"

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
	mockItems    *mockDomain.ItemRepo
	mockOperator *mockDomain.OperatorUsecase
	subject      *impl
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (t *testsuite) SetupTest() {
	t.mockItems = &mockDomain.ItemRepo{}
	t.mockOperator = &mockDomain.OperatorUsecase{}
	t.subject = &impl{
		items:    t.mockItems,
		operator: t.mockOperator,
	}
}

func (t *testsuite) TestTransferFromByOwner() {
	var (
		collection = domain.Address("0xcol")
		tokenId    = domain.TokenId("1")
		owner      = domain.Address("0xaaa")
		to         = domain.Address("0xbbb")
	)

	t.mockItems.On("FindOne", mockCtx, collection, tokenId).Return(&domain.Item{
		Collection: collection,
		TokenId:    tokenId,
		Owner:      owner,
	}, nil)
	t.mockItems.On("SetOwner", mockCtx, collection, tokenId, owner, to).Return(nil)

	t.NoError(t.subject.TransferFrom(mockCtx, owner, owner, to, collection, tokenId))
	t.mockItems.AssertExpectations(t.T())
}

func (t *testsuite) TestTransferFromByStranger() {
	var (
		collection = domain.Address("0xcol")
		tokenId    = domain.TokenId("1")
		owner      = domain.Address("0xaaa")
		stranger   = domain.Address("0xccc")
	)

	t.mockItems.On("FindOne", mockCtx, collection, tokenId).Return(&domain.Item{
		Collection: collection,
		TokenId:    tokenId,
		Owner:      owner,
	}, nil)
	t.mockItems.On("FindApproval", mockCtx, collection, owner, stranger).Return(nil, nil)

	err := t.subject.TransferFrom(mockCtx, stranger, owner, "0xbbb", collection, tokenId)
	t.Equal(domain.ErrUnauthorized, err)
	t.mockItems.AssertNotCalled(t.T(), "SetOwner")
}

func (t *testsuite) TestTransferFromByApprovedOperator() {
	var (
		collection = domain.Address("0xcol")
		tokenId    = domain.TokenId("1")
		owner      = domain.Address("0xaaa")
		operator   = domain.Address("0xope")
		to         = domain.Address("0xbbb")
	)

	t.mockItems.On("FindOne", mockCtx, collection, tokenId).Return(&domain.Item{
		Collection: collection,
		TokenId:    tokenId,
		Owner:      owner,
	}, nil)
	t.mockItems.On("FindApproval", mockCtx, collection, owner, operator).Return(&domain.ItemApproval{
		Collection: collection,
		Owner:      owner,
		Operator:   operator,
		Approved:   true,
	}, nil)
	t.mockItems.On("SetOwner", mockCtx, collection, tokenId, owner, to).Return(nil)

	t.NoError(t.subject.TransferFrom(mockCtx, operator, owner, to, collection, tokenId))
	t.mockItems.AssertExpectations(t.T())
}

func (t *testsuite) TestMintRequiresOperator() {
	caller := domain.Address("0xeee")

	t.mockOperator.On("IsOperator", mockCtx, caller).Return(false, nil)

	err := t.subject.Mint(mockCtx, caller, "0xcol", "1", "0xaaa")
	t.Equal(domain.ErrUnauthorized, err)
	t.mockItems.AssertNotCalled(t.T(), "Insert")
}
