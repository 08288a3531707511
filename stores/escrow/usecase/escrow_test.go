package usecase

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
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
	mockRecords *mockDomain.EscrowRepo
	mockWallet  *mockDomain.FungibleUsecase
	mockItems   *mockDomain.ItemUsecase
	subject     *impl
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (t *testsuite) SetupTest() {
	t.mockRecords = &mockDomain.EscrowRepo{}
	t.mockWallet = &mockDomain.FungibleUsecase{}
	t.mockItems = &mockDomain.ItemUsecase{}
	t.subject = &impl{
		records:  t.mockRecords,
		wallet:   t.mockWallet,
		items:    t.mockItems,
		executor: "0xengine",
	}
}

func (t *testsuite) TestHoldItem() {
	var (
		ref        = domain.InstanceRef("inst-1")
		collection = domain.Address("0xcol")
		tokenId    = domain.TokenId("7")
		seller     = domain.Address("0xsel")
	)

	t.mockItems.
		On("TransferFrom", mockCtx, domain.Address("0xengine"), seller, domain.EscrowVaultAddress, collection, tokenId).
		Return(nil)
	t.mockRecords.
		On("Upsert", mockCtx, mock.MatchedBy(func(r *domain.EscrowRecord) bool {
			return r.InstanceRef == ref && r.AuctionId == 1 && r.ItemHeld
		})).
		Return(nil)

	t.NoError(t.subject.HoldItem(mockCtx, ref, 1, seller, collection, tokenId))
	t.mockItems.AssertExpectations(t.T())
	t.mockRecords.AssertExpectations(t.T())
}

func (t *testsuite) TestHoldItemWithoutCustodyRights() {
	var (
		ref        = domain.InstanceRef("inst-1")
		collection = domain.Address("0xcol")
		tokenId    = domain.TokenId("7")
		seller     = domain.Address("0xsel")
	)

	t.mockItems.
		On("TransferFrom", mockCtx, domain.Address("0xengine"), seller, domain.EscrowVaultAddress, collection, tokenId).
		Return(domain.ErrUnauthorized)

	t.Equal(domain.ErrUnauthorized, t.subject.HoldItem(mockCtx, ref, 1, seller, collection, tokenId))
	t.mockRecords.AssertNotCalled(t.T(), "Upsert")
}

func (t *testsuite) TestRecoverItem() {
	var (
		ref    = domain.InstanceRef("inst-1")
		winner = domain.Address("0xbid")
	)

	t.mockRecords.
		On("FindOne", mockCtx, ref, int64(1)).
		Return(&domain.EscrowRecord{
			InstanceRef: ref,
			AuctionId:   1,
			Collection:  "0xcol",
			TokenId:     "7",
			ItemHeld:    false,
		}, nil)
	t.mockItems.
		On("TransferFrom", mockCtx, winner, winner, domain.EscrowVaultAddress, domain.Address("0xcol"), domain.TokenId("7")).
		Return(nil)
	t.mockRecords.
		On("Upsert", mockCtx, mock.MatchedBy(func(r *domain.EscrowRecord) bool {
			return r.ItemHeld
		})).
		Return(nil)

	t.NoError(t.subject.RecoverItem(mockCtx, ref, 1, winner))
	t.mockItems.AssertExpectations(t.T())
	t.mockRecords.AssertExpectations(t.T())
}

func (t *testsuite) TestPledgeSurfacesInsufficientBalance() {
	var (
		ref    = domain.InstanceRef("inst-1")
		bidder = domain.Address("0xbid")
		asset  = domain.NativeAsset()
		amount = decimal.NewFromInt(10)
	)

	t.mockWallet.
		On("TransferFrom", mockCtx, asset, domain.Address("0xengine"), bidder, domain.EscrowVaultAddress, amount).
		Return(domain.ErrInsufficientBalance)

	t.Equal(domain.ErrInsufficientBalance, t.subject.Pledge(mockCtx, ref, 1, bidder, asset, amount))
}

func (t *testsuite) pledgedRecord(bidder domain.Address, asset domain.Asset, amount decimal.Decimal) *domain.EscrowRecord {
	return &domain.EscrowRecord{
		InstanceRef:   "inst-1",
		AuctionId:     1,
		Collection:    "0xcol",
		TokenId:       "7",
		ItemHeld:      true,
		PledgedBidder: bidder.ToLower(),
		PledgedAsset:  &asset,
		PledgedAmount: domain.MustDecimal128(amount),
	}
}

func (t *testsuite) TestRefundClearsPledge() {
	var (
		ref    = domain.InstanceRef("inst-1")
		bidder = domain.Address("0xbid")
		asset  = domain.NativeAsset()
		amount = decimal.NewFromInt(10)
	)

	t.mockRecords.
		On("FindOne", mockCtx, ref, int64(1)).
		Return(t.pledgedRecord(bidder, asset, amount), nil)
	t.mockWallet.
		On("Transfer", mockCtx, asset, domain.EscrowVaultAddress, bidder, amount).
		Return(nil)
	t.mockRecords.
		On("Upsert", mockCtx, mock.MatchedBy(func(r *domain.EscrowRecord) bool {
			return r.PledgedBidder == "" && r.PledgedAsset == nil
		})).
		Return(nil)

	t.NoError(t.subject.Refund(mockCtx, ref, 1, bidder, asset, amount))
	t.mockWallet.AssertExpectations(t.T())
	t.mockRecords.AssertExpectations(t.T())
}

func (t *testsuite) TestRefundDisplacedBidderKeepsCurrentPledge() {
	var (
		ref    = domain.InstanceRef("inst-1")
		asset  = domain.NativeAsset()
		amount = decimal.NewFromInt(10)
	)

	// the record already tracks the new leader's pledge
	t.mockRecords.
		On("FindOne", mockCtx, ref, int64(1)).
		Return(t.pledgedRecord("0xbid2", asset, decimal.NewFromInt(15)), nil)
	t.mockWallet.
		On("Transfer", mockCtx, asset, domain.EscrowVaultAddress, domain.Address("0xbid1"), amount).
		Return(nil)

	t.NoError(t.subject.Refund(mockCtx, ref, 1, "0xbid1", asset, amount))
	t.mockRecords.AssertNotCalled(t.T(), "Upsert")
}

func (t *testsuite) TestRefundTransferFailure() {
	var (
		ref    = domain.InstanceRef("inst-1")
		bidder = domain.Address("0xbid")
		asset  = domain.NativeAsset()
		amount = decimal.NewFromInt(10)
	)

	t.mockRecords.
		On("FindOne", mockCtx, ref, int64(1)).
		Return(t.pledgedRecord(bidder, asset, amount), nil)
	t.mockWallet.
		On("Transfer", mockCtx, asset, domain.EscrowVaultAddress, bidder, amount).
		Return(domain.ErrInternalServerError)

	t.Equal(domain.ErrTransferFailed, t.subject.Refund(mockCtx, ref, 1, bidder, asset, amount))
	t.mockRecords.AssertNotCalled(t.T(), "Upsert")
}
