package usecase

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/bidhaus/goauction/base/ctx"
	"github.com/bidhaus/goauction/base/keylock"
	"github.com/bidhaus/goauction/domain"
	"github.com/bidhaus/goauction/domain/auction"
	mockRepo "github.com/bidhaus/goauction/domain/auction/mocks"
	mockDomain "github.com/bidhaus/goauction/domain/mocks"
)

var (
	mockCtx = ctx.Background()
	frozen  = time.Date(2022, 3, 15, 12, 0, 0, 0, time.UTC)
)

type testsuite struct {
	suite.Suite
	mockAuctions *mockRepo.Repo
	mockFeeds    *mockDomain.PriceFeedUsecase
	mockEscrow   *mockDomain.EscrowUsecase
	mockItems    *mockDomain.ItemUsecase
	mockEvents   *mockDomain.EventRepo
	subject      *impl
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (t *testsuite) SetupTest() {
	t.mockAuctions = &mockRepo.Repo{}
	t.mockFeeds = &mockDomain.PriceFeedUsecase{}
	t.mockEscrow = &mockDomain.EscrowUsecase{}
	t.mockItems = &mockDomain.ItemUsecase{}
	t.mockEvents = &mockDomain.EventRepo{}
	t.subject = &impl{
		auctions: t.mockAuctions,
		feeds:    t.mockFeeds,
		escrow:   t.mockEscrow,
		items:    t.mockItems,
		events:   t.mockEvents,
		locks:    keylock.New(),
		now:      func() time.Time { return frozen },
	}
}

func (t *testsuite) liveAuction(highest *auction.Bid) *auction.Auction {
	return &auction.Auction{
		InstanceRef:  "inst-1",
		AuctionId:    1,
		Seller:       "0xsel",
		Collection:   "0xcol",
		TokenId:      "7",
		StartTime:    frozen.Add(-time.Minute),
		Duration:     3600,
		EndAt:        frozen.Add(time.Hour),
		ReservePrice: domain.MustDecimal128(decimal.NewFromInt(100)),
		HighestBid:   highest,
	}
}

func (t *testsuite) expiredAuction(highest *auction.Bid) *auction.Auction {
	a := t.liveAuction(highest)
	a.StartTime = frozen.Add(-2 * time.Hour)
	a.EndAt = frozen.Add(-time.Hour)
	return a
}

func (t *testsuite) expectEvent(typ domain.EventType) {
	t.mockEvents.
		On("Insert", mockCtx, mock.MatchedBy(func(e *domain.Event) bool {
			return e.Type == typ
		})).
		Return(nil)
}

func (t *testsuite) TestVersion() {
	t.Equal("V1.0", t.subject.Version())
	t.Equal("V2.0", (&implV2{impl: t.subject}).Version())
}

func (t *testsuite) TestLogicVersionsShareAuctionLocks() {
	v1 := New(t.mockAuctions, t.mockFeeds, t.mockEscrow, t.mockItems, t.mockEvents).(*impl)
	v2 := NewV2(t.mockAuctions, t.mockFeeds, t.mockEscrow, t.mockItems, t.mockEvents).(*implV2)

	t.Same(v1.locks, v2.locks)
}

func (t *testsuite) TestCreateAuction() {
	var (
		ref    = domain.InstanceRef("inst-1")
		seller = domain.Address("0xsel")
	)

	t.mockItems.On("OwnerOf", mockCtx, domain.Address("0xcol"), domain.TokenId("7")).Return(seller, nil)
	t.mockAuctions.On("NextAuctionId", mockCtx, ref).Return(int64(1), nil)
	t.mockEscrow.On("HoldItem", mockCtx, ref, int64(1), seller, domain.Address("0xcol"), domain.TokenId("7")).Return(nil)
	t.mockAuctions.On("Insert", mockCtx, mock.MatchedBy(func(a *auction.Auction) bool {
		return a.AuctionId == 1 && a.EndAt.Equal(frozen.Add(time.Hour)) && !a.Ended
	})).Return(nil)
	t.expectEvent(domain.EventAuctionCreated)

	a, err := t.subject.CreateAuction(mockCtx, &auction.CreateAuctionParams{
		InstanceRef:  ref,
		Seller:       seller,
		Duration:     3600,
		ReservePrice: decimal.NewFromInt(100),
		Collection:   "0xcol",
		TokenId:      "7",
	})
	t.NoError(err)
	t.Equal(int64(1), a.AuctionId)
	t.Equal(frozen, a.StartTime)
	t.mockEscrow.AssertExpectations(t.T())
	t.mockEvents.AssertExpectations(t.T())
}

func (t *testsuite) TestCreateAuctionBySellerNotOwner() {
	t.mockItems.On("OwnerOf", mockCtx, domain.Address("0xcol"), domain.TokenId("7")).
		Return(domain.Address("0xother"), nil)

	_, err := t.subject.CreateAuction(mockCtx, &auction.CreateAuctionParams{
		InstanceRef:  "inst-1",
		Seller:       "0xsel",
		Duration:     3600,
		ReservePrice: decimal.NewFromInt(100),
		Collection:   "0xcol",
		TokenId:      "7",
	})
	t.Equal(domain.ErrNotItemOwner, err)
	t.mockEscrow.AssertNotCalled(t.T(), "HoldItem")
}

func (t *testsuite) TestCreateAuctionWithoutCustodyApproval() {
	var (
		ref    = domain.InstanceRef("inst-1")
		seller = domain.Address("0xsel")
	)

	t.mockItems.On("OwnerOf", mockCtx, domain.Address("0xcol"), domain.TokenId("7")).Return(seller, nil)
	t.mockAuctions.On("NextAuctionId", mockCtx, ref).Return(int64(1), nil)
	t.mockEscrow.On("HoldItem", mockCtx, ref, int64(1), seller, domain.Address("0xcol"), domain.TokenId("7")).
		Return(domain.ErrUnauthorized)

	_, err := t.subject.CreateAuction(mockCtx, &auction.CreateAuctionParams{
		InstanceRef:  ref,
		Seller:       seller,
		Duration:     3600,
		ReservePrice: decimal.NewFromInt(100),
		Collection:   "0xcol",
		TokenId:      "7",
	})
	t.Equal(domain.ErrUnauthorized, err)
	t.mockAuctions.AssertNotCalled(t.T(), "Insert")
}

func (t *testsuite) TestCreateAuctionRejectsZeroDuration() {
	_, err := t.subject.CreateAuction(mockCtx, &auction.CreateAuctionParams{
		InstanceRef:  "inst-1",
		Seller:       "0xsel",
		Duration:     0,
		ReservePrice: decimal.NewFromInt(100),
		Collection:   "0xcol",
		TokenId:      "7",
	})
	t.Equal(domain.ErrInvalidParameters, err)
}

func (t *testsuite) TestPlaceBidFirst() {
	var (
		ref    = domain.InstanceRef("inst-1")
		bidder = domain.Address("0xbid1")
		asset  = domain.NativeAsset()
		amount = decimal.NewFromInt(120)
	)

	t.mockAuctions.On("FindOne", mockCtx, ref, int64(1)).Return(t.liveAuction(nil), nil)
	t.mockFeeds.On("Normalize", mockCtx, asset, amount).Return(amount, nil)
	t.mockFeeds.On("Normalize", mockCtx, domain.NativeAsset(), decimal.NewFromInt(100)).
		Return(decimal.NewFromInt(100), nil)
	t.mockEscrow.On("Pledge", mockCtx, ref, int64(1), bidder, asset, amount).Return(nil)
	t.mockAuctions.On("SetHighestBid", mockCtx, ref, int64(1), mock.MatchedBy(func(b *auction.Bid) bool {
		return b.Bidder == bidder && b.PlacedAt.Equal(frozen)
	})).Return(nil)
	t.expectEvent(domain.EventNewBid)

	a, err := t.subject.PlaceBid(mockCtx, &auction.PlaceBidParams{
		InstanceRef: ref,
		AuctionId:   1,
		Bidder:      bidder,
		Asset:       asset,
		Amount:      amount,
	})
	t.NoError(err)
	t.Equal(bidder, a.HighestBid.Bidder)
	t.mockEscrow.AssertNotCalled(t.T(), "Refund")
	t.mockEvents.AssertExpectations(t.T())
}

func (t *testsuite) TestPlaceBidBelowReserve() {
	var (
		asset  = domain.NativeAsset()
		amount = decimal.NewFromInt(99)
	)

	t.mockAuctions.On("FindOne", mockCtx, domain.InstanceRef("inst-1"), int64(1)).Return(t.liveAuction(nil), nil)
	t.mockFeeds.On("Normalize", mockCtx, asset, amount).Return(amount, nil)
	t.mockFeeds.On("Normalize", mockCtx, domain.NativeAsset(), decimal.NewFromInt(100)).
		Return(decimal.NewFromInt(100), nil)

	_, err := t.subject.PlaceBid(mockCtx, &auction.PlaceBidParams{
		InstanceRef: "inst-1",
		AuctionId:   1,
		Bidder:      "0xbid1",
		Asset:       asset,
		Amount:      amount,
	})
	t.Equal(domain.ErrBidTooLow, err)
	t.mockEscrow.AssertNotCalled(t.T(), "Pledge")
}

func (t *testsuite) TestPlaceBidFirstComparesNormalizedReserve() {
	var (
		token  = domain.FungibleAsset("0xtok")
		amount = decimal.NewFromInt(101)
	)

	t.mockAuctions.On("FindOne", mockCtx, domain.InstanceRef("inst-1"), int64(1)).Return(t.liveAuction(nil), nil)
	// the token bid beats the raw reserve of 100 but not its value
	// through the native feed
	t.mockFeeds.On("Normalize", mockCtx, token, amount).Return(amount, nil)
	t.mockFeeds.On("Normalize", mockCtx, domain.NativeAsset(), decimal.NewFromInt(100)).
		Return(decimal.NewFromInt(1000000), nil)

	_, err := t.subject.PlaceBid(mockCtx, &auction.PlaceBidParams{
		InstanceRef: "inst-1",
		AuctionId:   1,
		Bidder:      "0xbid1",
		Asset:       token,
		Amount:      amount,
	})
	t.Equal(domain.ErrBidTooLow, err)
	t.mockEscrow.AssertNotCalled(t.T(), "Pledge")
	t.mockFeeds.AssertExpectations(t.T())
}

func (t *testsuite) TestPlaceBidOutbidRefundsPrevious() {
	var (
		ref    = domain.InstanceRef("inst-1")
		asset  = domain.NativeAsset()
		amount = decimal.NewFromInt(150)
	)
	prev := &auction.Bid{
		Bidder:          "0xbid1",
		Asset:           asset,
		RawAmount:       domain.MustDecimal128(decimal.NewFromInt(120)),
		NormalizedValue: domain.MustDecimal128(decimal.NewFromInt(120)),
		PlacedAt:        frozen.Add(-time.Minute),
	}

	t.mockAuctions.On("FindOne", mockCtx, ref, int64(1)).Return(t.liveAuction(prev), nil)
	t.mockFeeds.On("Normalize", mockCtx, asset, amount).Return(amount, nil)
	t.mockEscrow.On("Pledge", mockCtx, ref, int64(1), domain.Address("0xbid2"), asset, amount).Return(nil)
	t.mockAuctions.On("SetHighestBid", mockCtx, ref, int64(1), mock.MatchedBy(func(b *auction.Bid) bool {
		return b.Bidder == domain.Address("0xbid2")
	})).Return(nil)
	t.mockEscrow.On("Refund", mockCtx, ref, int64(1), domain.Address("0xbid1"), asset, decimal.NewFromInt(120)).Return(nil)
	t.expectEvent(domain.EventNewBid)

	a, err := t.subject.PlaceBid(mockCtx, &auction.PlaceBidParams{
		InstanceRef: ref,
		AuctionId:   1,
		Bidder:      "0xbid2",
		Asset:       asset,
		Amount:      amount,
	})
	t.NoError(err)
	t.Equal(domain.Address("0xbid2"), a.HighestBid.Bidder)
	t.mockEscrow.AssertExpectations(t.T())
}

func (t *testsuite) TestPlaceBidNotStrictlyGreater() {
	var (
		asset  = domain.NativeAsset()
		amount = decimal.NewFromInt(120)
	)
	prev := &auction.Bid{
		Bidder:          "0xbid1",
		Asset:           asset,
		RawAmount:       domain.MustDecimal128(amount),
		NormalizedValue: domain.MustDecimal128(amount),
	}

	t.mockAuctions.On("FindOne", mockCtx, domain.InstanceRef("inst-1"), int64(1)).Return(t.liveAuction(prev), nil)
	t.mockFeeds.On("Normalize", mockCtx, asset, amount).Return(amount, nil)

	_, err := t.subject.PlaceBid(mockCtx, &auction.PlaceBidParams{
		InstanceRef: "inst-1",
		AuctionId:   1,
		Bidder:      "0xbid2",
		Asset:       asset,
		Amount:      amount,
	})
	t.Equal(domain.ErrBidTooLow, err)
	t.mockEscrow.AssertNotCalled(t.T(), "Pledge")
}

func (t *testsuite) TestPlaceBidCrossAssetComparesNormalized() {
	var (
		ref    = domain.InstanceRef("inst-1")
		native = domain.NativeAsset()
		token  = domain.FungibleAsset("0xtok")
		amount = decimal.NewFromInt(2)
	)
	prev := &auction.Bid{
		Bidder:          "0xbid1",
		Asset:           native,
		RawAmount:       domain.MustDecimal128(decimal.NewFromInt(1000)),
		NormalizedValue: domain.MustDecimal128(decimal.NewFromInt(1000)),
	}

	t.mockAuctions.On("FindOne", mockCtx, ref, int64(1)).Return(t.liveAuction(prev), nil)
	// 2 tokens quoted at 1200 each beat the 1000 native bid
	t.mockFeeds.On("Normalize", mockCtx, token, amount).Return(decimal.NewFromInt(2400), nil)
	t.mockEscrow.On("Pledge", mockCtx, ref, int64(1), domain.Address("0xbid2"), token, amount).Return(nil)
	t.mockAuctions.On("SetHighestBid", mockCtx, ref, int64(1), mock.MatchedBy(func(b *auction.Bid) bool {
		return b.NormalizedValue.String() == "2400"
	})).Return(nil)
	t.mockEscrow.On("Refund", mockCtx, ref, int64(1), domain.Address("0xbid1"), native, decimal.NewFromInt(1000)).Return(nil)
	t.expectEvent(domain.EventNewBid)

	a, err := t.subject.PlaceBid(mockCtx, &auction.PlaceBidParams{
		InstanceRef: ref,
		AuctionId:   1,
		Bidder:      "0xbid2",
		Asset:       token,
		Amount:      amount,
	})
	t.NoError(err)
	t.Equal(token, a.HighestBid.Asset)
	t.mockEscrow.AssertExpectations(t.T())
}

func (t *testsuite) TestPlaceBidWithoutFeed() {
	var (
		token  = domain.FungibleAsset("0xtok")
		amount = decimal.NewFromInt(2)
	)

	t.mockAuctions.On("FindOne", mockCtx, domain.InstanceRef("inst-1"), int64(1)).Return(t.liveAuction(nil), nil)
	t.mockFeeds.On("Normalize", mockCtx, token, amount).Return(decimal.Zero, domain.ErrNoPriceFeed)

	_, err := t.subject.PlaceBid(mockCtx, &auction.PlaceBidParams{
		InstanceRef: "inst-1",
		AuctionId:   1,
		Bidder:      "0xbid1",
		Asset:       token,
		Amount:      amount,
	})
	t.Equal(domain.ErrNoPriceFeed, err)
	t.mockEscrow.AssertNotCalled(t.T(), "Pledge")
}

func (t *testsuite) TestPlaceBidOnExpiredAuction() {
	t.mockAuctions.On("FindOne", mockCtx, domain.InstanceRef("inst-1"), int64(1)).Return(t.expiredAuction(nil), nil)

	_, err := t.subject.PlaceBid(mockCtx, &auction.PlaceBidParams{
		InstanceRef: "inst-1",
		AuctionId:   1,
		Bidder:      "0xbid1",
		Asset:       domain.NativeAsset(),
		Amount:      decimal.NewFromInt(120),
	})
	t.Equal(domain.ErrAuctionNotActive, err)
}

func (t *testsuite) TestPlaceBidOnUnknownAuction() {
	t.mockAuctions.On("FindOne", mockCtx, domain.InstanceRef("inst-1"), int64(9)).
		Return(nil, domain.ErrAuctionNotFound)

	_, err := t.subject.PlaceBid(mockCtx, &auction.PlaceBidParams{
		InstanceRef: "inst-1",
		AuctionId:   9,
		Bidder:      "0xbid1",
		Asset:       domain.NativeAsset(),
		Amount:      decimal.NewFromInt(120),
	})
	t.Equal(domain.ErrAuctionNotFound, err)
}

func (t *testsuite) TestPlaceBidRollsBackWhenRefundFails() {
	var (
		ref    = domain.InstanceRef("inst-1")
		asset  = domain.NativeAsset()
		amount = decimal.NewFromInt(150)
	)
	prev := &auction.Bid{
		Bidder:          "0xbid1",
		Asset:           asset,
		RawAmount:       domain.MustDecimal128(decimal.NewFromInt(120)),
		NormalizedValue: domain.MustDecimal128(decimal.NewFromInt(120)),
	}

	t.mockAuctions.On("FindOne", mockCtx, ref, int64(1)).Return(t.liveAuction(prev), nil)
	t.mockFeeds.On("Normalize", mockCtx, asset, amount).Return(amount, nil)
	t.mockEscrow.On("Pledge", mockCtx, ref, int64(1), domain.Address("0xbid2"), asset, amount).Return(nil)
	t.mockAuctions.On("SetHighestBid", mockCtx, ref, int64(1), mock.MatchedBy(func(b *auction.Bid) bool {
		return b.Bidder == domain.Address("0xbid2")
	})).Return(nil)
	t.mockEscrow.On("Refund", mockCtx, ref, int64(1), domain.Address("0xbid1"), asset, decimal.NewFromInt(120)).
		Return(domain.ErrTransferFailed)
	// the replacement is undone as a whole
	t.mockAuctions.On("SetHighestBid", mockCtx, ref, int64(1), prev).Return(nil)
	t.mockEscrow.On("Refund", mockCtx, ref, int64(1), domain.Address("0xbid2"), asset, amount).Return(nil)

	_, err := t.subject.PlaceBid(mockCtx, &auction.PlaceBidParams{
		InstanceRef: ref,
		AuctionId:   1,
		Bidder:      "0xbid2",
		Asset:       asset,
		Amount:      amount,
	})
	t.Equal(domain.ErrTransferFailed, err)
	t.mockEscrow.AssertExpectations(t.T())
	t.mockAuctions.AssertExpectations(t.T())
}

func (t *testsuite) TestEndAuctionWithWinner() {
	var (
		ref   = domain.InstanceRef("inst-1")
		asset = domain.NativeAsset()
	)
	win := &auction.Bid{
		Bidder:          "0xbid2",
		Asset:           asset,
		RawAmount:       domain.MustDecimal128(decimal.NewFromInt(150)),
		NormalizedValue: domain.MustDecimal128(decimal.NewFromInt(150)),
	}

	t.mockAuctions.On("FindOne", mockCtx, ref, int64(1)).Return(t.expiredAuction(win), nil)
	t.mockAuctions.On("MarkEnded", mockCtx, ref, int64(1)).Return(nil)
	t.mockEscrow.On("ReleaseItem", mockCtx, ref, int64(1), domain.Address("0xbid2")).Return(nil)
	t.mockEscrow.On("Forward", mockCtx, ref, int64(1), domain.Address("0xsel"), asset, decimal.NewFromInt(150)).Return(nil)
	t.expectEvent(domain.EventAuctionEnded)

	a, err := t.subject.EndAuction(mockCtx, &auction.EndAuctionParams{
		InstanceRef: ref,
		AuctionId:   1,
		Caller:      "0xanyone",
	})
	t.NoError(err)
	t.True(a.Ended)
	t.True(a.Settled)
	t.mockEscrow.AssertExpectations(t.T())
	t.mockEvents.AssertExpectations(t.T())
}

func (t *testsuite) TestEndAuctionWithoutBidsReturnsItem() {
	ref := domain.InstanceRef("inst-1")

	t.mockAuctions.On("FindOne", mockCtx, ref, int64(1)).Return(t.expiredAuction(nil), nil)
	t.mockAuctions.On("MarkEnded", mockCtx, ref, int64(1)).Return(nil)
	t.mockEscrow.On("ReleaseItem", mockCtx, ref, int64(1), domain.Address("0xsel")).Return(nil)
	t.expectEvent(domain.EventAuctionEnded)

	a, err := t.subject.EndAuction(mockCtx, &auction.EndAuctionParams{
		InstanceRef: ref,
		AuctionId:   1,
		Caller:      "0xsel",
	})
	t.NoError(err)
	t.True(a.Ended)
	t.mockEscrow.AssertNotCalled(t.T(), "Forward")
	t.mockEscrow.AssertExpectations(t.T())
}

func (t *testsuite) TestEndAuctionReopensWhenForwardFails() {
	var (
		ref   = domain.InstanceRef("inst-1")
		asset = domain.NativeAsset()
	)
	win := &auction.Bid{
		Bidder:          "0xbid2",
		Asset:           asset,
		RawAmount:       domain.MustDecimal128(decimal.NewFromInt(150)),
		NormalizedValue: domain.MustDecimal128(decimal.NewFromInt(150)),
	}

	t.mockAuctions.On("FindOne", mockCtx, ref, int64(1)).Return(t.expiredAuction(win), nil)
	t.mockAuctions.On("MarkEnded", mockCtx, ref, int64(1)).Return(nil)
	t.mockEscrow.On("ReleaseItem", mockCtx, ref, int64(1), domain.Address("0xbid2")).Return(nil)
	t.mockEscrow.On("Forward", mockCtx, ref, int64(1), domain.Address("0xsel"), asset, decimal.NewFromInt(150)).
		Return(domain.ErrTransferFailed)
	// settlement is undone as a whole so a retry can run it again
	t.mockEscrow.On("RecoverItem", mockCtx, ref, int64(1), domain.Address("0xbid2")).Return(nil)
	t.mockAuctions.On("UnmarkEnded", mockCtx, ref, int64(1)).Return(nil)

	_, err := t.subject.EndAuction(mockCtx, &auction.EndAuctionParams{
		InstanceRef: ref,
		AuctionId:   1,
		Caller:      "0xsel",
	})
	t.Equal(domain.ErrTransferFailed, err)
	t.mockEscrow.AssertExpectations(t.T())
	t.mockAuctions.AssertExpectations(t.T())
	t.mockEvents.AssertNotCalled(t.T(), "Insert")
}

func (t *testsuite) TestEndAuctionReopensWhenReleaseFails() {
	ref := domain.InstanceRef("inst-1")

	t.mockAuctions.On("FindOne", mockCtx, ref, int64(1)).Return(t.expiredAuction(nil), nil)
	t.mockAuctions.On("MarkEnded", mockCtx, ref, int64(1)).Return(nil)
	t.mockEscrow.On("ReleaseItem", mockCtx, ref, int64(1), domain.Address("0xsel")).
		Return(domain.ErrTransferFailed)
	t.mockAuctions.On("UnmarkEnded", mockCtx, ref, int64(1)).Return(nil)

	_, err := t.subject.EndAuction(mockCtx, &auction.EndAuctionParams{
		InstanceRef: ref,
		AuctionId:   1,
		Caller:      "0xsel",
	})
	t.Equal(domain.ErrTransferFailed, err)
	t.mockEscrow.AssertNotCalled(t.T(), "Forward")
	t.mockAuctions.AssertExpectations(t.T())
}

func (t *testsuite) TestEndAuctionBeforeExpiry() {
	t.mockAuctions.On("FindOne", mockCtx, domain.InstanceRef("inst-1"), int64(1)).Return(t.liveAuction(nil), nil)

	_, err := t.subject.EndAuction(mockCtx, &auction.EndAuctionParams{
		InstanceRef: "inst-1",
		AuctionId:   1,
		Caller:      "0xsel",
	})
	t.Equal(domain.ErrAuctionNotExpired, err)
	t.mockAuctions.AssertNotCalled(t.T(), "MarkEnded")
}

func (t *testsuite) TestEndAuctionTwice() {
	ended := t.expiredAuction(nil)
	ended.Ended = true
	ended.Settled = true

	t.mockAuctions.On("FindOne", mockCtx, domain.InstanceRef("inst-1"), int64(1)).Return(ended, nil)

	_, err := t.subject.EndAuction(mockCtx, &auction.EndAuctionParams{
		InstanceRef: "inst-1",
		AuctionId:   1,
		Caller:      "0xsel",
	})
	t.Equal(domain.ErrAlreadyEnded, err)
	t.mockEscrow.AssertNotCalled(t.T(), "ReleaseItem")
}

func (t *testsuite) TestEndAuctionLosesMarkRace() {
	ref := domain.InstanceRef("inst-1")

	t.mockAuctions.On("FindOne", mockCtx, ref, int64(1)).Return(t.expiredAuction(nil), nil)
	t.mockAuctions.On("MarkEnded", mockCtx, ref, int64(1)).Return(domain.ErrAlreadyEnded)

	_, err := t.subject.EndAuction(mockCtx, &auction.EndAuctionParams{
		InstanceRef: ref,
		AuctionId:   1,
		Caller:      "0xsel",
	})
	t.Equal(domain.ErrAlreadyEnded, err)
	t.mockEscrow.AssertNotCalled(t.T(), "ReleaseItem")
}
