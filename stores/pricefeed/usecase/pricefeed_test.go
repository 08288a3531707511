package usecase

import (
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/bidhaus/goauction/base/ctx"
	"github.com/bidhaus/goauction/domain"
	mockDomain "github.com/bidhaus/goauction/domain/mocks"
	"github.com/bidhaus/goauction/service/oracle"
	mockOracle "github.com/bidhaus/goauction/service/oracle/mocks"
)

var (
	mockCtx = ctx.Background()
)

type testsuite struct {
	suite.Suite
	mockFeeds    *mockDomain.PriceFeedRepo
	mockOracle   *mockOracle.Oracle
	mockOperator *mockDomain.OperatorUsecase
	subject      *impl
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (t *testsuite) SetupTest() {
	t.mockFeeds = &mockDomain.PriceFeedRepo{}
	t.mockOracle = &mockOracle.Oracle{}
	t.mockOperator = &mockDomain.OperatorUsecase{}
	t.subject = &impl{
		chainId:  1,
		feeds:    t.mockFeeds,
		oracle:   t.mockOracle,
		operator: t.mockOperator,
	}
}

func (t *testsuite) TestNormalize() {
	var (
		token    = domain.Address("0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48")
		asset    = domain.FungibleAsset(token)
		feedAddr = domain.Address("0x8fffffd4afb6115b954bd326cbe7b4ba576818f6")
	)

	t.mockFeeds.
		On("FindOne", mockCtx, asset).
		Return(&domain.PriceFeed{
			AssetKey:    asset.Key(),
			Asset:       asset,
			FeedAddress: feedAddr,
		}, nil)

	// quote of 1.00000000 with 8 decimals
	t.mockOracle.
		On("GetLatestQuote", mockCtx, domain.ChainId(1), feedAddr).
		Return(&oracle.Quote{Value: big.NewInt(100000000)}, nil)
	t.mockOracle.
		On("GetDecimals", mockCtx, domain.ChainId(1), feedAddr).
		Return(int32(8), nil)

	val, err := t.subject.Normalize(mockCtx, asset, decimal.NewFromInt(2000))
	t.NoError(err)
	t.True(decimal.NewFromInt(2000).Equal(val))
}

func (t *testsuite) TestNormalizeScalesByDecimals() {
	var (
		asset    = domain.NativeAsset()
		feedAddr = domain.Address("0x5f4ec3df9cbd43714fe2740f5e3616155c5b8419")
	)

	t.mockFeeds.
		On("FindOne", mockCtx, asset).
		Return(&domain.PriceFeed{
			AssetKey:    asset.Key(),
			Asset:       asset,
			FeedAddress: feedAddr,
		}, nil)

	// 2500.00000000, precision reported by the aggregator itself
	t.mockOracle.
		On("GetLatestQuote", mockCtx, domain.ChainId(1), feedAddr).
		Return(&oracle.Quote{Value: big.NewInt(250000000000)}, nil)
	t.mockOracle.
		On("GetDecimals", mockCtx, domain.ChainId(1), feedAddr).
		Return(int32(8), nil)

	val, err := t.subject.Normalize(mockCtx, asset, decimal.RequireFromString("1.2"))
	t.NoError(err)
	t.True(decimal.NewFromInt(3000).Equal(val))
	t.mockOracle.AssertExpectations(t.T())
}

func (t *testsuite) TestNormalizeRejectsUnknownAssetKind() {
	bogus := domain.Asset{Kind: "bogus", Token: "0xabc"}

	_, err := t.subject.Normalize(mockCtx, bogus, decimal.NewFromInt(1))
	t.Equal(domain.ErrUnsupportedAsset, err)
	t.mockFeeds.AssertNotCalled(t.T(), "FindOne")
}

func (t *testsuite) TestNormalizeWithoutFeed() {
	asset := domain.FungibleAsset("0xdeadbeef00000000000000000000000000000000")

	t.mockFeeds.
		On("FindOne", mockCtx, asset).
		Return(nil, domain.ErrNoPriceFeed)

	_, err := t.subject.Normalize(mockCtx, asset, decimal.NewFromInt(1))
	t.Equal(domain.ErrNoPriceFeed, err)
}

func (t *testsuite) TestSetFeedRequiresOperator() {
	caller := domain.Address("0xc37c41601bc88c91b6569c701f08d37fa0f565f0")

	t.mockOperator.
		On("IsOperator", mockCtx, caller).
		Return(false, nil)

	err := t.subject.SetFeed(mockCtx, caller, domain.NativeAsset(), "0xfeed")
	t.Equal(domain.ErrUnauthorized, err)
	t.mockFeeds.AssertNotCalled(t.T(), "Upsert")
}

func (t *testsuite) TestSetFeedOverwrites() {
	caller := domain.Address("0xc37c41601bc88c91b6569c701f08d37fa0f565f0")
	asset := domain.NativeAsset()

	t.mockOperator.
		On("IsOperator", mockCtx, caller).
		Return(true, nil)

	t.mockFeeds.
		On("Upsert", mockCtx, mock.MatchedBy(func(feed *domain.PriceFeed) bool {
			return feed.AssetKey == asset.Key() && feed.FeedAddress == domain.Address("0xfeed")
		})).
		Return(nil)

	t.NoError(t.subject.SetFeed(mockCtx, caller, asset, "0xFEED"))
	t.mockFeeds.AssertExpectations(t.T())
}
