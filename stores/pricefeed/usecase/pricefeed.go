package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/bidhaus/goauction/base/ctx"
	"github.com/bidhaus/goauction/base/log"
	"github.com/bidhaus/goauction/domain"
	"github.com/bidhaus/goauction/service/oracle"
)

type impl struct {
	chainId  domain.ChainId
	feeds    domain.PriceFeedRepo
	oracle   oracle.Oracle
	operator domain.OperatorUsecase
}

func New(chainId domain.ChainId, feeds domain.PriceFeedRepo, orcl oracle.Oracle, operator domain.OperatorUsecase) domain.PriceFeedUsecase {
	return &impl{
		chainId:  chainId,
		feeds:    feeds,
		oracle:   orcl,
		operator: operator,
	}
}

func (im *impl) SetFeed(c ctx.Ctx, operator domain.Address, asset domain.Asset, feed domain.Address) error {
	if ok, err := im.operator.IsOperator(c, operator); err != nil {
		c.WithField("err", err).Error("operator.IsOperator failed")
		return err
	} else if !ok {
		return domain.ErrUnauthorized
	}

	if !asset.Valid() {
		return domain.ErrUnsupportedAsset
	}
	if feed.IsEmpty() {
		return domain.ErrInvalidParameters
	}

	record := &domain.PriceFeed{
		AssetKey:    asset.Key(),
		Asset:       asset,
		FeedAddress: feed.ToLower(),
		UpdatedBy:   operator.ToLower(),
		UpdatedAt:   time.Now(),
	}
	if err := im.feeds.Upsert(c, record); err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"asset": asset.Key(),
		}).Error("feeds.Upsert failed")
		return err
	}
	return nil
}

func (im *impl) FeedFor(c ctx.Ctx, asset domain.Asset) (*domain.PriceFeed, error) {
	feed, err := im.feeds.FindOne(c, asset)
	if err == domain.ErrNoPriceFeed {
		return nil, err
	} else if err != nil {
		c.WithField("err", err).Error("feeds.FindOne failed")
		return nil, err
	}
	return feed, nil
}

// Normalize converts amount of asset into the cross-asset comparison
// value: amount * quote / 10^(quote decimals), both read through the
// aggregator registered for the asset.
func (im *impl) Normalize(c ctx.Ctx, asset domain.Asset, amount decimal.Decimal) (decimal.Decimal, error) {
	if !asset.Valid() {
		return decimal.Zero, domain.ErrUnsupportedAsset
	}

	feed, err := im.FeedFor(c, asset)
	if err != nil {
		return decimal.Zero, err
	}

	quote, err := im.oracle.GetLatestQuote(c, im.chainId, feed.FeedAddress)
	if err != nil {
		c.WithFields(log.Fields{
			"err":  err,
			"feed": feed.FeedAddress,
		}).Error("oracle.GetLatestQuote failed")
		return decimal.Zero, err
	}

	decimals, err := im.oracle.GetDecimals(c, im.chainId, feed.FeedAddress)
	if err != nil {
		c.WithFields(log.Fields{
			"err":  err,
			"feed": feed.FeedAddress,
		}).Error("oracle.GetDecimals failed")
		return decimal.Zero, err
	}

	price := decimal.NewFromBigInt(quote.Value, -decimals)
	return amount.Mul(price), nil
}
