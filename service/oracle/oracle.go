package oracle

import (
	"math/big"
	"time"

	"github.com/bidhaus/goauction/base/ctx"
	"github.com/bidhaus/goauction/domain"
)

// Quote is the latest round reported by a price feed
type Quote struct {
	Value     *big.Int  `json:"value"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Oracle interface {
	GetLatestQuote(c ctx.Ctx, chainId domain.ChainId, feedAddress domain.Address) (*Quote, error)

	// GetDecimals reads the precision the feed reports its quotes in.
	GetDecimals(c ctx.Ctx, chainId domain.ChainId, feedAddress domain.Address) (int32, error)
}
