package oracle

import (
	"math/big"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/bidhaus/goauction/base/abi"
	"github.com/bidhaus/goauction/base/ctx"
	"github.com/bidhaus/goauction/base/log"
	"github.com/bidhaus/goauction/domain"
	"github.com/bidhaus/goauction/domain/keys"
	"github.com/bidhaus/goauction/service/cache"
	"github.com/bidhaus/goauction/service/cache/provider/primitive"
	"github.com/bidhaus/goauction/service/chain"
)

type impl struct {
	chainClient chain.Client
	cache       cache.Service
}

func New(chainClient chain.Client) Oracle {
	return &impl{
		chainClient: chainClient,
		cache: cache.New(cache.ServiceConfig{
			Ttl:   time.Minute,
			Pfx:   keys.PfxPriceQuote,
			Cache: primitive.NewPrimitive("oracle_cache", 32),
		}),
	}
}

func (im *impl) GetLatestQuote(c ctx.Ctx, chainId domain.ChainId, address domain.Address) (*Quote, error) {
	var res Quote

	key := keys.RedisKey(strconv.Itoa(int(chainId)), string(address), "latest")

	if err := im.cache.GetByFunc(c, key, &res, func() (interface{}, error) {
		if res, err := im.getLatestQuote(c, chainId, address); err != nil {
			c.WithFields(log.Fields{
				"err":     err,
				"chainId": chainId,
				"address": address,
			}).Error("getLatestQuote failed")
			return nil, err
		} else {
			return res, nil
		}
	}); err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"chainId": chainId,
			"address": address,
		}).Error("cache.GetByFunc failed")
		return nil, err
	}

	return &res, nil
}

func (im *impl) GetDecimals(c ctx.Ctx, chainId domain.ChainId, address domain.Address) (int32, error) {
	var res int32

	key := keys.RedisKey(strconv.Itoa(int(chainId)), string(address), "decimals")

	if err := im.cache.GetByFunc(c, key, &res, func() (interface{}, error) {
		if res, err := im.getDecimals(c, chainId, address); err != nil {
			c.WithFields(log.Fields{
				"err":     err,
				"chainId": chainId,
				"address": address,
			}).Error("getDecimals failed")
			return nil, err
		} else {
			return res, nil
		}
	}); err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"chainId": chainId,
			"address": address,
		}).Error("cache.GetByFunc failed")
		return 0, err
	}

	return res, nil
}

func (im *impl) getLatestQuote(c ctx.Ctx, chainId domain.ChainId, address domain.Address) (*Quote, error) {
	feedAddr := common.HexToAddress(string(address))

	res, err := im.chainClient.Call(c, int32(chainId), feedAddr, nil, abi.AggregatorV3ABI, "latestRoundData")
	if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"chainId": chainId,
			"address": address,
		}).Error("chainClient.Call failed")
		return nil, err
	}

	answer := res[1].(*big.Int)
	updatedAt := res[3].(*big.Int)

	return &Quote{
		Value:     answer,
		UpdatedAt: time.Unix(updatedAt.Int64(), 0),
	}, nil
}

func (im *impl) getDecimals(c ctx.Ctx, chainId domain.ChainId, address domain.Address) (int32, error) {
	feedAddr := common.HexToAddress(string(address))

	res, err := im.chainClient.Call(c, int32(chainId), feedAddr, nil, abi.AggregatorV3ABI, "decimals")
	if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"chainId": chainId,
			"address": address,
		}).Error("chainClient.Call failed")
		return 0, err
	}

	return int32(res[0].(uint8)), nil
}
