package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/bidhaus/goauction/base/ctx"
	"github.com/bidhaus/goauction/base/delivery"
	"github.com/bidhaus/goauction/domain"
	"github.com/bidhaus/goauction/domain/auction"
	"github.com/bidhaus/goauction/domain/beacon"
)

type handler struct {
	factory beacon.FactoryUsecase
}

// New registers the auction routes. Every call resolves the engine
// through the beacon so an upgrade takes effect on the next request.
func New(e *echo.Echo, authMiddleware echo.MiddlewareFunc, factory beacon.FactoryUsecase) {
	h := &handler{
		factory: factory,
	}

	g := e.Group("/instances/:instanceRef/auctions")
	g.POST("", h.createAuction, authMiddleware)
	g.GET("", h.listAuctions)
	g.GET("/:auctionId", h.getAuction)
	g.POST("/:auctionId/bids", h.placeBid, authMiddleware)
	g.POST("/:auctionId/end", h.endAuction, authMiddleware)
}

func (h *handler) createAuction(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	seller := c.Get("address").(domain.Address)

	p := struct {
		InstanceRef  domain.InstanceRef `param:"instanceRef" validate:"required"`
		Collection   domain.Address     `json:"collection" validate:"required"`
		TokenId      domain.TokenId     `json:"tokenId" validate:"required"`
		Duration     int64              `json:"duration" validate:"required"`
		ReservePrice string             `json:"reservePrice"`
	}{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	reservePrice := decimal.Zero
	if len(p.ReservePrice) > 0 {
		var err error
		if reservePrice, err = decimal.NewFromString(p.ReservePrice); err != nil {
			return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidParameters)
		}
	}

	engine, err := h.resolve(ctx, p.InstanceRef)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	a, err := engine.CreateAuction(ctx, &auction.CreateAuctionParams{
		InstanceRef:  p.InstanceRef,
		Seller:       seller,
		Duration:     p.Duration,
		ReservePrice: reservePrice,
		Collection:   p.Collection,
		TokenId:      p.TokenId,
	})
	if err != nil {
		ctx.WithField("err", err).Error("engine.CreateAuction failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, a)
}

func (h *handler) placeBid(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	bidder := c.Get("address").(domain.Address)

	p := struct {
		InstanceRef domain.InstanceRef `param:"instanceRef" validate:"required"`
		AuctionId   int64              `param:"auctionId" validate:"required"`
		// Token is omitted or zero for native-asset bids
		Token  domain.Address `json:"token"`
		Amount string         `json:"amount" validate:"required"`
	}{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	amount, err := decimal.NewFromString(p.Amount)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidParameters)
	}

	engine, err := h.resolve(ctx, p.InstanceRef)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	a, err := engine.PlaceBid(ctx, &auction.PlaceBidParams{
		InstanceRef: p.InstanceRef,
		AuctionId:   p.AuctionId,
		Bidder:      bidder,
		Asset:       domain.ParseAsset(p.Token),
		Amount:      amount,
	})
	if err != nil {
		ctx.WithField("err", err).Error("engine.PlaceBid failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, a)
}

func (h *handler) endAuction(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	p := struct {
		InstanceRef domain.InstanceRef `param:"instanceRef" validate:"required"`
		AuctionId   int64              `param:"auctionId" validate:"required"`
	}{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	engine, err := h.resolve(ctx, p.InstanceRef)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	a, err := engine.EndAuction(ctx, &auction.EndAuctionParams{
		InstanceRef: p.InstanceRef,
		AuctionId:   p.AuctionId,
		Caller:      caller,
	})
	if err != nil {
		ctx.WithField("err", err).Error("engine.EndAuction failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, a)
}

func (h *handler) getAuction(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := struct {
		InstanceRef domain.InstanceRef `param:"instanceRef" validate:"required"`
		AuctionId   int64              `param:"auctionId" validate:"required"`
	}{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	engine, err := h.resolve(ctx, p.InstanceRef)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	a, err := engine.GetAuction(ctx, p.InstanceRef, p.AuctionId)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, a)
}

func (h *handler) listAuctions(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := struct {
		InstanceRef domain.InstanceRef `param:"instanceRef" validate:"required"`
		Offset      int                `query:"offset"`
		Limit       int                `query:"limit"`
	}{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if p.Limit == 0 || p.Limit > 100 {
		p.Limit = 100
	}

	engine, err := h.resolve(ctx, p.InstanceRef)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	res, err := engine.ListAuctions(ctx, p.InstanceRef, p.Offset, p.Limit)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// resolve checks the instance exists before handing back the engine the
// beacon currently points at.
func (h *handler) resolve(c ctx.Ctx, ref domain.InstanceRef) (auction.Engine, error) {
	if _, err := h.factory.GetInstance(c, ref); err != nil {
		return nil, err
	}
	return h.factory.Resolve(c)
}
