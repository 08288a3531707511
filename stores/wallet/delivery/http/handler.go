package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/bidhaus/goauction/base/ctx"
	"github.com/bidhaus/goauction/base/delivery"
	"github.com/bidhaus/goauction/domain"
)

type handler struct {
	wallet domain.FungibleUsecase
}

func New(e *echo.Echo, authMiddleware, operatorMiddleware echo.MiddlewareFunc, wallet domain.FungibleUsecase) {
	h := &handler{
		wallet: wallet,
	}

	g := e.Group("/wallet")
	g.GET("/balance", h.balanceOf, authMiddleware)
	g.POST("/approve", h.approve, authMiddleware)
	g.POST("/transfer", h.transfer, authMiddleware)
	g.POST("/mint", h.mint, authMiddleware, operatorMiddleware)
}

func (h *handler) balanceOf(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	owner := c.Get("address").(domain.Address)

	p := struct {
		Token domain.Address `query:"token"`
	}{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	balance, err := h.wallet.BalanceOf(ctx, domain.ParseAsset(p.Token), owner)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, balance.String())
}

func (h *handler) approve(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	owner := c.Get("address").(domain.Address)

	p := struct {
		Token   domain.Address `json:"token"`
		Spender domain.Address `json:"spender" validate:"required"`
		Amount  string         `json:"amount" validate:"required"`
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

	if err := h.wallet.Approve(ctx, domain.ParseAsset(p.Token), owner, p.Spender, amount); err != nil {
		ctx.WithField("err", err).Error("wallet.Approve failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) transfer(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	from := c.Get("address").(domain.Address)

	p := struct {
		Token  domain.Address `json:"token"`
		To     domain.Address `json:"to" validate:"required"`
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

	if err := h.wallet.Transfer(ctx, domain.ParseAsset(p.Token), from, p.To, amount); err != nil {
		ctx.WithField("err", err).Error("wallet.Transfer failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) mint(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	operator := c.Get("address").(domain.Address)

	p := struct {
		Token  domain.Address `json:"token"`
		To     domain.Address `json:"to" validate:"required"`
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

	if err := h.wallet.Mint(ctx, operator, domain.ParseAsset(p.Token), p.To, amount); err != nil {
		ctx.WithField("err", err).Error("wallet.Mint failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, "ok")
}
