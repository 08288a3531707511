package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bidhaus/goauction/base/ctx"
	"github.com/bidhaus/goauction/base/delivery"
	"github.com/bidhaus/goauction/domain"
)

type handler struct {
	items domain.ItemUsecase
}

func New(e *echo.Echo, authMiddleware, operatorMiddleware echo.MiddlewareFunc, items domain.ItemUsecase) {
	h := &handler{
		items: items,
	}

	g := e.Group("/items")
	g.GET("/:collection/:tokenId/owner", h.ownerOf)
	g.POST("/approve", h.approve, authMiddleware)
	g.POST("/approvalForAll", h.setApprovalForAll, authMiddleware)
	g.POST("/transfer", h.transfer, authMiddleware)
	g.POST("/mint", h.mint, authMiddleware, operatorMiddleware)
}

func (h *handler) ownerOf(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := struct {
		Collection domain.Address `param:"collection" validate:"required"`
		TokenId    domain.TokenId `param:"tokenId" validate:"required"`
	}{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	owner, err := h.items.OwnerOf(ctx, p.Collection, p.TokenId)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, owner)
}

func (h *handler) approve(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	p := struct {
		Collection domain.Address `json:"collection" validate:"required"`
		TokenId    domain.TokenId `json:"tokenId" validate:"required"`
		Approved   domain.Address `json:"approved"`
	}{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.items.Approve(ctx, caller, p.Collection, p.TokenId, p.Approved); err != nil {
		ctx.WithField("err", err).Error("items.Approve failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) setApprovalForAll(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	owner := c.Get("address").(domain.Address)

	p := struct {
		Collection domain.Address `json:"collection" validate:"required"`
		Operator   domain.Address `json:"operator" validate:"required"`
		Approved   bool           `json:"approved"`
	}{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.items.SetApprovalForAll(ctx, owner, p.Collection, p.Operator, p.Approved); err != nil {
		ctx.WithField("err", err).Error("items.SetApprovalForAll failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) transfer(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	p := struct {
		Collection domain.Address `json:"collection" validate:"required"`
		TokenId    domain.TokenId `json:"tokenId" validate:"required"`
		From       domain.Address `json:"from" validate:"required"`
		To         domain.Address `json:"to" validate:"required"`
	}{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.items.TransferFrom(ctx, caller, p.From, p.To, p.Collection, p.TokenId); err != nil {
		ctx.WithField("err", err).Error("items.TransferFrom failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) mint(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	operator := c.Get("address").(domain.Address)

	p := struct {
		Collection domain.Address `json:"collection" validate:"required"`
		TokenId    domain.TokenId `json:"tokenId" validate:"required"`
		Owner      domain.Address `json:"owner" validate:"required"`
	}{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.items.Mint(ctx, operator, p.Collection, p.TokenId, p.Owner); err != nil {
		ctx.WithField("err", err).Error("items.Mint failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, "ok")
}
