package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bidhaus/goauction/base/ctx"
	"github.com/bidhaus/goauction/base/delivery"
	"github.com/bidhaus/goauction/domain"
)

type handler struct {
	feeds domain.PriceFeedUsecase
}

func New(e *echo.Echo, authMiddleware, operatorMiddleware echo.MiddlewareFunc, feeds domain.PriceFeedUsecase) {
	h := &handler{
		feeds: feeds,
	}

	g := e.Group("/pricefeeds")
	g.GET("", h.getFeed)
	g.PUT("", h.setFeed, authMiddleware, operatorMiddleware)
}

func (h *handler) getFeed(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := struct {
		Token domain.Address `query:"token"`
	}{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	feed, err := h.feeds.FeedFor(ctx, domain.ParseAsset(p.Token))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, feed)
}

func (h *handler) setFeed(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	operator := c.Get("address").(domain.Address)

	p := struct {
		Token domain.Address `json:"token"`
		Feed  domain.Address `json:"feed" validate:"required"`
	}{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.feeds.SetFeed(ctx, operator, domain.ParseAsset(p.Token), p.Feed); err != nil {
		ctx.WithField("err", err).Error("feeds.SetFeed failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}
