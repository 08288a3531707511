package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bidhaus/goauction/base/ctx"
	"github.com/bidhaus/goauction/base/delivery"
	"github.com/bidhaus/goauction/domain"
)

type handler struct {
	events domain.EventRepo
}

func New(e *echo.Echo, events domain.EventRepo) {
	h := &handler{
		events: events,
	}

	g := e.Group("/events")
	g.GET("", h.listEvents)
}

func (h *handler) listEvents(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := struct {
		InstanceRef domain.InstanceRef `query:"instanceRef"`
		Offset      int                `query:"offset"`
		Limit       int                `query:"limit"`
	}{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if p.Limit == 0 || p.Limit > 100 {
		p.Limit = 100
	}

	res, err := h.events.Search(ctx, p.InstanceRef, p.Offset, p.Limit)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
