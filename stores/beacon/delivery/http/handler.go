package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bidhaus/goauction/base/ctx"
	"github.com/bidhaus/goauction/base/delivery"
	"github.com/bidhaus/goauction/domain"
	"github.com/bidhaus/goauction/domain/beacon"
)

type handler struct {
	factory beacon.FactoryUsecase
}

func New(e *echo.Echo, authMiddleware echo.MiddlewareFunc, factory beacon.FactoryUsecase) {
	h := &handler{
		factory: factory,
	}

	g := e.Group("/instances")
	g.POST("", h.createInstance, authMiddleware)
	g.GET("", h.listInstances)
	g.GET("/:instanceRef", h.getInstance)

	b := e.Group("/beacon")
	b.GET("", h.current)
	b.POST("/upgrade", h.upgradeAll, authMiddleware)
}

func (h *handler) createInstance(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	creator := c.Get("address").(domain.Address)

	instance, err := h.factory.CreateInstance(ctx, creator)
	if err != nil {
		ctx.WithField("err", err).Error("factory.CreateInstance failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, instance)
}

func (h *handler) listInstances(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := struct {
		Offset int `query:"offset"`
		Limit  int `query:"limit"`
	}{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if p.Limit == 0 || p.Limit > 100 {
		p.Limit = 100
	}

	res, err := h.factory.Instances(ctx, p.Offset, p.Limit)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) getInstance(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := struct {
		InstanceRef domain.InstanceRef `param:"instanceRef" validate:"required"`
	}{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	instance, err := h.factory.GetInstance(ctx, p.InstanceRef)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, instance)
}

func (h *handler) current(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	ref, err := h.factory.Current(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	engine, err := h.factory.Resolve(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	res := struct {
		LogicRef domain.LogicRef `json:"logicRef"`
		Version  string          `json:"version"`
	}{
		LogicRef: ref,
		Version:  engine.Version(),
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) upgradeAll(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	operator := c.Get("address").(domain.Address)

	p := struct {
		LogicRef domain.LogicRef `json:"logicRef" validate:"required"`
	}{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.factory.UpgradeAll(ctx, operator, p.LogicRef); err != nil {
		ctx.WithField("err", err).Error("factory.UpgradeAll failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}
