package http

import (
	"market-marts/internal/dto"
	"net/http"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupSignals(base *echo.Group) {
	v1 := base.Group("/v1/signals")
	{
		v1.GET("", h.ListSignals)
	}
}

// ListSignals serves the fact_signals mart, newest and best-scored first.
func (h *HttpAPIHandler) ListSignals(c echo.Context) error {
	var req dto.ListSignalsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}
	if err := h.validator.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}
	if req.Limit == 0 {
		req.Limit = 100
	}

	signals, err := h.service.MartQueryService.LatestSignals(c.Request().Context(), req.Limit, req.MinQuality)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dto.NewBaseResponse(http.StatusInternalServerError, err.Error(), nil))
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("OK", signals))
}
