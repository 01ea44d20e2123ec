package http

import (
	"market-marts/internal/dto"
	"net/http"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupBreadth(base *echo.Group) {
	v1 := base.Group("/v1/market")
	{
		v1.GET("/breadth", h.GetBreadth)
	}
}

// GetBreadth serves the fact_market_breadth mart, newest date first.
func (h *HttpAPIHandler) GetBreadth(c echo.Context) error {
	var req dto.BreadthRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}
	if err := h.validator.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}
	if req.Days == 0 {
		req.Days = 30
	}

	breadth, err := h.service.MartQueryService.Breadth(c.Request().Context(), req.Days)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dto.NewBaseResponse(http.StatusInternalServerError, err.Error(), nil))
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("OK", breadth))
}
