package http

import (
	"market-marts/internal/dto"
	"net/http"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupStocks(base *echo.Group) {
	v1 := base.Group("/v1/stocks")
	{
		v1.GET("", h.ListStocks)
	}
}

// ListStocks serves the dim_stocks mart ordered by fundamental health, then
// market cap.
func (h *HttpAPIHandler) ListStocks(c echo.Context) error {
	var req dto.ListStocksRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}
	if err := h.validator.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}

	stocks, err := h.service.MartQueryService.Stocks(c.Request().Context(), req.MinVolumeMillions)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dto.NewBaseResponse(http.StatusInternalServerError, err.Error(), nil))
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("OK", stocks))
}
