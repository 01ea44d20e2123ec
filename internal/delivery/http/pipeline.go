package http

import (
	"market-marts/internal/dto"
	"net/http"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupPipeline(base *echo.Group) {
	v1 := base.Group("/v1/pipeline")
	{
		v1.POST("/run", h.RunPipeline)
	}
}

// RunPipeline triggers a mart refresh outside the cron schedule.
func (h *HttpAPIHandler) RunPipeline(c echo.Context) error {
	result, err := h.service.PipelineService.Run(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dto.NewBaseResponse(http.StatusInternalServerError, err.Error(), nil))
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("Mart refresh completed", result))
}
