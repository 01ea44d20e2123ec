package dto

import "net/http"

type BaseResponse struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func NewBaseResponse(code int, message string, data interface{}) *BaseResponse {
	return &BaseResponse{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

func NewBadRequestResponse(message string) *BaseResponse {
	return NewBaseResponse(http.StatusBadRequest, message, nil)
}

func NewSuccessResponse(message string, data interface{}) *BaseResponse {
	return NewBaseResponse(http.StatusOK, message, data)
}

type ListSignalsRequest struct {
	Limit      int `query:"limit" validate:"omitempty,min=1,max=500"`
	MinQuality int `query:"min_quality" validate:"omitempty,min=0,max=3"`
}

type ListStocksRequest struct {
	// Liquidity floor in millions of shares; falls back to the configured
	// min_volume_threshold when absent.
	MinVolumeMillions *float64 `query:"min_volume_millions" validate:"omitempty,min=0"`
}

type BreadthRequest struct {
	Days int `query:"days" validate:"omitempty,min=1,max=365"`
}
