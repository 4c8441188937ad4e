package order

import (
	"net/http"

	"github.com/thetechguyfromvietnam/Simple-Place-Website/internal/pkg/apperror"
	"github.com/thetechguyfromvietnam/Simple-Place-Website/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(svc Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("order.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("order.handler")
	}
	return &Handler{service: svc, logger: l}
}

// Submit handles POST /api/order.
func (h *Handler) Submit(c *gin.Context) {
	var req OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("order body rejected", zap.Error(err))
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid request body", err.Error())
		return
	}

	record, dispatch, err := h.service.Submit(c.Request.Context(), req)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Write(c, http.StatusOK, response.APIResponse{
		Success: true,
		Message: "Order confirmed successfully!",
		OrderID: record.OrderID,
		Data:    record,
		Warning: dispatch.Warning(),
	})
}
