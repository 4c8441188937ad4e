package response

import (
	"time"

	"github.com/gin-gonic/gin"
)

// APIResponse is the envelope every endpoint writes. BookingID/OrderID and
// Warning are only populated by the submission endpoints; the frontend keys
// off the top-level success flag.
type APIResponse struct {
	Success   bool         `json:"success"`
	Message   string       `json:"message,omitempty"`
	Data      interface{}  `json:"data,omitempty"`
	BookingID string       `json:"bookingId,omitempty"`
	OrderID   string       `json:"orderId,omitempty"`
	Warning   string       `json:"warning,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	RequestID string       `json:"requestId,omitempty"`
	Timestamp string       `json:"timestamp"`
}

type ErrorDetail struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// Write stamps the request id and timestamp and emits the envelope as-is.
func Write(c *gin.Context, status int, resp APIResponse) {
	resp.RequestID = c.GetString("X-Request-ID")
	resp.Timestamp = time.Now().Format(time.RFC3339)
	c.JSON(status, resp)
}

func Success(c *gin.Context, status int, message string, data interface{}) {
	Write(c, status, APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func Error(c *gin.Context, status int, errCode string, message string, details interface{}) {
	Write(c, status, APIResponse{
		Success: false,
		Message: message,
		Error: &ErrorDetail{
			Code:    errCode,
			Message: message,
			Details: details,
		},
	})
}
