package booking_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/thetechguyfromvietnam/Simple-Place-Website/internal/booking"
	"github.com/thetechguyfromvietnam/Simple-Place-Website/internal/notify"
	"github.com/thetechguyfromvietnam/Simple-Place-Website/internal/pkg/apperror"
	"github.com/thetechguyfromvietnam/Simple-Place-Website/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBookingService struct {
	submitFn func(ctx context.Context, req booking.BookingRequest) (booking.BookingRecord, notify.DispatchResult, error)
}

func (f *fakeBookingService) Submit(ctx context.Context, req booking.BookingRequest) (booking.BookingRecord, notify.DispatchResult, error) {
	return f.submitFn(ctx, req)
}

func newBookingRouter(svc booking.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/book", booking.NewHandler(svc).Submit)
	return router
}

func TestBookingHandler_Submit(t *testing.T) {
	t.Run("returns_booking_id_on_success", func(t *testing.T) {
		svc := &fakeBookingService{
			submitFn: func(_ context.Context, req booking.BookingRequest) (booking.BookingRecord, notify.DispatchResult, error) {
				record := booking.BookingRecord{BookingRequest: req, BookingID: "SP1756500000000", CreatedAt: "2026-08-30T12:00:00Z"}
				return record, notify.DispatchResult{OperatorSent: true, CustomerSent: true}, nil
			},
		}
		router := newBookingRouter(svc)

		body := `{"firstName":"Ana","lastName":"Tran","email":"a@b.com","phone":"123","date":"2026-09-01","time":"19:00","guests":4}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/book", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp response.APIResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, "Booking confirmed successfully!", resp.Message)
		assert.Equal(t, "SP1756500000000", resp.BookingID)
		assert.Empty(t, resp.Warning)
	})

	t.Run("propagates_dispatch_warning", func(t *testing.T) {
		svc := &fakeBookingService{
			submitFn: func(_ context.Context, req booking.BookingRequest) (booking.BookingRecord, notify.DispatchResult, error) {
				return booking.BookingRecord{BookingRequest: req, BookingID: "SP1"}, notify.DispatchResult{}, nil
			},
		}
		router := newBookingRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/book", strings.NewReader(`{"firstName":"Ana"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp response.APIResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.NotEmpty(t, resp.Warning)
	})

	t.Run("malformed_body_is_a_400", func(t *testing.T) {
		svc := &fakeBookingService{
			submitFn: func(_ context.Context, _ booking.BookingRequest) (booking.BookingRecord, notify.DispatchResult, error) {
				t.Fatal("service must not be called for a malformed body")
				return booking.BookingRecord{}, notify.DispatchResult{}, nil
			},
		}
		router := newBookingRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/book", strings.NewReader(`{"guests":"four"`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)

		var resp response.APIResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.Equal(t, "Invalid request body", resp.Message)
	})

	t.Run("service_errors_use_their_http_status", func(t *testing.T) {
		svc := &fakeBookingService{
			submitFn: func(_ context.Context, _ booking.BookingRequest) (booking.BookingRecord, notify.DispatchResult, error) {
				return booking.BookingRecord{}, notify.DispatchResult{}, booking.ErrPastDate
			},
		}
		router := newBookingRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/book", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)

		var resp response.APIResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		require.NotNil(t, resp.Error)
		assert.Equal(t, apperror.CodeInvalidInput, resp.Error.Code)
		assert.Equal(t, "Cannot book for past dates", resp.Error.Message)
	})
}
