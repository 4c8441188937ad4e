package notify

import (
	"context"
	"time"

	"github.com/thetechguyfromvietnam/Simple-Place-Website/internal/email"

	"go.uber.org/zap"
)

// Booking is the accepted reservation handed to the dispatcher. The
// dispatcher only formats these fields; all validation has already happened.
type Booking struct {
	BookingID       string
	FirstName       string
	LastName        string
	Email           string
	Phone           string
	Date            string
	Time            string
	Guests          int
	SpecialRequests string
	CreatedAt       string
}

// OrderLine mirrors one submitted order item for formatting.
type OrderLine struct {
	Name      string
	UnitPrice int64
	Quantity  int
}

type Order struct {
	OrderID             string
	FullName            string
	Email               string
	Phone               string
	Address             string
	Items               []OrderLine
	TotalItems          int
	TotalPrice          int64
	SpecialInstructions string
	DeliveryTime        string
	CreatedAt           string
}

// DispatchResult records the per-message outcome of a best-effort dispatch.
// A failed send never fails the enclosing submission.
type DispatchResult struct {
	OperatorSent bool
	CustomerSent bool
}

func (r DispatchResult) AllSent() bool {
	return r.OperatorSent && r.CustomerSent
}

// Warning is the non-fatal note added to the HTTP response when any message
// failed; empty when everything went out.
func (r DispatchResult) Warning() string {
	if r.AllSent() {
		return ""
	}
	return "Your request was received, but confirmation emails could not be sent. We will contact you directly."
}

type Service interface {
	DispatchBooking(ctx context.Context, b Booking) DispatchResult
	DispatchOrder(ctx context.Context, o Order) DispatchResult
}

type service struct {
	mailer        email.Service
	operatorEmail string
	timeout       time.Duration
	logger        *zap.Logger
}

type Deps struct {
	Mailer        email.Service
	OperatorEmail string
	Timeout       time.Duration
	Logger        *zap.Logger
}

func NewService(deps Deps) Service {
	if deps.Timeout <= 0 {
		deps.Timeout = 10 * time.Second
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	return &service{
		mailer:        deps.Mailer,
		operatorEmail: deps.OperatorEmail,
		timeout:       deps.Timeout,
		logger:        deps.Logger.Named("notify.service"),
	}
}

func (s *service) DispatchBooking(ctx context.Context, b Booking) DispatchResult {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	logger := s.logger.With(zap.String("booking_id", b.BookingID))
	res := DispatchResult{}

	if err := s.mailer.Send(ctx, operatorBookingMessage(b, s.operatorEmail)); err != nil {
		logger.Error("operator booking notification failed", zap.Error(err))
	} else {
		res.OperatorSent = true
	}

	if err := s.mailer.Send(ctx, customerBookingMessage(b)); err != nil {
		logger.Error("customer booking confirmation failed", zap.Error(err))
	} else {
		res.CustomerSent = true
	}

	if res.AllSent() {
		logger.Info("booking notifications sent")
	}
	return res
}

func (s *service) DispatchOrder(ctx context.Context, o Order) DispatchResult {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	logger := s.logger.With(zap.String("order_id", o.OrderID))
	res := DispatchResult{}

	if err := s.mailer.Send(ctx, operatorOrderMessage(o, s.operatorEmail)); err != nil {
		logger.Error("operator order notification failed", zap.Error(err))
	} else {
		res.OperatorSent = true
	}

	if err := s.mailer.Send(ctx, customerOrderMessage(o)); err != nil {
		logger.Error("customer order confirmation failed", zap.Error(err))
	} else {
		res.CustomerSent = true
	}

	if res.AllSent() {
		logger.Info("order notifications sent")
	}
	return res
}
