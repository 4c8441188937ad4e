package order

import (
	"context"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/thetechguyfromvietnam/Simple-Place-Website/internal/cart"
	"github.com/thetechguyfromvietnam/Simple-Place-Website/internal/notify"
	"github.com/thetechguyfromvietnam/Simple-Place-Website/internal/pkg/apperror"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type Service interface {
	// Submit validates the order, recomputes its totals from the line items,
	// mints the order id and timestamp, and dispatches notifications
	// best-effort. The DispatchResult is only meaningful when err is nil.
	Submit(ctx context.Context, req OrderRequest) (OrderRecord, notify.DispatchResult, error)
}

type service struct {
	validate *validator.Validate
	notifier notify.Service
	logger   *zap.Logger
	now      func() time.Time
}

type Deps struct {
	Notifier notify.Service
	Logger   *zap.Logger
	Now      func() time.Time
}

func NewService(deps Deps) Service {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}

	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	return &service{
		validate: v,
		notifier: deps.Notifier,
		logger:   deps.Logger.Named("order.service"),
		now:      deps.Now,
	}
}

func (s *service) Submit(ctx context.Context, req OrderRequest) (OrderRecord, notify.DispatchResult, error) {
	if err := s.validateRequest(&req); err != nil {
		s.logger.Warn("order rejected", zap.Error(err))
		return OrderRecord{}, notify.DispatchResult{}, err
	}

	now := s.now()
	record := OrderRecord{
		OrderRequest: req,
		OrderID:      fmt.Sprintf("SP-%d", now.UnixMilli()),
		CreatedAt:    now.UTC().Format(time.RFC3339),
	}

	s.logger.Info("order accepted",
		zap.String("order_id", record.OrderID),
		zap.Int("total_items", record.TotalItems),
		zap.Int64("total_price", record.TotalPrice),
	)

	lines := make([]notify.OrderLine, 0, len(record.Items))
	for _, item := range record.Items {
		lines = append(lines, notify.OrderLine{
			Name:      item.Name,
			UnitPrice: item.Price,
			Quantity:  item.Quantity,
		})
	}

	res := s.notifier.DispatchOrder(ctx, notify.Order{
		OrderID:             record.OrderID,
		FullName:            record.FullName,
		Email:               record.Email,
		Phone:               record.Phone,
		Address:             record.Address,
		Items:               lines,
		TotalItems:          record.TotalItems,
		TotalPrice:          record.TotalPrice,
		SpecialInstructions: record.SpecialInstructions,
		DeliveryTime:        record.DeliveryTime,
		CreatedAt:           record.CreatedAt,
	})

	return record, res, nil
}

// validateRequest checks required fields, then rebuilds the cart server-side
// and rejects a client total that disagrees with the item arithmetic.
// Recomputed totals overwrite the client-sent ones on success.
func (s *service) validateRequest(req *OrderRequest) error {
	if err := s.validate.Struct(*req); err != nil {
		return mapValidationError(err)
	}
	if len(req.Items) == 0 {
		return ErrNoItems
	}

	store := cart.NewStore(cart.NewMemoryStorage(), s.logger)
	for _, item := range req.Items {
		store.AddItem(cart.Item{
			Name:      item.Name,
			UnitPrice: item.Price,
			Size:      item.Size,
			Style:     item.Style,
		}, item.Quantity)
	}

	expected := store.TotalPrice()
	if req.TotalPrice != expected {
		return apperror.New(
			apperror.CodeInvalidInput,
			fmt.Sprintf("Order total does not match item prices (expected %d)", expected),
			http.StatusBadRequest,
		)
	}
	req.TotalItems = store.TotalItems()

	return nil
}

func mapValidationError(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperror.New(apperror.CodeInvalidInput, "Invalid request", http.StatusBadRequest)
	}

	var missing []string
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required", "min":
			missing = append(missing, fe.Field())
		case "email":
			return apperror.New(apperror.CodeInvalidInput, "Invalid email address", http.StatusBadRequest)
		case "oneof":
			return ErrInvalidDeliveryTime
		case "gte":
			return apperror.New(
				apperror.CodeInvalidInput,
				fmt.Sprintf("Invalid value for %s", fe.Field()),
				http.StatusBadRequest,
			)
		}
	}
	if len(missing) > 0 {
		return apperror.New(
			apperror.CodeInvalidInput,
			fmt.Sprintf("Missing required fields: %s", strings.Join(missing, ", ")),
			http.StatusBadRequest,
		)
	}
	return apperror.New(apperror.CodeInvalidInput, "Invalid request", http.StatusBadRequest)
}
