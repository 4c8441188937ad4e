package booking

import (
	"context"
	"fmt"
	"net/http"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/thetechguyfromvietnam/Simple-Place-Website/internal/config"
	"github.com/thetechguyfromvietnam/Simple-Place-Website/internal/notify"
	"github.com/thetechguyfromvietnam/Simple-Place-Website/internal/pkg/apperror"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Hours are accepted with or without a leading zero; the service window
// check is what rejects out-of-hours values.
var timePattern = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9]$`)

type Service interface {
	// Submit validates the reservation, mints its id and timestamp, and
	// dispatches notifications best-effort. The DispatchResult is only
	// meaningful when err is nil.
	Submit(ctx context.Context, req BookingRequest) (BookingRecord, notify.DispatchResult, error)
}

type service struct {
	validate *validator.Validate
	notifier notify.Service
	hours    config.ServiceHours
	logger   *zap.Logger
	now      func() time.Time
}

type Deps struct {
	Notifier notify.Service
	Hours    config.ServiceHours
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
	if deps.Hours.ClosingMinutes <= deps.Hours.OpeningMinutes {
		deps.Hours = config.ServiceHours{OpeningMinutes: 10 * 60, ClosingMinutes: 22 * 60}
	}

	v := validator.New()
	v.RegisterTagNameFunc(jsonFieldName)

	return &service{
		validate: v,
		notifier: deps.Notifier,
		hours:    deps.Hours,
		logger:   deps.Logger.Named("booking.service"),
		now:      deps.Now,
	}
}

func (s *service) Submit(ctx context.Context, req BookingRequest) (BookingRecord, notify.DispatchResult, error) {
	if err := s.validateRequest(req); err != nil {
		s.logger.Warn("booking rejected", zap.Error(err))
		return BookingRecord{}, notify.DispatchResult{}, err
	}

	now := s.now()
	record := BookingRecord{
		BookingRequest: req,
		BookingID:      fmt.Sprintf("SP%d", now.UnixMilli()),
		CreatedAt:      now.UTC().Format(time.RFC3339),
	}

	s.logger.Info("booking accepted",
		zap.String("booking_id", record.BookingID),
		zap.String("date", record.Date),
		zap.String("time", record.Time),
		zap.Int("guests", record.Guests),
	)

	res := s.notifier.DispatchBooking(ctx, notify.Booking{
		BookingID:       record.BookingID,
		FirstName:       record.FirstName,
		LastName:        record.LastName,
		Email:           record.Email,
		Phone:           record.Phone,
		Date:            record.Date,
		Time:            record.Time,
		Guests:          record.Guests,
		SpecialRequests: record.SpecialRequests,
		CreatedAt:       record.CreatedAt,
	})

	return record, res, nil
}

func (s *service) validateRequest(req BookingRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return mapValidationError(err)
	}

	date, err := time.ParseInLocation("2006-01-02", req.Date, time.Local)
	if err != nil {
		return ErrInvalidDateFormat
	}
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	if date.Before(today) {
		return ErrPastDate
	}

	if !timePattern.MatchString(req.Time) {
		return ErrInvalidTimeFormat
	}
	minutes := clockMinutes(req.Time)
	if minutes < s.hours.OpeningMinutes || minutes >= s.hours.ClosingMinutes {
		return apperror.New(
			apperror.CodeInvalidInput,
			fmt.Sprintf("Booking time must be between %s and %s",
				formatClock(s.hours.OpeningMinutes), formatClock(s.hours.ClosingMinutes)),
			http.StatusBadRequest,
		)
	}

	if req.Guests < 1 {
		return ErrGuestsRequired
	}

	return nil
}

// mapValidationError folds validator failures into the message shape the
// frontend expects: missing fields are listed by their JSON names.
func mapValidationError(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperror.New(apperror.CodeInvalidInput, "Invalid request", http.StatusBadRequest)
	}

	var missing []string
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			missing = append(missing, fe.Field())
		case "email":
			return apperror.New(apperror.CodeInvalidInput, "Invalid email address", http.StatusBadRequest)
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

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return fld.Name
	}
	return name
}

// clockMinutes assumes the HH:MM pattern already matched.
func clockMinutes(t string) int {
	parts := strings.SplitN(t, ":", 2)
	hours, _ := strconv.Atoi(parts[0])
	minutes, _ := strconv.Atoi(parts[1])
	return hours*60 + minutes
}

func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
