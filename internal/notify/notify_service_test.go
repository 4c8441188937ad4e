package notify_test

import (
	"context"
	"errors"
	"testing"

	"github.com/thetechguyfromvietnam/Simple-Place-Website/internal/email"
	"github.com/thetechguyfromvietnam/Simple-Place-Website/internal/notify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMailer struct {
	sent   []email.Message
	failTo map[string]error
}

func (f *fakeMailer) Send(_ context.Context, msg email.Message) error {
	if err, ok := f.failTo[msg.To]; ok {
		return err
	}
	f.sent = append(f.sent, msg)
	return nil
}

const operatorEmail = "simpleplace@gmail.com"

func testBooking() notify.Booking {
	return notify.Booking{
		BookingID: "SP1756500000000",
		FirstName: "Ana",
		LastName:  "Tran",
		Email:     "a@b.com",
		Phone:     "123",
		Date:      "2026-09-01",
		Time:      "19:00",
		Guests:    4,
		CreatedAt: "2026-08-30T12:00:00Z",
	}
}

func testOrder() notify.Order {
	return notify.Order{
		OrderID:  "SP-1756500000000",
		FullName: "Ana Tran",
		Email:    "a@b.com",
		Phone:    "123",
		Address:  "12 Nguyen Hue",
		Items: []notify.OrderLine{
			{Name: "Pizza Margherita", UnitPrice: 120000, Quantity: 2},
			{Name: "Taco Crispy", UnitPrice: 45000, Quantity: 3},
		},
		TotalItems:   5,
		TotalPrice:   375000,
		DeliveryTime: "asap",
		CreatedAt:    "2026-08-30T12:00:00Z",
	}
}

func TestService_DispatchBooking(t *testing.T) {
	t.Run("sends_operator_and_customer_messages", func(t *testing.T) {
		mailer := &fakeMailer{}
		svc := notify.NewService(notify.Deps{Mailer: mailer, OperatorEmail: operatorEmail})

		res := svc.DispatchBooking(context.Background(), testBooking())
		assert.True(t, res.AllSent())
		assert.Empty(t, res.Warning())

		require.Len(t, mailer.sent, 2)
		assert.Equal(t, operatorEmail, mailer.sent[0].To)
		assert.Equal(t, "New Booking - Ana Tran - 2026-09-01 at 19:00", mailer.sent[0].Subject)
		assert.Equal(t, "a@b.com", mailer.sent[1].To)
		assert.Equal(t, "Booking Confirmation - Simple Place - 2026-09-01 at 19:00", mailer.sent[1].Subject)

		assert.Contains(t, mailer.sent[0].HTML, "SP1756500000000")
		assert.Contains(t, mailer.sent[1].Text, "Dear Ana")
	})

	t.Run("operator_failure_still_reaches_the_customer", func(t *testing.T) {
		mailer := &fakeMailer{failTo: map[string]error{operatorEmail: errors.New("relay down")}}
		svc := notify.NewService(notify.Deps{Mailer: mailer, OperatorEmail: operatorEmail})

		res := svc.DispatchBooking(context.Background(), testBooking())
		assert.False(t, res.OperatorSent)
		assert.True(t, res.CustomerSent)
		assert.NotEmpty(t, res.Warning())

		require.Len(t, mailer.sent, 1)
		assert.Equal(t, "a@b.com", mailer.sent[0].To)
	})
}

func TestService_DispatchOrder(t *testing.T) {
	t.Run("sends_operator_and_customer_messages", func(t *testing.T) {
		mailer := &fakeMailer{}
		svc := notify.NewService(notify.Deps{Mailer: mailer, OperatorEmail: operatorEmail})

		res := svc.DispatchOrder(context.Background(), testOrder())
		assert.True(t, res.AllSent())

		require.Len(t, mailer.sent, 2)
		assert.Equal(t, "New Food Order - Ana Tran - 5 items", mailer.sent[0].Subject)
		assert.Equal(t, "Order Confirmation - Simple Place - SP-1756500000000", mailer.sent[1].Subject)

		// line totals and the order total are rendered with VND formatting
		assert.Contains(t, mailer.sent[0].HTML, "240.000 ₫")
		assert.Contains(t, mailer.sent[0].HTML, "375.000 ₫")
		assert.Contains(t, mailer.sent[1].Text, "Taco Crispy x3: 135.000 ₫")
	})

	t.Run("total_failure_is_reported_not_returned", func(t *testing.T) {
		mailer := &fakeMailer{failTo: map[string]error{
			operatorEmail: errors.New("relay down"),
			"a@b.com":     errors.New("relay down"),
		}}
		svc := notify.NewService(notify.Deps{Mailer: mailer, OperatorEmail: operatorEmail})

		res := svc.DispatchOrder(context.Background(), testOrder())
		assert.False(t, res.OperatorSent)
		assert.False(t, res.CustomerSent)
		assert.NotEmpty(t, res.Warning())
		assert.Empty(t, mailer.sent)
	})
}

func TestFormatVND(t *testing.T) {
	cases := []struct {
		amount int64
		want   string
	}{
		{0, "0 ₫"},
		{500, "500 ₫"},
		{45000, "45.000 ₫"},
		{120000, "120.000 ₫"},
		{1375000, "1.375.000 ₫"},
		{-45000, "-45.000 ₫"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, notify.FormatVND(tc.amount), "%d", tc.amount)
	}
}
