package notify

import (
	"fmt"
	"strings"

	"github.com/thetechguyfromvietnam/Simple-Place-Website/internal/email"
)

const restaurantFooter = `Simple Place Restaurant
199F Nguyễn Văn Hưởng, Thảo Điền, Quận 2, Hồ Chí Minh, Vietnam
Phone: (+84) 904421089 | Email: simpleplace@gmail.com
Open Everyday: 10:00 AM - 10:00 PM`

// FormatVND renders an integer dong amount with thousands separators,
// e.g. 120000 -> "120.000 ₫". VND has no subunits.
func FormatVND(amount int64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	digits := fmt.Sprintf("%d", amount)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}

	out := b.String() + " ₫"
	if negative {
		out = "-" + out
	}
	return out
}

func operatorBookingMessage(b Booking, operatorEmail string) email.Message {
	rows := bookingRows(b, true)
	return email.Message{
		To:      operatorEmail,
		Subject: fmt.Sprintf("New Booking - %s %s - %s at %s", b.FirstName, b.LastName, b.Date, b.Time),
		HTML: wrapHTML("🍕 New Booking - Simple Place",
			"<p>A new booking has been made at Simple Place restaurant.</p>"+
				detailBlock("Booking Details", rows)+
				"<p><strong>Action Required:</strong> Please confirm this booking by calling the customer or responding to their email.</p>"),
		Text: "A new booking has been made at Simple Place restaurant.\n\n" +
			textRows(rows) + "\n\n" + restaurantFooter,
	}
}

func customerBookingMessage(b Booking) email.Message {
	rows := bookingRows(b, false)
	return email.Message{
		To:      b.Email,
		Subject: fmt.Sprintf("Booking Confirmation - Simple Place - %s at %s", b.Date, b.Time),
		HTML: wrapHTML("✅ Booking Confirmed - Simple Place",
			fmt.Sprintf("<p>Dear %s,</p><p>Thank you for choosing Simple Place! Your reservation has been received and we look forward to serving you.</p>", b.FirstName)+
				detailBlock("Your Booking Details", rows)+
				"<p><strong>Important:</strong> Please arrive 15 minutes before your reservation time. If you need to make any changes, please call us at (+84) 904421089.</p>"),
		Text: fmt.Sprintf("Dear %s,\n\nThank you for choosing Simple Place! Your reservation has been received.\n\n", b.FirstName) +
			textRows(rows) + "\n\nPlease arrive 15 minutes before your reservation time.\n\n" + restaurantFooter,
	}
}

func operatorOrderMessage(o Order, operatorEmail string) email.Message {
	rows := orderRows(o, true)
	return email.Message{
		To:      operatorEmail,
		Subject: fmt.Sprintf("New Food Order - %s - %d items", o.FullName, o.TotalItems),
		HTML: wrapHTML("🍕 New Food Order - Simple Place",
			"<p>A new food order has been placed at Simple Place restaurant.</p>"+
				detailBlock("Order Details", rows)+
				itemBlock(o)+
				"<p><strong>Action Required:</strong> Please prepare this order and contact the customer when ready.</p>"),
		Text: "A new food order has been placed at Simple Place restaurant.\n\n" +
			textRows(rows) + "\n\n" + textItems(o) + "\n\n" + restaurantFooter,
	}
}

func customerOrderMessage(o Order) email.Message {
	rows := orderRows(o, false)
	return email.Message{
		To:      o.Email,
		Subject: fmt.Sprintf("Order Confirmation - Simple Place - %s", o.OrderID),
		HTML: wrapHTML("✅ Order Confirmed - Simple Place",
			fmt.Sprintf("<p>Dear %s,</p><p>Thank you for your order! We're excited to prepare your delicious meal.</p>", o.FullName)+
				detailBlock("Your Order Details", rows)+
				itemBlock(o)+
				"<p><strong>Important:</strong> We'll contact you when your order is ready for pickup/delivery. If you need to make any changes, please call us at (+84) 904421089.</p>"),
		Text: fmt.Sprintf("Dear %s,\n\nThank you for your order! We're excited to prepare your meal.\n\n", o.FullName) +
			textRows(rows) + "\n\n" + textItems(o) + "\n\n" + restaurantFooter,
	}
}

type row struct {
	label string
	value string
}

func bookingRows(b Booking, operator bool) []row {
	rows := []row{{"Booking ID", b.BookingID}}
	if operator {
		rows = append(rows,
			row{"Customer Name", b.FirstName + " " + b.LastName},
			row{"Email", b.Email},
			row{"Phone", orNone(b.Phone)},
		)
	}
	rows = append(rows,
		row{"Date", b.Date},
		row{"Time", b.Time},
		row{"Number of Guests", fmt.Sprintf("%d", b.Guests)},
		row{"Special Requests", orNone(b.SpecialRequests)},
	)
	if operator {
		rows = append(rows, row{"Booking Time", b.CreatedAt})
	}
	return rows
}

func orderRows(o Order, operator bool) []row {
	rows := []row{{"Order ID", o.OrderID}}
	if operator {
		rows = append(rows,
			row{"Customer Name", o.FullName},
			row{"Email", o.Email},
			row{"Phone", o.Phone},
		)
	}
	rows = append(rows,
		row{"Delivery Address", o.Address},
		row{"Delivery Time", o.DeliveryTime},
		row{"Special Instructions", orNone(o.SpecialInstructions)},
	)
	if operator {
		rows = append(rows, row{"Order Time", o.CreatedAt})
	}
	return rows
}

func orNone(v string) string {
	if strings.TrimSpace(v) == "" {
		return "None"
	}
	return v
}

func wrapHTML(title, content string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>%s</title></head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
  <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
    <div style="background: #f59e0b; color: white; padding: 20px; text-align: center; border-radius: 8px 8px 0 0;"><h1>%s</h1></div>
    <div style="background: #f9f9f9; padding: 20px; border-radius: 0 0 8px 8px;">
      %s
      <div style="text-align: center; margin-top: 20px; color: #666; font-size: 12px;"><p>%s</p></div>
    </div>
  </div>
</body>
</html>`, title, title, content, strings.ReplaceAll(restaurantFooter, "\n", "<br>"))
}

func detailBlock(heading string, rows []row) string {
	var b strings.Builder
	b.WriteString(`<div style="background: white; padding: 15px; margin: 15px 0; border-radius: 5px; border-left: 4px solid #f59e0b;">`)
	fmt.Fprintf(&b, "<h3>%s</h3>", heading)
	for _, r := range rows {
		fmt.Fprintf(&b, `<div style="margin: 10px 0;"><span style="font-weight: bold; color: #f59e0b;">%s:</span> %s</div>`, r.label, r.value)
	}
	b.WriteString("</div>")
	return b.String()
}

func itemBlock(o Order) string {
	var b strings.Builder
	b.WriteString(`<div style="background: white; padding: 15px; margin: 15px 0; border-radius: 5px; border-left: 4px solid #f59e0b;">`)
	fmt.Fprintf(&b, "<h3>Order Items (%d items)</h3>", o.TotalItems)
	for _, item := range o.Items {
		fmt.Fprintf(&b,
			`<div style="padding: 8px 0; border-bottom: 1px solid #eee;"><span style="font-weight: bold;">%s x%d</span> <span style="color: #f59e0b; float: right;">%s</span></div>`,
			item.Name, item.Quantity, FormatVND(item.UnitPrice*int64(item.Quantity)))
	}
	fmt.Fprintf(&b,
		`<div style="padding: 8px 0; font-weight: bold; font-size: 1.1em; color: #f59e0b;">Total Amount: %s</div>`,
		FormatVND(o.TotalPrice))
	b.WriteString("</div>")
	return b.String()
}

func textRows(rows []row) string {
	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, fmt.Sprintf("%s: %s", r.label, r.value))
	}
	return strings.Join(lines, "\n")
}

func textItems(o Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Order Items (%d items)\n", o.TotalItems)
	for _, item := range o.Items {
		fmt.Fprintf(&b, "- %s x%d: %s\n", item.Name, item.Quantity, FormatVND(item.UnitPrice*int64(item.Quantity)))
	}
	fmt.Fprintf(&b, "Total Amount: %s", FormatVND(o.TotalPrice))
	return b.String()
}
