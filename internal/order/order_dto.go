package order

// ==================== REQUEST STRUCTS ====================

// OrderItem is one submitted cart line. Price is the unit price in VND
// (integer, no subunits). Size/Style are optional variant attributes.
type OrderItem struct {
	Name     string `json:"name" validate:"required"`
	Price    int64  `json:"price" validate:"gte=0"`
	Quantity int    `json:"quantity" validate:"required,gte=1"`
	Size     string `json:"size,omitempty"`
	Style    string `json:"style,omitempty"`
}

// OrderRequest is the food order payload posted by the website cart page.
// TotalPrice and TotalItems are client-computed and re-derived server-side.
type OrderRequest struct {
	FullName            string      `json:"fullName" validate:"required"`
	Email               string      `json:"email" validate:"required,email"`
	Phone               string      `json:"phone" validate:"required"`
	Address             string      `json:"address" validate:"required"`
	Items               []OrderItem `json:"items" validate:"required,min=1,dive"`
	TotalPrice          int64       `json:"totalPrice" validate:"required"`
	TotalItems          int         `json:"totalItems"`
	SpecialInstructions string      `json:"specialInstructions"`
	DeliveryTime        string      `json:"deliveryTime" validate:"omitempty,oneof=asap 1hour 2hours specific"`
}

// ==================== RESPONSE STRUCTS ====================

// OrderRecord is the accepted, immutable order: the request with totals
// recomputed from its items, plus the generated id and creation timestamp.
type OrderRecord struct {
	OrderRequest
	OrderID   string `json:"orderId"`
	CreatedAt string `json:"createdAt"`
}
