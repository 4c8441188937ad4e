package order

import (
	"net/http"

	"github.com/thetechguyfromvietnam/Simple-Place-Website/internal/pkg/apperror"
)

var (
	ErrNoItems = apperror.New(
		apperror.CodeInvalidInput,
		"Order must contain at least one item",
		http.StatusBadRequest,
	)

	ErrInvalidDeliveryTime = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid delivery time preference",
		http.StatusBadRequest,
	)
)
