package booking

import (
	"net/http"

	"github.com/thetechguyfromvietnam/Simple-Place-Website/internal/pkg/apperror"
)

var (
	ErrPastDate = apperror.New(
		apperror.CodeInvalidInput,
		"Cannot book for past dates",
		http.StatusBadRequest,
	)

	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date format",
		http.StatusBadRequest,
	)

	ErrInvalidTimeFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid time format",
		http.StatusBadRequest,
	)

	ErrGuestsRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Minimum 1 guest required",
		http.StatusBadRequest,
	)
)
