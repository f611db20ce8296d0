package export

import (
	"net/http"

	"github.com/TirlaP/lista-firme-backend/internal/shared/apperror"
)

var (
	ErrUnsupportedFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Export format must be csv or xlsx",
		http.StatusBadRequest,
	)
	ErrQuotaExceeded = apperror.New(
		apperror.CodeQuotaExceeded,
		"Daily export quota exhausted",
		http.StatusTooManyRequests,
	)
)
