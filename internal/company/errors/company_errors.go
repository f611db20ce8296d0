package companyerrors

import (
	"net/http"

	"github.com/TirlaP/lista-firme-backend/internal/shared/apperror"
)

var (
	ErrCompanyNotFound = apperror.New(
		apperror.CodeNotFound,
		"Company not found",
		http.StatusNotFound,
	)
	ErrInvalidCUI = apperror.New(
		apperror.CodeInvalidInput,
		"CUI must be a positive number",
		http.StatusBadRequest,
	)
	ErrQueryTooShort = apperror.New(
		apperror.CodeInvalidInput,
		"Search query must be at least 2 characters",
		http.StatusBadRequest,
	)
	ErrInvalidTimeRange = apperror.New(
		apperror.CodeInvalidInput,
		"timeRange must be one of today, yesterday, last7days, last30days",
		http.StatusBadRequest,
	)
	ErrInvalidDateWindow = apperror.New(
		apperror.CodeInvalidInput,
		"customStartDate and customEndDate must be provided together as YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrConflictingWindow = apperror.New(
		apperror.CodeInvalidInput,
		"timeRange cannot be combined with a custom date window",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown company status filter",
		http.StatusBadRequest,
	)
	ErrStoreFailure = apperror.New(
		apperror.CodeServiceUnavailable,
		"Company store is unavailable",
		http.StatusServiceUnavailable,
	)
)
