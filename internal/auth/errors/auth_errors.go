package autherrors

import (
	"go-ems/internal/shared/apperror"
	"net/http"
)

var (
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid credentials",
		http.StatusUnauthorized,
	)

	ErrProfileNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee profile not found",
		http.StatusNotFound,
	)
)
