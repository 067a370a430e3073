package usererrors

import (
	"go-ems/internal/shared/apperror"
	"net/http"
)

var (
	ErrUsernameTaken = apperror.FieldError(
		"username",
		"A user with that username already exists.",
	)

	ErrPasswordTooLong = apperror.FieldError(
		"password",
		"Ensure this field has no more than 72 bytes.",
	)

	ErrPasswordMismatch = apperror.FieldError(
		"password_confirmation",
		"Passwords do not match",
	)

	ErrHashPassword = apperror.New(
		apperror.CodeInternalError,
		"Failed to secure password",
		http.StatusInternalServerError,
	)
)
