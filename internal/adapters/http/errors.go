package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/jsamuelsen/quotes-api/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotes-api/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quotes-api/internal/domain"
)

// MsgRequestValidation is returned when the request body fails validation.
const MsgRequestValidation = "request validation failed"

// MsgMalformedBody is returned when the request body cannot be decoded.
const MsgMalformedBody = "request body is malformed"

// MapDomainError maps an error to an HTTP status code and error response.
// Unknown errors are mapped to 500 Internal Server Error with a generic message.
func MapDomainError(err error) (int, *dto.ErrorResponse) {
	if err == nil {
		return http.StatusOK, nil
	}

	var authErr *middleware.AuthenticationError
	if errors.As(err, &authErr) {
		return http.StatusUnauthorized, dto.NewErrorResponse(dto.ErrorCodeUnauthorized, authErr.Message)
	}

	if dto.IsValidationError(err) {
		return http.StatusBadRequest, dto.NewErrorResponseWithDetails(
			dto.ErrorCodeValidation,
			MsgRequestValidation,
			dto.ValidationErrors(err),
		)
	}

	if errors.Is(err, dto.ErrBinding) {
		return http.StatusBadRequest, dto.NewErrorResponse(dto.ErrorCodeBadRequest, MsgMalformedBody)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return http.StatusServiceUnavailable, dto.NewErrorResponse(dto.ErrorCodeTimeout, "request timeout exceeded")
	}

	msg, _ := domain.PublicMessage(err)

	switch domain.KindOf(err) {
	case domain.KindValidation:
		resp := dto.NewErrorResponse(dto.ErrorCodeValidation, msg)

		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) && validationErr.Field != "" {
			resp.Details = map[string]string{validationErr.Field: validationErr.Message}
		}

		return http.StatusBadRequest, resp

	case domain.KindUnauthorized:
		return http.StatusUnauthorized, dto.NewErrorResponse(dto.ErrorCodeUnauthorized, msg)

	case domain.KindNotFound:
		return http.StatusNotFound, dto.NewErrorResponse(dto.ErrorCodeNotFound, msg)

	case domain.KindConflict:
		return http.StatusConflict, dto.NewErrorResponse(dto.ErrorCodeConflict, msg)
	}

	return http.StatusInternalServerError, dto.NewErrorResponse(dto.ErrorCodeInternal, dto.MsgInternal)
}
