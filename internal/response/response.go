// Package response builds the error payloads the API writes: a status
// code plus a message the client surfaces verbatim. Successful responses
// carry the resource itself, not an envelope.
package response

import "github.com/yourname/wellnesstracker/internal"

func BadRequest(msg string) *internal.AppError {
	return internal.NewAppError(400, msg)
}

func Unauthorized(msg string) *internal.AppError {
	return internal.NewAppError(401, msg)
}

func NotFound(msg string) *internal.AppError {
	return internal.NewAppError(404, msg)
}

func Conflict(msg string) *internal.AppError {
	return internal.NewAppError(409, msg)
}

func InternalError(msg string) *internal.AppError {
	return internal.NewAppError(500, msg)
}

func NewAppError(status int, msg string) *internal.AppError {
	return internal.NewAppError(status, msg)
}
