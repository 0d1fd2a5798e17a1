package response

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"blog-service/internal/custom_errors"
	"blog-service/internal/logger"
)

const (
	MsgUnauthorized   = "Unauthorized"
	MsgForbidden      = "Forbidden"
	MsgUserNotFound   = "User not found"
	MsgPostNotFound   = "Post not found"
	MsgInvalidBody    = "Invalid request body"
	MsgInternalServer = "Internal server error"
	MsgTimeout        = "Request timed out"
)

// Envelope is the body of every response. Payload fields sit next to
// success and message at the top level.
type Envelope map[string]any

func JSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// Success writes {success: true, message, ...payload}.
func Success(w http.ResponseWriter, status int, message string, payload Envelope) {
	body := Envelope{"success": true, "message": message}
	for k, v := range payload {
		body[k] = v
	}
	JSON(w, status, body)
}

func Fail(w http.ResponseWriter, status int, message string) {
	JSON(w, status, Envelope{"success": false, "message": message})
}

// Error maps err to a status code and client-facing message. Unknown errors
// are logged and reported as 500 without detail.
func Error(w http.ResponseWriter, log *logger.Logger, err error) {
	var inputErr *custom_errors.InputError
	switch {
	case errors.As(err, &inputErr):
		Fail(w, http.StatusBadRequest, inputErr.Message)
	case errors.Is(err, custom_errors.ErrInvalidInput):
		Fail(w, http.StatusBadRequest, MsgInvalidBody)
	case errors.Is(err, custom_errors.ErrUnauthenticated):
		Fail(w, http.StatusUnauthorized, MsgUnauthorized)
	case errors.Is(err, custom_errors.ErrInvalidCredentials):
		Fail(w, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, custom_errors.ErrForbidden):
		Fail(w, http.StatusForbidden, MsgForbidden)
	case errors.Is(err, custom_errors.ErrUserNotFound):
		Fail(w, http.StatusNotFound, MsgUserNotFound)
	case errors.Is(err, custom_errors.ErrPostNotFound):
		Fail(w, http.StatusNotFound, MsgPostNotFound)
	case errors.Is(err, custom_errors.ErrUserAlreadyExists):
		Fail(w, http.StatusConflict, "User with this email or username already exists")
	default:
		log.Error("Unhandled request error", slog.String("error", err.Error()))
		Fail(w, http.StatusInternalServerError, MsgInternalServer)
	}
}

// Decode reads a JSON body into dst.
func Decode(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return custom_errors.NewInputError(MsgInvalidBody)
	}
	return nil
}
