// Package apierr maps application errors onto HTTP status codes and a
// stable JSON error shape.
package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/TheDevPiyush/uno-by-thedevpiyush/internal/model"
	"github.com/TheDevPiyush/uno-by-thedevpiyush/internal/services/auth"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest       = "INVALID_REQUEST"
	CodeUnauthorized         = "UNAUTHORIZED"
	CodeNotHost              = "NOT_HOST"
	CodeNotYourTurn          = "NOT_YOUR_TURN"
	CodePlayerNotFound       = "PLAYER_NOT_FOUND"
	CodeRoomNotFound         = "ROOM_NOT_FOUND"
	CodeGameNotFound         = "GAME_NOT_FOUND"
	CodeCardNotFound         = "CARD_NOT_FOUND"
	CodeRoomFull             = "ROOM_FULL"
	CodeAlreadyJoined        = "ALREADY_JOINED"
	CodeNotInGame            = "NOT_IN_GAME"
	CodeGameAlreadyStarted   = "GAME_ALREADY_STARTED"
	CodeGameNotStarted       = "GAME_NOT_STARTED"
	CodeGameNotActive        = "GAME_NOT_ACTIVE"
	CodeCardNotInHand        = "CARD_NOT_IN_HAND"
	CodeCardNotPlayable      = "CARD_NOT_PLAYABLE"
	CodeInsufficientPlayers  = "INSUFFICIENT_PLAYERS"
	CodeInsufficientDrawPile = "INSUFFICIENT_DRAW_PILE"
	CodeNoValidDiscardCard   = "NO_VALID_DISCARD_CARD"
	CodeRoomCodeExhausted    = "ROOM_CODE_EXHAUSTED"
	CodeUsernameExists       = "USERNAME_EXISTS"
	CodeInvalidCredentials   = "INVALID_CREDENTIALS"
	CodeInternalError        = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors: not-found, precondition-violation, and
	// resource-exhaustion classes are expected user-facing outcomes
	switch {
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrRoomNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeRoomNotFound, "Room not found"}}
	case errors.Is(err, model.ErrGameNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeGameNotFound, "Game not found"}}
	case errors.Is(err, model.ErrCardNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeCardNotFound, "Card not found"}}
	case errors.Is(err, model.ErrNotHost):
		return &httpError{http.StatusForbidden, APIError{CodeNotHost, "Only the host can perform this action"}}
	case errors.Is(err, model.ErrNotYourTurn):
		return &httpError{http.StatusForbidden, APIError{CodeNotYourTurn, "Not your turn"}}
	case errors.Is(err, model.ErrNotInGame):
		return &httpError{http.StatusForbidden, APIError{CodeNotInGame, "You are not seated in this game"}}
	case errors.Is(err, model.ErrRoomFull):
		return &httpError{http.StatusConflict, APIError{CodeRoomFull, "Room is full"}}
	case errors.Is(err, model.ErrAlreadyJoined):
		return &httpError{http.StatusConflict, APIError{CodeAlreadyJoined, "Already joined this room"}}
	case errors.Is(err, model.ErrGameAlreadyStarted):
		return &httpError{http.StatusConflict, APIError{CodeGameAlreadyStarted, "Game has already started"}}
	case errors.Is(err, model.ErrGameNotStarted):
		return &httpError{http.StatusConflict, APIError{CodeGameNotStarted, "Game has not started yet"}}
	case errors.Is(err, model.ErrGameNotActive):
		return &httpError{http.StatusConflict, APIError{CodeGameNotActive, "Game is not active"}}
	case errors.Is(err, model.ErrCardNotInHand):
		return &httpError{http.StatusConflict, APIError{CodeCardNotInHand, "Card is not in your hand"}}
	case errors.Is(err, model.ErrCardNotPlayable):
		return &httpError{http.StatusConflict, APIError{CodeCardNotPlayable, "Card cannot be played on the current discard"}}
	case errors.Is(err, model.ErrInsufficientPlayers):
		return &httpError{http.StatusConflict, APIError{CodeInsufficientPlayers, "Not enough players to start"}}
	case errors.Is(err, model.ErrInsufficientDrawPile):
		return &httpError{http.StatusConflict, APIError{CodeInsufficientDrawPile, "Draw pile is too small to deal"}}
	case errors.Is(err, model.ErrNoValidDiscardCard):
		return &httpError{http.StatusConflict, APIError{CodeNoValidDiscardCard, "No valid starting discard card found"}}
	case errors.Is(err, model.ErrRoomCodeExhausted):
		return &httpError{http.StatusConflict, APIError{CodeRoomCodeExhausted, "Could not generate a unique room code"}}

	// Map auth errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		return &httpError{http.StatusUnauthorized, APIError{CodeInvalidCredentials, "Invalid username or password"}}
	case errors.Is(err, auth.ErrInvalidSession):
		return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Invalid or expired session"}}
	case errors.Is(err, auth.ErrUsernameExists):
		return &httpError{http.StatusConflict, APIError{CodeUsernameExists, "Username already exists"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Authentication required"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
