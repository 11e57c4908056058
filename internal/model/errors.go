package model

import "errors"

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound = errors.New("player not found")

	// Room errors
	ErrRoomNotFound       = errors.New("room not found")
	ErrRoomCodeTaken      = errors.New("room code already taken")
	ErrRoomCodeExhausted  = errors.New("could not generate a unique room code")
	ErrRoomFull           = errors.New("room is full")
	ErrAlreadyJoined      = errors.New("player has already joined this room")
	ErrNotHost            = errors.New("player is not the host")
	ErrGameAlreadyStarted = errors.New("game has already started")

	// Game errors
	ErrGameNotFound   = errors.New("game not found")
	ErrGameNotStarted = errors.New("game has not started")
	ErrGameNotActive  = errors.New("game is not active")
	ErrNotInGame      = errors.New("player is not in this game")
	ErrNotYourTurn    = errors.New("not this player's turn")

	// Card errors
	ErrCardNotFound    = errors.New("card not found")
	ErrCardNotInHand   = errors.New("card is not in this player's hand")
	ErrCardNotPlayable = errors.New("card cannot be played on the current discard")

	// Dealing errors
	ErrInsufficientPlayers  = errors.New("at least 2 players are required")
	ErrInsufficientDrawPile = errors.New("draw pile is too small to deal")
	ErrNoValidDiscardCard   = errors.New("no valid starting discard card found")
)
