package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/KirkDiggler/mafiad/internal/services/mafia"
)

// apiError is the body of every failed response
type apiError struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

type errorMapping struct {
	status int
	code   string
}

var errorMappings = map[mafia.GameError]errorMapping{
	mafia.ErrRoomNotFound:       {http.StatusNotFound, "ROOM_NOT_FOUND"},
	mafia.ErrRoomFull:           {http.StatusConflict, "ROOM_FULL"},
	mafia.ErrNotEnoughPlayers:   {http.StatusConflict, "NOT_ENOUGH_PLAYERS"},
	mafia.ErrGameAlreadyStarted: {http.StatusConflict, "GAME_ALREADY_STARTED"},
	mafia.ErrGameNotStarted:     {http.StatusConflict, "GAME_NOT_STARTED"},
	mafia.ErrPlayerNotFound:     {http.StatusNotFound, "PLAYER_NOT_FOUND"},
	mafia.ErrAlreadyDead:        {http.StatusConflict, "ALREADY_DEAD"},
	mafia.ErrNotAuthorizedRole:  {http.StatusForbidden, "NOT_AUTHORIZED_ROLE"},
	mafia.ErrAmbiguousState:     {http.StatusInternalServerError, "AMBIGUOUS_STATE"},
	mafia.ErrWrongPhase:         {http.StatusConflict, "WRONG_PHASE"},
	mafia.ErrAlreadyActed:       {http.StatusConflict, "ALREADY_ACTED"},
	mafia.ErrGameFinished:       {http.StatusGone, "GAME_FINISHED"},
	mafia.ErrShuttingDown:       {http.StatusServiceUnavailable, "SHUTTING_DOWN"},
	mafia.ErrGameResultNotFound: {http.StatusNotFound, "GAME_RESULT_NOT_FOUND"},
	mafia.ErrInvalidInput:       {http.StatusBadRequest, "INVALID_INPUT"},
}

// mapError returns the status and machine code for err
func mapError(err error) (int, string) {
	var gameErr mafia.GameError
	if errors.As(err, &gameErr) {
		if m, ok := errorMappings[gameErr]; ok {
			return m.status, m.code
		}
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return http.StatusRequestTimeout, "CANCELLED"
	}

	return http.StatusInternalServerError, "INTERNAL"
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Debug("response.encode", "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, code := mapError(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request.failed", "method", r.Method, "path", r.URL.Path, "err", err)
	}

	s.writeJSON(w, status, apiError{
		Code:  code,
		Error: err.Error(),
	})
}

func (s *Server) badRequest(w http.ResponseWriter, msg string) {
	s.writeJSON(w, http.StatusBadRequest, apiError{
		Code:  "INVALID_INPUT",
		Error: msg,
	})
}

// decode reads a JSON body into v, answering 400 on failure
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.badRequest(w, "invalid payload")
		return false
	}
	return true
}
