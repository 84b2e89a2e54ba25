package api

import (
	"net/http"
	"strconv"

	"github.com/KirkDiggler/mafiad/internal/services/mafia"
)

func (s *Server) handleCreateRoom(w http.ResponseWriter, r *http.Request) {
	var req nicknameRequest
	if !s.decode(w, r, &req) {
		return
	}

	out, err := s.mafiaService.CreateRoom(r.Context(), &mafia.CreateRoomInput{
		Nickname: req.Nickname,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, createRoomResponse{
		RoomID: out.RoomID,
		UserID: out.UserID,
	})
}

func (s *Server) handleJoinRoom(w http.ResponseWriter, r *http.Request) {
	var req nicknameRequest
	if !s.decode(w, r, &req) {
		return
	}

	out, err := s.mafiaService.JoinRoom(r.Context(), &mafia.JoinRoomInput{
		RoomID:   r.PathValue("roomID"),
		Nickname: req.Nickname,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, joinRoomResponse{UserID: out.UserID})
}

func (s *Server) handleLeaveRoom(w http.ResponseWriter, r *http.Request) {
	var req userRequest
	if !s.decode(w, r, &req) {
		return
	}

	out, err := s.mafiaService.LeaveRoom(r.Context(), &mafia.LeaveRoomInput{
		RoomID: r.PathValue("roomID"),
		UserID: req.UserID,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, leaveRoomResponse{RoomClosed: out.RoomClosed})
}

// handleReady stays open until the game starts
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	var req userRequest
	if !s.decode(w, r, &req) {
		return
	}

	out, err := s.mafiaService.ReadyToStart(r.Context(), &mafia.ReadyToStartInput{
		RoomID: r.PathValue("roomID"),
		UserID: req.UserID,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, readyResponse{Role: out.Role})
}

func (s *Server) handleNight(w http.ResponseWriter, r *http.Request) {
	var req userRequest
	if !s.decode(w, r, &req) {
		return
	}

	_, err := s.mafiaService.Night(r.Context(), &mafia.NightInput{
		RoomID: r.PathValue("roomID"),
		UserID: req.UserID,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, struct{}{})
}

func (s *Server) handleKill(w http.ResponseWriter, r *http.Request) {
	var req targetRequest
	if !s.decode(w, r, &req) {
		return
	}

	out, err := s.mafiaService.Kill(r.Context(), &mafia.KillInput{
		RoomID:   r.PathValue("roomID"),
		UserID:   req.UserID,
		TargetID: req.TargetID,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, killResponse{Outcome: out.Outcome})
}

func (s *Server) handleIsKiller(w http.ResponseWriter, r *http.Request) {
	var req targetRequest
	if !s.decode(w, r, &req) {
		return
	}

	out, err := s.mafiaService.IsKiller(r.Context(), &mafia.IsKillerInput{
		RoomID:   r.PathValue("roomID"),
		UserID:   req.UserID,
		TargetID: req.TargetID,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, isKillerResponse{IsKiller: out.IsKiller})
}

// handleDay stays open until every vote is in
func (s *Server) handleDay(w http.ResponseWriter, r *http.Request) {
	var req targetRequest
	if !s.decode(w, r, &req) {
		return
	}

	out, err := s.mafiaService.Day(r.Context(), &mafia.DayInput{
		RoomID:   r.PathValue("roomID"),
		UserID:   req.UserID,
		TargetID: req.TargetID,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, dayResponse{Eliminated: out.Eliminated})
}

func (s *Server) handleGetRoom(w http.ResponseWriter, r *http.Request) {
	out, err := s.mafiaService.GetRoom(r.Context(), &mafia.GetRoomInput{
		RoomID: r.PathValue("roomID"),
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, renderRoom(out))
}

func (s *Server) handleListGames(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			s.badRequest(w, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	out, err := s.mafiaService.ListGameResults(r.Context(), &mafia.ListGameResultsInput{
		Limit: limit,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, gamesResponse{Games: out.Records})
}

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	out, err := s.mafiaService.GetGameResult(r.Context(), &mafia.GetGameResultInput{
		RoomID: r.PathValue("roomID"),
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, out.Record)
}
