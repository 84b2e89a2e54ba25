package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/KirkDiggler/mafiad/internal/services/mafia"
	"github.com/gorilla/websocket"
)

const writeWait = 10 * time.Second

// handleNotifications streams the room log over a WebSocket, one JSON frame
// per notification, and closes normally after End
func (s *Server) handleNotifications(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseUint(r.URL.Query().Get("user_id"), 10, 64)
	if err != nil {
		s.badRequest(w, "user_id required")
		return
	}

	// subscribe first so lookup failures are plain HTTP errors
	sub, err := s.mafiaService.Subscribe(r.Context(), &mafia.SubscribeInput{
		RoomID: r.PathValue("roomID"),
		UserID: userID,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("ws.upgrade", "err", err)
		return
	}
	defer conn.Close()

	// the read side only watches for the client going away
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	for {
		n, err := sub.Cursor.Next(ctx)
		if errors.Is(err, io.EOF) {
			msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "game over")
			_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
			return
		}
		if err != nil {
			return
		}

		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(renderNotification(n)); err != nil {
			s.logger.Debug("ws.write", "err", err)
			return
		}
	}
}
