package api

import (
	"time"

	"github.com/KirkDiggler/mafiad/internal/models"
	"github.com/KirkDiggler/mafiad/internal/services/mafia"
)

// User ids are 64-bit and travel as JSON strings

type nicknameRequest struct {
	Nickname string `json:"nickname"`
}

type userRequest struct {
	UserID uint64 `json:"user_id,string"`
}

type targetRequest struct {
	UserID   uint64 `json:"user_id,string"`
	TargetID uint64 `json:"target_id,string"`
}

type createRoomResponse struct {
	RoomID string `json:"room_id"`
	UserID uint64 `json:"user_id,string"`
}

type joinRoomResponse struct {
	UserID uint64 `json:"user_id,string"`
}

type leaveRoomResponse struct {
	RoomClosed bool `json:"room_closed"`
}

type readyResponse struct {
	Role models.Role `json:"role"`
}

type killResponse struct {
	Outcome models.Outcome `json:"outcome,omitempty"`
}

type isKillerResponse struct {
	IsKiller bool `json:"is_killer"`
}

type dayResponse struct {
	Eliminated bool `json:"eliminated"`
}

type memberResponse struct {
	ID       uint64 `json:"id,string"`
	Nickname string `json:"nickname"`
	Ready    bool   `json:"ready"`
	Alive    bool   `json:"alive"`
}

type roomResponse struct {
	RoomID   string           `json:"room_id"`
	Phase    models.Phase     `json:"phase"`
	Day      int              `json:"day"`
	Capacity int              `json:"capacity"`
	Members  []memberResponse `json:"members"`
}

type gamesResponse struct {
	Games []*models.GameRecord `json:"games"`
}

type notificationFrame struct {
	Seq       int                     `json:"seq"`
	Type      models.NotificationType `json:"type"`
	Payload   string                  `json:"payload"`
	CreatedAt time.Time               `json:"created_at"`
}

func renderRoom(out *mafia.GetRoomOutput) roomResponse {
	resp := roomResponse{
		RoomID:   out.RoomID,
		Phase:    out.Phase,
		Day:      out.Day,
		Capacity: out.Capacity,
		Members:  make([]memberResponse, 0, len(out.Members)),
	}
	for _, m := range out.Members {
		resp.Members = append(resp.Members, memberResponse{
			ID:       m.ID,
			Nickname: m.Nickname,
			Ready:    m.Ready,
			Alive:    m.Alive,
		})
	}
	return resp
}

func renderNotification(n models.Notification) notificationFrame {
	return notificationFrame{
		Seq:       n.Seq,
		Type:      n.Type,
		Payload:   n.Payload,
		CreatedAt: n.CreatedAt,
	}
}
