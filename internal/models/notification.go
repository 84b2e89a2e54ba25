package models

import (
	"fmt"
	"time"
)

// NotificationType identifies a game event delivered to subscribers
type NotificationType string

const (
	NotificationJoin         NotificationType = "Join"
	NotificationLeave        NotificationType = "Leave"
	NotificationKill         NotificationType = "Kill"
	NotificationStartTheGame NotificationType = "StartTheGame"
	NotificationEnd          NotificationType = "End"
)

// Notification is one entry of a room's event log
type Notification struct {
	// Seq is the position of the notification in its log, starting at 0
	Seq int

	// Type is the kind of event
	Type NotificationType

	// Payload carries "<nickname> <id>" for player events and the result for End
	Payload string

	// CreatedAt is when the notification was appended
	CreatedAt time.Time
}

// PlayerPayload formats the payload used by Join, Leave and Kill notifications
func PlayerPayload(nickname string, id uint64) string {
	return fmt.Sprintf("%s %d", nickname, id)
}
