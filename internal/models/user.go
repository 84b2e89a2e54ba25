package models

// User is a lobby member before any role has been dealt
type User struct {
	// ID is the server-generated random identifier of the user
	ID uint64

	// Nickname is the display name chosen by the user
	Nickname string
}
