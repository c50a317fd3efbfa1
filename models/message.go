package models

import (
	"time"
)

// Message is an immutable chat message. It can only be created while a
// FriendLink (sender -> receiver) exists, and survives a later unlink.
type Message struct {
	ID         int64     `db:"id"`
	SenderID   int64     `db:"sender_id"`
	ReceiverID int64     `db:"receiver_id"`
	Content    string    `db:"content"`
	CreatedAt  time.Time `db:"created_at"`
}
