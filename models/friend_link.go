package models

import (
	"time"
)

// FriendLink is a directed eligibility edge permitting messaging from
// owner to friend. Adding A->B does not imply B->A, and the pair is
// unique per direction.
type FriendLink struct {
	ID        int64     `db:"id"`
	OwnerID   int64     `db:"user_id"`
	FriendID  int64     `db:"friend_id"`
	CreatedAt time.Time `db:"created_at"`
}
