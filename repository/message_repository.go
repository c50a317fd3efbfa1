package repository

import (
	"context"
	"fmt"

	"github.com/aaANDkk/sutdychat/database"
	"github.com/aaANDkk/sutdychat/models"
)

// MessageRepository implements the service.MessageRepository interface.
type MessageRepository struct {
	q queryable
}

// NewMessageRepository creates a new message repository backed by the pool.
func NewMessageRepository(db *database.DB) *MessageRepository {
	return &MessageRepository{q: db.Pool}
}

// newMessageRepositoryWithTx creates a new message repository with a transaction.
func newMessageRepositoryWithTx(tx queryable) *MessageRepository {
	return &MessageRepository{q: tx}
}

// Create inserts a new message. Messages are immutable once created.
func (r *MessageRepository) Create(ctx context.Context, senderID, receiverID int64, content string) (*models.Message, error) {
	query := `
		INSERT INTO messages (sender_id, receiver_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, sender_id, receiver_id, content, created_at
	`

	var message models.Message
	err := r.q.QueryRow(ctx, query, senderID, receiverID, content).Scan(
		&message.ID,
		&message.SenderID,
		&message.ReceiverID,
		&message.Content,
		&message.CreatedAt,
	)

	if isForeignKeyViolation(err) {
		return nil, models.ErrUnknownAccount
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create message %d->%d: %w", senderID, receiverID, err)
	}

	return &message, nil
}

// GetConversation returns all messages between two accounts in either
// direction, ordered by creation time ascending. The result is re-queryable,
// not a consumed stream.
func (r *MessageRepository) GetConversation(ctx context.Context, accountA, accountB int64) ([]*models.Message, error) {
	query := `
		SELECT id, sender_id, receiver_id, content, created_at
		FROM messages
		WHERE (sender_id = $1 AND receiver_id = $2)
		   OR (sender_id = $2 AND receiver_id = $1)
		ORDER BY created_at ASC, id ASC
	`

	rows, err := r.q.Query(ctx, query, accountA, accountB)
	if err != nil {
		return nil, fmt.Errorf("failed to get conversation %d<->%d: %w", accountA, accountB, err)
	}
	defer rows.Close()

	var messages []*models.Message
	for rows.Next() {
		var message models.Message
		err := rows.Scan(
			&message.ID,
			&message.SenderID,
			&message.ReceiverID,
			&message.Content,
			&message.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		messages = append(messages, &message)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate messages: %w", err)
	}

	return messages, nil
}
