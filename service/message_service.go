package service

import (
	"context"
	"fmt"

	"github.com/aaANDkk/sutdychat/events"
	"github.com/aaANDkk/sutdychat/models"
)

// messageService implements the MessageService interface
type messageService struct {
	uowFactory UnitOfWorkFactory
}

// NewMessageService creates a new message service
func NewMessageService(uowFactory UnitOfWorkFactory) MessageService {
	return &messageService{uowFactory: uowFactory}
}

// Send validates the receiver and the sender->receiver link, then creates
// the message and credits the sender's reward in one transaction. A failure
// partway rolls back both: no message without its ledger entry.
func (s *messageService) Send(ctx context.Context, senderID, receiverID int64, content string) (*models.Message, error) {
	if content == "" {
		return nil, fmt.Errorf("message content must not be empty")
	}

	var message *models.Message
	err := runInTx(ctx, s.uowFactory, func(uow UnitOfWork) error {
		receiver, err := uow.AccountRepository().GetByID(ctx, receiverID)
		if err != nil {
			return fmt.Errorf("failed to check receiver: %w", err)
		}
		if receiver == nil {
			return models.ErrUnknownAccount
		}

		// Direction-sensitive: the sender must have linked the receiver,
		// not the other way around.
		linked, err := uow.FriendRepository().Exists(ctx, senderID, receiverID)
		if err != nil {
			return fmt.Errorf("failed to check friend link: %w", err)
		}
		if !linked {
			return models.ErrNotFriends
		}

		message, err = uow.MessageRepository().Create(ctx, senderID, receiverID, content)
		if err != nil {
			return err
		}

		if _, err := Credit(ctx, uow, senderID, MessageReward, models.ReasonMessageSent); err != nil {
			return fmt.Errorf("failed to credit message reward: %w", err)
		}

		uow.EventBus().Publish(events.MessageSentEvent{
			MessageID:  message.ID,
			SenderID:   senderID,
			ReceiverID: receiverID,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return message, nil
}

// History returns all messages between two accounts in either direction,
// oldest first. Unaffected by a later unlink.
func (s *messageService) History(ctx context.Context, accountA, accountB int64) ([]*models.Message, error) {
	var messages []*models.Message
	err := runInTx(ctx, s.uowFactory, func(uow UnitOfWork) error {
		var err error
		messages, err = uow.MessageRepository().GetConversation(ctx, accountA, accountB)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get history: %w", err)
	}
	return messages, nil
}
