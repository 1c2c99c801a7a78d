package conversations

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/barterhub/barter-api/internal/models"
	"github.com/barterhub/barter-api/internal/query"
	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when the conversation does not exist.
	ErrNotFound = errors.New("conversation not found")

	// ErrNotParticipant is returned when a user reads or writes a thread
	// they are not part of.
	ErrNotParticipant = errors.New("user is not a participant in this conversation")

	// ErrSelfConversation is returned when a user opens a thread about
	// their own item.
	ErrSelfConversation = errors.New("cannot start a conversation about your own item")

	// ErrItemNotFound is returned when the referenced item does not exist.
	ErrItemNotFound = errors.New("item not found")
)

const defaultMaxPageSize = 100

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Start opens (or returns the existing) conversation between initiator and
// the item's owner.
func (s *Service) Start(ctx context.Context, itemID, initiatorID uint) (*models.Conversation, error) {
	var item models.Item
	if err := s.db.WithContext(ctx).First(&item, itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("getting item: %w", err)
	}
	if item.OwnerID == initiatorID {
		return nil, ErrSelfConversation
	}

	var existing models.Conversation
	err := s.db.WithContext(ctx).
		Where("item_id = ? AND initiator_id = ?", itemID, initiatorID).
		First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("checking existing conversation: %w", err)
	}

	conversation := &models.Conversation{
		ItemID:      itemID,
		InitiatorID: initiatorID,
		RecipientID: item.OwnerID,
	}
	if err := s.db.WithContext(ctx).Create(conversation).Error; err != nil {
		return nil, fmt.Errorf("creating conversation: %w", err)
	}
	return conversation, nil
}

// Get returns a conversation after verifying the user participates in it.
func (s *Service) Get(ctx context.Context, id, userID uint) (*models.Conversation, error) {
	var conversation models.Conversation
	if err := s.db.WithContext(ctx).
		Preload("Item").
		Preload("Initiator", participantProjection).
		Preload("Recipient", participantProjection).
		First(&conversation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting conversation: %w", err)
	}
	if conversation.InitiatorID != userID && conversation.RecipientID != userID {
		return nil, ErrNotParticipant
	}
	return &conversation, nil
}

// ListForUser returns the user's conversation threads through the shared
// listing engine, so sort/page/limit behave exactly like every other
// resource.
func (s *Service) ListForUser(ctx context.Context, userID uint, values url.Values) ([]models.Conversation, query.PageMeta, error) {
	cols := query.NewColumns(models.ConversationFilterColumns...)

	base := s.db.WithContext(ctx).
		Model(&models.Conversation{}).
		Where("initiator_id = ? OR recipient_id = ?", userID, userID)

	var conversations []models.Conversation
	meta, err := query.Run(ctx, base, query.Options{
		Filter: query.Compile(values, cols),
		Sort:   query.ParseSortFields(values.Get(query.KeySort), cols),
		Page:   query.ParsePageRequest(values, query.DefaultListPageSize, defaultMaxPageSize),
		Scopes: []func(*gorm.DB) *gorm.DB{
			func(tx *gorm.DB) *gorm.DB {
				return tx.Preload("Item").
					Preload("Initiator", participantProjection).
					Preload("Recipient", participantProjection)
			},
		},
	}, &conversations)
	if err != nil {
		return nil, query.PageMeta{}, fmt.Errorf("listing conversations: %w", err)
	}
	return conversations, meta, nil
}

// Append adds a message to a conversation the sender participates in.
func (s *Service) Append(ctx context.Context, conversationID, senderID uint, body string) (*models.Message, error) {
	if _, err := s.Get(ctx, conversationID, senderID); err != nil {
		return nil, err
	}

	message := &models.Message{
		ConversationID: conversationID,
		SenderID:       senderID,
		Body:           body,
	}
	if err := s.db.WithContext(ctx).Create(message).Error; err != nil {
		return nil, fmt.Errorf("creating message: %w", err)
	}
	return message, nil
}

// Messages pages through a conversation's messages, oldest first by
// default, again via the shared engine.
func (s *Service) Messages(ctx context.Context, conversationID, userID uint, values url.Values) ([]models.Message, query.PageMeta, error) {
	if _, err := s.Get(ctx, conversationID, userID); err != nil {
		return nil, query.PageMeta{}, err
	}

	cols := query.NewColumns(models.MessageFilterColumns...)
	base := s.db.WithContext(ctx).
		Model(&models.Message{}).
		Where("conversation_id = ?", conversationID)

	sort := query.ParseSortFields(values.Get(query.KeySort), cols)
	if values.Get(query.KeySort) == "" {
		sort = []query.SortField{{Column: "created_at"}}
	}

	var messages []models.Message
	meta, err := query.Run(ctx, base, query.Options{
		Filter: query.Compile(values, cols),
		Sort:   sort,
		Page:   query.ParsePageRequest(values, query.DefaultListPageSize, defaultMaxPageSize),
		Scopes: []func(*gorm.DB) *gorm.DB{
			func(tx *gorm.DB) *gorm.DB {
				return tx.Preload("Sender", participantProjection)
			},
		},
	}, &messages)
	if err != nil {
		return nil, query.PageMeta{}, fmt.Errorf("listing messages: %w", err)
	}
	return messages, meta, nil
}

func participantProjection(tx *gorm.DB) *gorm.DB {
	return tx.Select(models.OwnerColumns)
}
