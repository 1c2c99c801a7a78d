package models

// Conversation is a message thread between two users about one item.
type Conversation struct {
	Base
	ItemID      uint  `json:"item_id" gorm:"not null;index"`
	Item        *Item `json:"item,omitempty" gorm:"foreignKey:ItemID"`
	InitiatorID uint  `json:"initiator_id" gorm:"not null;index"`
	Initiator   *User `json:"initiator,omitempty" gorm:"foreignKey:InitiatorID"`
	RecipientID uint  `json:"recipient_id" gorm:"not null;index"`
	Recipient   *User `json:"recipient,omitempty" gorm:"foreignKey:RecipientID"`

	Messages []Message `json:"messages,omitempty" gorm:"foreignKey:ConversationID"`
}

// Message is a single message within a conversation.
type Message struct {
	Base
	ConversationID uint   `json:"conversation_id" gorm:"not null;index"`
	SenderID       uint   `json:"sender_id" gorm:"not null;index"`
	Sender         *User  `json:"sender,omitempty" gorm:"foreignKey:SenderID"`
	Body           string `json:"body" gorm:"type:text;not null"`
}

// ConversationFilterColumns is the filterable/sortable column set for
// conversation listings.
var ConversationFilterColumns = []string{
	"id", "item_id", "initiator_id", "recipient_id", "created_at", "updated_at",
}

// MessageFilterColumns is the filterable/sortable column set for message
// listings.
var MessageFilterColumns = []string{
	"id", "conversation_id", "sender_id", "created_at",
}
