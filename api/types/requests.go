package types

// RegisterRequest creates a new account
type RegisterRequest struct {
	DisplayName string `json:"display_name" binding:"required" example:"Sam"`
	Email       string `json:"email" binding:"required,email" example:"sam@example.com"`
	Password    string `json:"password" binding:"required,min=8"`
	Location    string `json:"location" example:"Portland, OR"`
}

// LoginRequest exchanges credentials for a token
type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"sam@example.com"`
	Password string `json:"password" binding:"required"`
}

// CreateItemRequest creates a new listing
type CreateItemRequest struct {
	Title          string   `json:"title" binding:"required" example:"Mountain bike"`
	Description    string   `json:"description"`
	Category       string   `json:"category" example:"sports"`
	Condition      string   `json:"condition" example:"good"`
	Location       string   `json:"location" example:"Portland, OR"`
	Latitude       *float64 `json:"latitude"`
	Longitude      *float64 `json:"longitude"`
	WantedInReturn string   `json:"wanted_in_return" example:"Road bike or camping gear"`
}

// UpdateItemRequest replaces the mutable fields of a listing
type UpdateItemRequest struct {
	Title          string   `json:"title" binding:"required"`
	Description    string   `json:"description"`
	Category       string   `json:"category"`
	Condition      string   `json:"condition"`
	Location       string   `json:"location"`
	Latitude       *float64 `json:"latitude"`
	Longitude      *float64 `json:"longitude"`
	WantedInReturn string   `json:"wanted_in_return"`
	IsAvailable    *bool    `json:"is_available"`
}

// StartConversationRequest opens a thread about a listing
type StartConversationRequest struct {
	ItemID uint `json:"item_id" binding:"required" example:"42"`
}

// SendMessageRequest appends a message to a thread
type SendMessageRequest struct {
	Body string `json:"body" binding:"required" example:"Is the bike still available?"`
}
