package models

import "time"

// Conversation ties the chat channel between the two parties of a booking.
type Conversation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint `gorm:"not null;index" json:"client_id"`
	MasterID uint `gorm:"not null;index" json:"master_id"`

	CreatedAt time.Time `json:"created_at"`
}

// ConversationMessage is one chat message. System messages announce booking
// transitions and are written by the notify dispatcher.
type ConversationMessage struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ConversationID uint   `gorm:"not null;index" json:"conversation_id"`
	SenderID       uint   `gorm:"not null" json:"sender_id"`
	Content        string `gorm:"type:text;not null" json:"content"`
	System         bool   `gorm:"default:false" json:"system"`

	CreatedAt time.Time `json:"created_at"`
}
