package notify

import (
	"gorm.io/gorm"

	"github.com/ManosLatam/marketplace-api/internal/logger"
	"github.com/ManosLatam/marketplace-api/internal/models"
)

// Event announces a booking transition to the counterparty: one system chat
// message plus one notification row, in the recipient's locale.
type Event struct {
	ConversationID  uint
	SenderID        uint
	RecipientID     uint
	RecipientLocale string
	BookingID       uint
	Kind            string
	Metadata        string
}

// Dispatcher writes announcements off the request path. The booking status is
// authoritative: a failed announcement is logged, never compensated.
type Dispatcher struct {
	db    *gorm.DB
	queue chan Event
}

func NewDispatcher(db *gorm.DB) *Dispatcher {
	d := &Dispatcher{
		db:    db,
		queue: make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		d.deliver(ev)
	}
}

func (d *Dispatcher) deliver(ev Event) {
	chat, title, body := resolve(ev.Kind, ev.RecipientLocale, ev.BookingID)

	if ev.ConversationID != 0 {
		msg := models.ConversationMessage{
			ConversationID: ev.ConversationID,
			SenderID:       ev.SenderID,
			Content:        chat,
			System:         true,
		}
		if err := d.db.Create(&msg).Error; err != nil {
			logger.ErrorLogger.Errorf("notify: chat message failed: %v", err)
		}
	}

	bookingID := ev.BookingID
	notif := models.Notification{
		UserID:    ev.RecipientID,
		Type:      ev.Kind,
		Title:     title,
		Message:   body,
		BookingID: &bookingID,
		Metadata:  ev.Metadata,
	}
	if err := d.db.Create(&notif).Error; err != nil {
		logger.ErrorLogger.Errorf("notify: notification failed: %v", err)
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
		// enviado
	default:
		// queue full, never break the API for an announcement
		logger.ErrorLogger.Error("notify queue full, dropping event")
	}
}
