package booking

import (
	"context"

	"github.com/ManosLatam/marketplace-api/internal/audit"
	domain "github.com/ManosLatam/marketplace-api/internal/domain/booking"
	"github.com/ManosLatam/marketplace-api/internal/notify"
)

// Side-effect collaborators behind small seams so usecases stay testable.

type notifier interface {
	Dispatch(ev notify.Event)
}

type auditor interface {
	Dispatch(ev audit.Event)
}

func recipientLocale(ctx context.Context, repo domain.Repository, userID uint) string {
	user, err := repo.GetUser(ctx, userID)
	if err != nil || user.Locale == "" {
		return "es"
	}
	return user.Locale
}
