package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domain "github.com/ManosLatam/marketplace-api/internal/domain/booking"
	"github.com/ManosLatam/marketplace-api/internal/httperr"
	"github.com/ManosLatam/marketplace-api/internal/models"
)

func validCreateInput() CreateBookingInput {
	return CreateBookingInput{
		ClientID:      clientID,
		MasterID:      masterID,
		TotalPrice:    300000,
		Date:          "2026-09-15",
		Time:          "14:30",
		ClientAddress: "Av. Corrientes 1234, CABA",
		Notes:         "llegar por el garage",
	}
}

func TestCreateBooking(t *testing.T) {
	repo := new(mockRepository)
	notifier := new(fakeNotifier)
	auditor := new(fakeAuditor)

	repo.On("GetUser", mock.Anything, masterID).
		Return(&models.User{ID: masterID, Role: models.RoleMaster, Locale: "pt"}, nil)

	repo.On("CreateBooking", mock.Anything, mock.AnythingOfType("*models.Booking")).
		Run(func(args mock.Arguments) {
			b := args.Get(1).(*models.Booking)
			b.ID = 42
			b.ConversationID = 7
		}).
		Return(nil)

	uc := NewCreateBooking(repo, notifier, auditor)

	b, err := uc.Execute(context.Background(), validCreateInput())
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusPending), b.Status)
	assert.Equal(t, int64(300000), b.TotalPrice)
	assert.Equal(t, 0, b.NegotiationRound)
	assert.Equal(t, "2026-09-15 14:30", b.ScheduledDate.Format("2006-01-02 15:04"))

	require.Len(t, notifier.events, 1)
	assert.Equal(t, "booking_created", notifier.events[0].Kind)
	assert.Equal(t, uint(7), notifier.events[0].ConversationID)
	assert.Equal(t, "pt", notifier.events[0].RecipientLocale)

	repo.AssertExpectations(t)
}

func TestCreateBookingMasterValidation(t *testing.T) {
	t.Run("unknown master", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("GetUser", mock.Anything, masterID).Return(nil, httperr.ErrBusiness("not_found"))

		uc := NewCreateBooking(repo, new(fakeNotifier), new(fakeAuditor))

		_, err := uc.Execute(context.Background(), validCreateInput())
		assert.Equal(t, "master_not_found", httperr.BusinessCode(err))
	})

	t.Run("target is a client", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("GetUser", mock.Anything, masterID).
			Return(&models.User{ID: masterID, Role: models.RoleClient}, nil)

		uc := NewCreateBooking(repo, new(fakeNotifier), new(fakeAuditor))

		_, err := uc.Execute(context.Background(), validCreateInput())
		assert.Equal(t, "master_not_found", httperr.BusinessCode(err))
	})
}

func TestCreateBookingInvalidInput(t *testing.T) {
	repo := new(mockRepository)
	repo.On("GetUser", mock.Anything, masterID).
		Return(&models.User{ID: masterID, Role: models.RoleMaster}, nil)

	uc := NewCreateBooking(repo, new(fakeNotifier), new(fakeAuditor))

	t.Run("price", func(t *testing.T) {
		in := validCreateInput()
		in.TotalPrice = 0

		_, err := uc.Execute(context.Background(), in)
		assert.Equal(t, "invalid_price", httperr.BusinessCode(err))
	})

	t.Run("date", func(t *testing.T) {
		in := validCreateInput()
		in.Date = "15/09/2026"

		_, err := uc.Execute(context.Background(), in)
		assert.Equal(t, "invalid_date_or_time", httperr.BusinessCode(err))
	})

	repo.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
}
