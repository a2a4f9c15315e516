package services

import (
	"testing"

	"restaurant-cms/models"
	"restaurant-cms/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContactService(t *testing.T) ContactService {
	db := newTestDB(t)
	return NewContactService(repositories.NewContactRepository(db))
}

func submitMessage(t *testing.T, svc ContactService, name string) *models.ContactMessage {
	t.Helper()
	message, err := svc.Submit(models.SubmitContactRequest{
		Name:    name,
		Email:   "guest@example.com",
		Subject: "Reservation",
		Message: "Do you have a table for four on Friday?",
	})
	require.NoError(t, err)
	return message
}

func TestSubmitContactStartsUnread(t *testing.T) {
	svc := newContactService(t)

	message := submitMessage(t, svc, "Jonas")
	assert.False(t, message.IsRead)
	assert.False(t, message.SubmittedAt.IsZero())
}

func TestUnreadCountIsDerived(t *testing.T) {
	svc := newContactService(t)

	first := submitMessage(t, svc, "Jonas")
	submitMessage(t, svc, "Mia")
	submitMessage(t, svc, "Lea")

	messages, unread, err := svc.List()
	require.NoError(t, err)
	assert.Len(t, messages, 3)
	assert.Equal(t, 3, unread)

	_, err = svc.MarkRead(first.ID)
	require.NoError(t, err)

	messages, unread, err = svc.List()
	require.NoError(t, err)
	assert.Len(t, messages, 3)
	assert.Equal(t, 2, unread)
}

func TestMarkReadIsIdempotent(t *testing.T) {
	svc := newContactService(t)

	message := submitMessage(t, svc, "Jonas")

	once, err := svc.MarkRead(message.ID)
	require.NoError(t, err)
	assert.True(t, once.IsRead)

	twice, err := svc.MarkRead(message.ID)
	require.NoError(t, err)
	assert.True(t, twice.IsRead)

	_, unread, err := svc.List()
	require.NoError(t, err)
	assert.Equal(t, 0, unread)
}

func TestMarkReadUnknownID(t *testing.T) {
	svc := newContactService(t)

	_, err := svc.MarkRead(42)
	assert.IsType(t, models.ErrorNotFound{}, err)
}
