package store

import (
	"testing"

	"github.com/gimlet-io/gerrit-slack/pkg/model"
	"github.com/stretchr/testify/assert"
)

func TestNotifications(t *testing.T) {
	s := NewTest()
	defer func() {
		s.Close()
	}()

	err := s.SaveNotification(&model.Notification{
		Project:      "testproject",
		ChangeNumber: 1234,
		Kind:         "patchset-created",
		Status:       model.StatusPublished,
		Created:      100,
	})
	assert.Nil(t, err)

	second := &model.Notification{
		Project:      "testproject",
		ChangeNumber: 1235,
		Kind:         "change-merged",
		Status:       model.StatusSuppressed,
		StatusDesc:   "enabled",
		Created:      200,
	}
	err = s.SaveNotification(second)
	assert.Nil(t, err)
	assert.NotEqual(t, "", second.ID)

	notifications, err := s.Notifications(10)
	assert.Nil(t, err)
	assert.Equal(t, 2, len(notifications))
	assert.Equal(t, second.ID, notifications[0].ID)
	assert.Equal(t, "enabled", notifications[0].StatusDesc)

	notifications, err = s.Notifications(1)
	assert.Nil(t, err)
	assert.Equal(t, 1, len(notifications))
}
