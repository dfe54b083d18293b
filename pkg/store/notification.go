package store

import (
	"time"

	"github.com/gimlet-io/gerrit-slack/pkg/model"
	"github.com/gimlet-io/gerrit-slack/pkg/store/sql"
	"github.com/google/uuid"
	"github.com/russross/meddler"
)

// SaveNotification stores the outcome of a processed event
func (db *Store) SaveNotification(notification *model.Notification) error {
	notification.ID = uuid.New().String()
	if notification.Created == 0 {
		notification.Created = time.Now().Unix()
	}
	return meddler.Insert(db, "notifications", notification)
}

// Notifications returns the latest notifications, newest first
func (db *Store) Notifications(limit int) ([]*model.Notification, error) {
	stmt := sql.Stmt(db.driver, sql.SelectNotifications)
	var data []*model.Notification
	err := meddler.QueryAll(db, &data, stmt, limit)
	return data, err
}
