package server

import (
	"net/http"
	"strconv"

	"github.com/gimlet-io/gerrit-slack/pkg/store"
	log "github.com/sirupsen/logrus"
)

const defaultLimit = 20
const maxLimit = 100

func getNotifications(w http.ResponseWriter, r *http.Request) {
	limit := defaultLimit
	if limitParam := r.URL.Query().Get("limit"); limitParam != "" {
		parsed, err := strconv.Atoi(limitParam)
		if err != nil || parsed < 1 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = parsed
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	ctx := r.Context()
	store := ctx.Value("store").(*store.Store)

	notifications, err := store.Notifications(limit)
	if err != nil {
		log.Errorf("cannot get notifications: %s", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	writeJSON(w, notifications)
}
