package server

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gimlet-io/gerrit-slack/pkg/gerrit"
	"github.com/gimlet-io/gerrit-slack/pkg/notifications"
	log "github.com/sirupsen/logrus"
)

func gerritEvent(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Errorf("cannot read request body: %s", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	event, err := gerrit.Parse(body)
	if err != nil {
		log.Debugf("invalid gerrit event: %s", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if !notifications.Supported(event.Kind()) {
		err := &notifications.UnsupportedEventKindError{Kind: event.Kind()}
		log.Warn(err.Error())
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	ctx := r.Context()
	notificationsManager := ctx.Value("notificationsManager").(notifications.Manager)
	notificationsManager.Notify(event)

	w.WriteHeader(http.StatusAccepted)
	w.Write([]byte(fmt.Sprintf("%s accepted", event.Kind())))
}
