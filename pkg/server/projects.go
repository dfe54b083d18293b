package server

import (
	"encoding/json"
	"net/http"
	"regexp"

	"github.com/gimlet-io/gerrit-slack/pkg/model"
	"github.com/gimlet-io/gerrit-slack/pkg/store"
	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"
)

func getProjectConfigs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	store := ctx.Value("store").(*store.Store)

	configs, err := store.ProjectConfigs()
	if err != nil {
		log.Errorf("cannot get project configs: %s", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	writeJSON(w, configs)
}

func getProjectConfig(w http.ResponseWriter, r *http.Request) {
	project := chi.URLParam(r, "project")

	ctx := r.Context()
	store := ctx.Value("store").(*store.Store)

	config, err := store.ProjectConfig(project)
	if err != nil {
		log.Errorf("cannot get config of %s: %s", project, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	writeJSON(w, config)
}

func saveProjectConfig(w http.ResponseWriter, r *http.Request) {
	project := chi.URLParam(r, "project")

	config := model.DefaultProjectConfig(project)
	err := json.NewDecoder(r.Body).Decode(config)
	if err != nil {
		http.Error(w, "cannot parse project config", http.StatusBadRequest)
		return
	}
	config.Project = project

	if config.Ignore != "" {
		if _, err := regexp.Compile(config.Ignore); err != nil {
			http.Error(w, "invalid ignore pattern: "+err.Error(), http.StatusBadRequest)
			return
		}
	}

	ctx := r.Context()
	store := ctx.Value("store").(*store.Store)

	err = store.SaveProjectConfig(config)
	if err != nil {
		log.Errorf("cannot save config of %s: %s", project, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	writeJSON(w, config)
}

func deleteProjectConfig(w http.ResponseWriter, r *http.Request) {
	project := chi.URLParam(r, "project")

	ctx := r.Context()
	store := ctx.Value("store").(*store.Store)

	err := store.DeleteProjectConfig(project)
	if err != nil {
		log.Errorf("cannot delete config of %s: %s", project, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte(""))
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	dataString, err := json.Marshal(data)
	if err != nil {
		log.Errorf("cannot serialize response: %s", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(dataString)
}
