package server

import (
	"net/http"
	"time"

	"github.com/gimlet-io/gerrit-slack/cmd/gerrit-slack/config"
	"github.com/gimlet-io/gerrit-slack/pkg/notifications"
	"github.com/gimlet-io/gerrit-slack/pkg/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

const tokenHeader = "X-Gerrit-Slack-Token"

func SetupRouter(
	config *config.Config,
	store *store.Store,
	notificationsManager notifications.Manager,
) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.NoCache)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(middleware.WithValue("store", store))
	r.Use(middleware.WithValue("notificationsManager", notificationsManager))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:8888", config.Host},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", tokenHeader},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Group(func(r chi.Router) {
		r.Use(mustToken(config.ApiToken))
		r.Post("/api/events", gerritEvent)

		r.Get("/api/projects", getProjectConfigs)
		r.Get("/api/projects/{project}/config", getProjectConfig)
		r.Post("/api/projects/{project}/config", saveProjectConfig)
		r.Delete("/api/projects/{project}/config", deleteProjectConfig)

		r.Get("/api/notifications", getNotifications)
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	return r
}

// mustToken rejects requests without the shared api token.
// All requests are let through if no token is configured.
func mustToken(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			provided := r.Header.Get(tokenHeader)
			if provided == "" {
				provided = r.URL.Query().Get("access_token")
			}
			if provided != token {
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
