package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gimlet-io/gerrit-slack/cmd/gerrit-slack/config"
	"github.com/gimlet-io/gerrit-slack/pkg/notifications"
	"github.com/gimlet-io/gerrit-slack/pkg/server"
	"github.com/gimlet-io/gerrit-slack/pkg/store"
	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

func main() {
	err := godotenv.Load(".env")
	if err != nil {
		logrus.Warnf("could not load .env file, relying on env vars")
	}

	config, err := config.Environ()
	if err != nil {
		logger := logrus.WithError(err)
		logger.Fatalln("main: invalid configuration")
	}

	initLogging(config)

	if logrus.IsLevelEnabled(logrus.TraceLevel) {
		fmt.Println(config.String())
	}

	if config.ApiToken == "" {
		logrus.Warn("API_TOKEN is not set, the api accepts unauthenticated requests")
	}

	if config.Database.EncryptionKey == "" {
		logrus.Warn("DATABASE_ENCRYPTION_KEY is not set, webhook urls are stored in plain text")
	}
	store := store.New(config.Database.Driver, config.Database.Config, config.Database.EncryptionKey)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	notificationsManager := notifications.NewManager(
		store,
		notifications.NewWebhookPublisher(config.WebhookTimeout),
		store,
		notificationsProcessed,
	)
	go notificationsManager.Run(ctx)

	metricsRouter := chi.NewRouter()
	metricsRouter.Get("/metrics", promhttp.Handler().ServeHTTP)
	go http.ListenAndServe(":8889", metricsRouter)

	r := server.SetupRouter(config, store, notificationsManager)
	go func() {
		err = http.ListenAndServe(":8888", r)
		if err != nil {
			panic(err)
		}
	}()
	logrus.Info("listening on :8888")

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	<-stopCh

	cancel()
	store.Close()
	logrus.Info("Successfully cleaned up resources. Stopping.")
}

// helper function configures the logging.
func initLogging(c *config.Config) {
	if c.Logging.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}
	if c.Logging.Trace {
		logrus.SetLevel(logrus.TraceLevel)
	}
	if c.Logging.Text {
		logrus.SetFormatter(&logrus.TextFormatter{
			ForceColors:   c.Logging.Color,
			DisableColors: !c.Logging.Color,
		})
	} else {
		logrus.SetFormatter(&logrus.JSONFormatter{
			PrettyPrint: c.Logging.Pretty,
		})
	}
}
