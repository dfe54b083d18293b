package notifications

import (
	"context"
	"fmt"

	"github.com/gimlet-io/gerrit-slack/pkg/gerrit"
	"github.com/gimlet-io/gerrit-slack/pkg/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

// ConfigProvider looks up the notification settings of a project
type ConfigProvider interface {
	ProjectConfig(project string) (*model.ProjectConfig, error)
}

// NotificationRecorder keeps the outcome of processed events
type NotificationRecorder interface {
	SaveNotification(notification *model.Notification) error
}

type Manager interface {
	Notify(event gerrit.Event)
}

type ManagerImpl struct {
	configs   ConfigProvider
	publisher Publisher
	recorder  NotificationRecorder
	processed *prometheus.CounterVec
	events    chan gerrit.Event
}

type DummyManagerImpl struct {
}

// NewManager creates a notification manager.
// The recorder and the processed counter are optional.
func NewManager(
	configs ConfigProvider,
	publisher Publisher,
	recorder NotificationRecorder,
	processed *prometheus.CounterVec,
) *ManagerImpl {
	return &ManagerImpl{
		configs:   configs,
		publisher: publisher,
		recorder:  recorder,
		processed: processed,
		events:    make(chan gerrit.Event, 64),
	}
}

func NewDummyManager() *DummyManagerImpl {
	return &DummyManagerImpl{}
}

func (m *ManagerImpl) Notify(event gerrit.Event) {
	m.events <- event
}

func (m *DummyManagerImpl) Notify(event gerrit.Event) {
}

// Run processes notified events until the context is cancelled.
// Every event is processed on its own goroutine, delivery order is not kept.
func (m *ManagerImpl) Run(ctx context.Context) {
	for {
		select {
		case event := <-m.events:
			go func(event gerrit.Event) {
				_, err := m.Process(ctx, event)
				if err != nil {
					logrus.Warnf("cannot process gerrit event: %s", err)
				}
			}(event)
		case <-ctx.Done():
			return
		}
	}
}

// Supported tells if events of a kind have a message generator
func Supported(kind gerrit.EventKind) bool {
	_, ok := generators[kind]
	return ok
}

// Process decides on, renders and publishes a single event
func (m *ManagerImpl) Process(ctx context.Context, event gerrit.Event) (*model.Notification, error) {
	if event == nil || !Supported(event.Kind()) {
		kind := gerrit.EventKind("")
		if event != nil {
			kind = event.Kind()
		}
		return nil, &UnsupportedEventKindError{Kind: kind}
	}

	notification := &model.Notification{
		Kind: string(event.Kind()),
	}
	if change := gerrit.ChangeOf(event); change != nil {
		notification.Project = change.Project
		notification.ChangeNumber = change.Number
	}

	config, err := m.configs.ProjectConfig(notification.Project)
	if err != nil {
		return nil, fmt.Errorf("cannot load config of project %s: %s", notification.Project, err)
	}

	generator, err := NewGenerator(event, config)
	if err != nil {
		return nil, err
	}

	decision := generator.Decide()
	if !decision.Publish {
		notification.Status = model.StatusSuppressed
		notification.StatusDesc = decision.SuppressedBy
		m.done(notification)
		return notification, nil
	}

	payload := generator.Generate()
	if payload == "" {
		notification.Status = model.StatusFailed
		notification.StatusDesc = "empty message"
		m.done(notification)
		return notification, nil
	}

	err = m.publisher.Publish(ctx, payload, config.WebhookURL)
	if err != nil {
		logrus.Warnf("cannot send notification: %s", err)
		notification.Status = model.StatusFailed
		notification.StatusDesc = err.Error()
		m.done(notification)
		return notification, nil
	}

	notification.Status = model.StatusPublished
	m.done(notification)
	return notification, nil
}

func (m *ManagerImpl) done(notification *model.Notification) {
	if m.processed != nil {
		m.processed.WithLabelValues(notification.Kind, notification.Status).Inc()
	}

	if m.recorder == nil {
		return
	}
	err := m.recorder.SaveNotification(notification)
	if err != nil {
		logrus.Warnf("cannot save notification: %s", err)
	}
}
