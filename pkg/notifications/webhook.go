package notifications

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// Publisher delivers a rendered message to a destination
type Publisher interface {
	Publish(ctx context.Context, payload string, webhookURL string) error
}

// WebhookPublisher posts messages to Slack incoming webhooks
type WebhookPublisher struct {
	Client  *http.Client
	Timeout time.Duration
}

func NewWebhookPublisher(timeout time.Duration) *WebhookPublisher {
	return &WebhookPublisher{
		Client:  &http.Client{},
		Timeout: timeout,
	}
}

func (p *WebhookPublisher) Publish(ctx context.Context, payload string, webhookURL string) error {
	if webhookURL == "" {
		return fmt.Errorf("no webhook url configured")
	}

	if p.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, webhookURL, bytes.NewBufferString(payload))
	if err != nil {
		return fmt.Errorf("cannot create webhook request: %s", err)
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")

	client := p.Client
	if client == nil {
		client = http.DefaultClient
	}
	res, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("could not post to slack: %s", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		logrus.Debugf("cannot read slack response: %s", err)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		logrus.Infof("Slack response: %s", string(body))
		return fmt.Errorf("could not post to slack, status: %d", res.StatusCode)
	}

	return nil
}
