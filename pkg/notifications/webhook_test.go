package notifications

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWebhookPublisher(t *testing.T) {
	var received string
	var contentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		received = string(body)
		contentType = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	publisher := NewWebhookPublisher(5 * time.Second)
	err := publisher.Publish(context.Background(), `{"channel": "#general"}`, server.URL)
	assert.Nil(t, err)
	assert.Equal(t, `{"channel": "#general"}`, received)
	assert.Equal(t, "application/json; charset=utf-8", contentType)
}

func TestWebhookPublisherErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("no_team"))
	}))
	defer server.Close()

	publisher := NewWebhookPublisher(5 * time.Second)
	err := publisher.Publish(context.Background(), `{}`, server.URL)
	assert.NotNil(t, err, "non-2xx responses should fail")

	err = publisher.Publish(context.Background(), `{}`, "")
	assert.NotNil(t, err, "missing webhook url should fail")
}
