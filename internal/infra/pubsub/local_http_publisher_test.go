package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"saferoute/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalHTTPPublisher_PublishNavigationEvent(t *testing.T) {
	var received PubSubPushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))
	event := &entity.NavigationEvent{
		ID:         uuid.New(),
		RequestID:  "req-1",
		SessionID:  uuid.New(),
		Type:       entity.NavigationEventStepAdvanced,
		StepIndex:  2,
		Position:   &entity.RoutePoint{Lat: 25.03, Lng: 121.56},
		OccurredAt: time.Now().UTC(),
	}

	err := publisher.PublishNavigationEvent(context.Background(), event)
	require.NoError(t, err)

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, event.ID.String(), received.Message.MessageID)
	assert.Equal(t, "step_advanced", received.Message.Attributes["type"])
	assert.Equal(t, event.SessionID.String(), received.Message.Attributes["session_id"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var decoded entity.NavigationEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 2, decoded.StepIndex)
	assert.Equal(t, event.SessionID, decoded.SessionID)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))

	err := publisher.PublishNavigationEvent(context.Background(), &entity.NavigationEvent{ID: uuid.New()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}
