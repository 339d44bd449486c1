package websocket

import (
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func newTestClient(topics ...string) *Client {
	return &Client{
		ID:     "test",
		Topics: topics,
		Send:   make(chan []byte, 8),
	}
}

func testHub() *Hub {
	return NewHub(zerolog.Nop())
}

func TestHub_BroadcastToTopic(t *testing.T) {
	h := testHub()
	patients := newTestClient("patients")
	doctors := newTestClient("doctors")
	h.Register(patients)
	h.Register(doctors)

	h.Publish("patients", map[string]string{"name": "Ada"})

	select {
	case raw := <-patients.Send:
		var ev Event
		if err := json.Unmarshal(raw, &ev); err != nil {
			t.Fatalf("unmarshal event: %v", err)
		}
		if ev.Topic != "patients" {
			t.Errorf("event topic = %q, want patients", ev.Topic)
		}
		if ev.Timestamp.IsZero() {
			t.Error("event timestamp not stamped")
		}
	default:
		t.Fatal("patients client received nothing")
	}

	select {
	case <-doctors.Send:
		t.Fatal("doctors client received event for patients topic")
	default:
	}
}

func TestHub_SubscribeUnsubscribe(t *testing.T) {
	h := testHub()
	client := newTestClient()
	h.Register(client)

	h.ProcessMessage(client, ClientMessage{Action: "subscribe", Topics: []string{"bills"}})
	if got := h.TopicCount("bills"); got != 1 {
		t.Fatalf("TopicCount(bills) = %d, want 1", got)
	}

	h.ProcessMessage(client, ClientMessage{Action: "unsubscribe", Topics: []string{"bills"}})
	if got := h.TopicCount("bills"); got != 0 {
		t.Fatalf("TopicCount(bills) after unsubscribe = %d, want 0", got)
	}

	h.Publish("bills", nil)
	select {
	case <-client.Send:
		t.Fatal("client received event after unsubscribe")
	default:
	}
}

func TestHub_UnregisterClosesSend(t *testing.T) {
	h := testHub()
	client := newTestClient("appointments")
	h.Register(client)

	h.Unregister(client)
	if _, open := <-client.Send; open {
		t.Error("Send channel still open after Unregister")
	}
	if got := h.ClientCount(); got != 0 {
		t.Errorf("ClientCount = %d, want 0", got)
	}

	// Double unregister is a no-op, not a panic.
	h.Unregister(client)
}

func TestHub_FullBufferDoesNotBlock(t *testing.T) {
	h := testHub()
	client := &Client{ID: "slow", Topics: []string{"patients"}, Send: make(chan []byte)}
	h.Register(client)

	done := make(chan struct{})
	go func() {
		h.Publish("patients", "snapshot")
		close(done)
	}()

	select {
	case <-done:
	case <-client.Send:
		t.Fatal("unbuffered client unexpectedly received")
	}
}
