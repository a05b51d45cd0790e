// GeoDash - GEO Content Operations Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geodash

package websocket

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/geodash/internal/logstream"
	"github.com/tomtom215/geodash/internal/metrics"
	"github.com/tomtom215/geodash/internal/models"
	"github.com/tomtom215/geodash/internal/monitor"
)

// startHub runs a hub until the test ends.
func startHub(t *testing.T) (*Hub, context.CancelFunc, <-chan error) {
	t.Helper()
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- hub.Serve(ctx) }()
	t.Cleanup(cancel)
	return hub, cancel, errCh
}

// createTestClient returns a client without a connection; tests read send.
func createTestClient(hub *Hub, buffer int) *Client {
	return newClient(hub, nil, buffer)
}

func waitForClients(t *testing.T, hub *Hub, want int) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for hub.ClientCount() != want {
		if time.Now().After(deadline) {
			t.Fatalf("expected %d clients, got %d", want, hub.ClientCount())
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func receive(t *testing.T, c *Client) Message {
	t.Helper()
	select {
	case msg, ok := <-c.send:
		if !ok {
			t.Fatal("send channel closed")
		}
		return msg
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for message")
	}
	return Message{}
}

func TestHubBroadcastsToAllClients(t *testing.T) {
	hub, _, _ := startHub(t)

	clients := []*Client{createTestClient(hub, 8), createTestClient(hub, 8), createTestClient(hub, 8)}
	for _, c := range clients {
		if !hub.Register(c) {
			t.Fatal("Register returned false on a running hub")
		}
	}
	waitForClients(t, hub, len(clients))

	hub.BroadcastLog(logstream.Event{Level: "INFO", Message: "published"})
	hub.BroadcastOverview(monitor.Snapshot{Overview: models.Overview{TotalProjects: 4}})

	for i, c := range clients {
		first := receive(t, c)
		if first.Type != MessageTypeLog {
			t.Errorf("client %d: first message type = %q", i, first.Type)
		}
		if ev, ok := first.Data.(logstream.Event); !ok || ev.Message != "published" {
			t.Errorf("client %d: unexpected log payload %#v", i, first.Data)
		}
		second := receive(t, c)
		if second.Type != MessageTypeOverview {
			t.Errorf("client %d: second message type = %q", i, second.Type)
		}
	}
}

func TestHubDropsSlowClient(t *testing.T) {
	hub, _, _ := startHub(t)

	slow := createTestClient(hub, 1)
	fast := createTestClient(hub, 8)
	hub.Register(slow)
	hub.Register(fast)
	waitForClients(t, hub, 2)

	before := testutil.ToFloat64(metrics.RelayMessagesDropped.WithLabelValues("slow_client"))
	hub.BroadcastJSON("a", nil)
	hub.BroadcastJSON("b", nil)
	waitForClients(t, hub, 1)

	if got := testutil.ToFloat64(metrics.RelayMessagesDropped.WithLabelValues("slow_client")); got != before+1 {
		t.Errorf("slow_client drops = %v, want %v", got, before+1)
	}
	if msg := receive(t, slow); msg.Type != "a" {
		t.Errorf("slow client first message = %q", msg.Type)
	}
	if _, ok := <-slow.send; ok {
		t.Error("slow client channel should be closed")
	}
	if receive(t, fast).Type != "a" || receive(t, fast).Type != "b" {
		t.Error("fast client should receive both messages in order")
	}
}

func TestHubUnregister(t *testing.T) {
	hub, _, _ := startHub(t)

	c := createTestClient(hub, 1)
	hub.Register(c)
	waitForClients(t, hub, 1)

	hub.Unregister(c)
	waitForClients(t, hub, 0)
	if _, ok := <-c.send; ok {
		t.Error("send channel should be closed after unregister")
	}

	// A second unregister is a no-op.
	hub.Unregister(c)
	waitForClients(t, hub, 0)
}

func TestHubShutdownClosesClients(t *testing.T) {
	hub, cancel, errCh := startHub(t)

	c := createTestClient(hub, 1)
	hub.Register(c)
	waitForClients(t, hub, 1)

	cancel()
	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Serve did not return after cancel")
	}

	if _, ok := <-c.send; ok {
		t.Error("client channel should be closed on shutdown")
	}
	if hub.Register(createTestClient(hub, 1)) {
		t.Error("Register should fail after shutdown")
	}

	done := make(chan struct{})
	go func() {
		hub.Unregister(c)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Unregister blocked after shutdown")
	}
}

func TestGetShutdownReason(t *testing.T) {
	canceled, cancel := context.WithCancel(context.Background())
	cancel()
	if got := getShutdownReason(canceled); got != ShutdownReasonContextCanceled {
		t.Errorf("canceled: got %q", got)
	}

	expired, cancel2 := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel2()
	<-expired.Done()
	if got := getShutdownReason(expired); got != ShutdownReasonContextDeadline {
		t.Errorf("deadline: got %q", got)
	}
}

func TestMarshalMessage(t *testing.T) {
	b, err := MarshalMessage(Message{Type: MessageTypeLog, Data: logstream.Event{Level: "WARNING", Message: "slow"}})
	if err != nil {
		t.Fatalf("MarshalMessage: %v", err)
	}
	got := string(b)
	if !strings.Contains(got, `"type":"log"`) || !strings.Contains(got, `"message":"slow"`) {
		t.Errorf("unexpected encoding %s", got)
	}
}
