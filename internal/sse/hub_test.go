package sse

import (
	"testing"
	"time"

	"github.com/TheDevPiyush/uno-by-thedevpiyush/internal/testutil"
)

func TestFormatSSEMessage(t *testing.T) {
	tests := []struct {
		name      string
		eventName string
		data      string
		expected  string
	}{
		{
			name:      "single line data",
			eventName: "card_played",
			data:      `{"color":"red"}`,
			expected:  "event: card_played\ndata: {\"color\":\"red\"}\n\n",
		},
		{
			name:      "multi-line data",
			eventName: "state_changed",
			data:      "line1\nline2",
			expected:  "event: state_changed\ndata: line1\ndata: line2\n\n",
		},
		{
			name:      "empty data",
			eventName: "ping",
			data:      "",
			expected:  "event: ping\ndata: \n\n",
		},
		{
			name:      "data with carriage returns",
			eventName: "test",
			data:      "line1\r\nline2",
			expected:  "event: test\ndata: line1\ndata: line2\n\n",
		},
		{
			name:      "trailing newline",
			eventName: "test",
			data:      "line1\n",
			expected:  "event: test\ndata: line1\n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := formatSSEMessage(tt.eventName, tt.data)
			if string(result) != tt.expected {
				t.Errorf("formatSSEMessage(%q, %q)\ngot:  %q\nwant: %q",
					tt.eventName, tt.data, string(result), tt.expected)
			}
		})
	}
}

func TestHub_RegisterAndBroadcast(t *testing.T) {
	hub := NewHub("ROOM22", testutil.NopLogger())
	go hub.Run()
	defer hub.Close()

	client := NewClient(hub, "player1")
	hub.Register(client)
	time.Sleep(10 * time.Millisecond)

	if hub.ClientCount() != 1 {
		t.Errorf("ClientCount() = %d, want 1", hub.ClientCount())
	}

	hub.BroadcastEvent("card_played", "payload")

	select {
	case msg := <-client.send:
		expected := "event: card_played\ndata: payload\n\n"
		if string(msg) != expected {
			t.Errorf("received %q, want %q", string(msg), expected)
		}
	case <-time.After(time.Second):
		t.Fatal("client never received broadcast")
	}
}

func TestHub_Unregister(t *testing.T) {
	hub := NewHub("ROOM22", testutil.NopLogger())
	go hub.Run()
	defer hub.Close()

	client := NewClient(hub, "player1")
	hub.Register(client)
	time.Sleep(10 * time.Millisecond)

	hub.Unregister(client)
	time.Sleep(10 * time.Millisecond)

	if hub.ClientCount() != 0 {
		t.Errorf("ClientCount() = %d, want 0", hub.ClientCount())
	}

	// Send channel is closed after unregister
	if _, ok := <-client.send; ok {
		t.Error("client send channel still open after unregister")
	}
}

func TestHub_BroadcastReachesAllClients(t *testing.T) {
	hub := NewHub("ROOM22", testutil.NopLogger())
	go hub.Run()
	defer hub.Close()

	clients := []*Client{
		NewClient(hub, "player1"),
		NewClient(hub, "player2"),
		NewClient(hub, "player3"),
	}
	for _, c := range clients {
		hub.Register(c)
	}
	time.Sleep(10 * time.Millisecond)

	hub.BroadcastEvent("state_changed", "x")

	for i, c := range clients {
		select {
		case <-c.send:
		case <-time.After(time.Second):
			t.Fatalf("client %d never received broadcast", i)
		}
	}
}

func TestHubManager_GetOrCreateHub(t *testing.T) {
	manager := NewHubManager(testutil.NopLogger())

	hub1 := manager.GetOrCreateHub("ROOM22")
	hub2 := manager.GetOrCreateHub("ROOM22")
	if hub1 != hub2 {
		t.Error("GetOrCreateHub returned different hubs for the same room")
	}
	defer hub1.Close()

	other := manager.GetOrCreateHub("OTHER2")
	if other == hub1 {
		t.Error("GetOrCreateHub returned the same hub for different rooms")
	}
	defer other.Close()
}

func TestHubManager_GetHubReturnsNilForUnknown(t *testing.T) {
	manager := NewHubManager(testutil.NopLogger())
	if manager.GetHub("NOSUCH") != nil {
		t.Error("GetHub returned a hub for an unknown room")
	}
}

func TestHubManager_CleanupEmptyHubs(t *testing.T) {
	manager := NewHubManager(testutil.NopLogger())

	manager.GetOrCreateHub("EMPTY2")
	busy := manager.GetOrCreateHub("BUSY22")
	client := NewClient(busy, "player1")
	busy.Register(client)
	time.Sleep(10 * time.Millisecond)

	manager.CleanupEmptyHubs()

	if manager.GetHub("EMPTY2") != nil {
		t.Error("empty hub survived cleanup")
	}
	if manager.GetHub("BUSY22") == nil {
		t.Error("hub with clients was removed by cleanup")
	}
	busy.Close()
}
