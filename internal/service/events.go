package service

import (
	"encoding/json"
	"sync"
	"time"
)

// EventType represents the type of event
type EventType string

const (
	// Schedule events
	EventGamesAdded  EventType = "schedule.games_added"
	EventGameUpdated EventType = "game.updated"

	// Crew events
	EventCrewScheduleCreated EventType = "crew_schedule.created"
	EventCrewScheduleUpdated EventType = "crew_schedule.updated"
	EventCrewAssigned        EventType = "crew.assigned"

	// System events
	EventHeartbeat EventType = "heartbeat"
)

// Event represents a server-sent event
type Event struct {
	Type     EventType `json:"type"`
	Data     any       `json:"data"`
	MemberID uint      `json:"-"` // Zero broadcasts to every subscriber
}

// Format returns the SSE formatted string
func (e *Event) Format() string {
	data, _ := json.Marshal(e.Data)
	return "event: " + string(e.Type) + "\ndata: " + string(data) + "\n\n"
}

// EventPublisher receives events raised by services
type EventPublisher interface {
	Publish(event *Event)
}

type noopPublisher struct{}

func (noopPublisher) Publish(*Event) {}

func publisherOrNoop(p EventPublisher) EventPublisher {
	if p == nil {
		return noopPublisher{}
	}
	return p
}

// Subscriber represents a connected SSE client
type Subscriber struct {
	ID       string
	MemberID uint
	Events   chan *Event
	Done     chan struct{}
}

// EventHub manages SSE subscriptions and event broadcasting
type EventHub struct {
	mu          sync.RWMutex
	subscribers map[string]*Subscriber // subscriberID -> subscriber
	heartbeat   *time.Ticker
	done        chan struct{}
	closeOnce   sync.Once
}

// NewEventHub creates a new event hub. A zero interval sends heartbeats every
// 30 seconds.
func NewEventHub(heartbeatInterval time.Duration) *EventHub {
	if heartbeatInterval == 0 {
		heartbeatInterval = 30 * time.Second
	}
	hub := &EventHub{
		subscribers: make(map[string]*Subscriber),
		heartbeat:   time.NewTicker(heartbeatInterval),
		done:        make(chan struct{}),
	}
	go hub.sendHeartbeats()
	return hub
}

// Subscribe adds a new subscriber for a member
func (h *EventHub) Subscribe(memberID uint, subscriberID string) *Subscriber {
	h.mu.Lock()
	defer h.mu.Unlock()

	sub := &Subscriber{
		ID:       subscriberID,
		MemberID: memberID,
		Events:   make(chan *Event, 100), // Buffer to prevent blocking
		Done:     make(chan struct{}),
	}
	h.subscribers[subscriberID] = sub
	return sub
}

// Unsubscribe removes a subscriber
func (h *EventHub) Unsubscribe(subscriberID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if sub, ok := h.subscribers[subscriberID]; ok {
		close(sub.Done)
		close(sub.Events)
		delete(h.subscribers, subscriberID)
	}
}

// Publish delivers an event to every subscriber, or only to the addressed
// member's subscribers when MemberID is set. Subscribers with a full buffer
// miss the event.
func (h *EventHub) Publish(event *Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, sub := range h.subscribers {
		if event.MemberID != 0 && sub.MemberID != event.MemberID {
			continue
		}
		select {
		case sub.Events <- event:
		default:
		}
	}
}

// sendHeartbeats sends periodic heartbeats to all subscribers
func (h *EventHub) sendHeartbeats() {
	for {
		select {
		case <-h.heartbeat.C:
			h.Publish(&Event{
				Type: EventHeartbeat,
				Data: map[string]string{
					"timestamp": time.Now().UTC().Format(time.RFC3339),
				},
			})
		case <-h.done:
			return
		}
	}
}

// Close stops the event hub and disconnects every subscriber
func (h *EventHub) Close() {
	h.closeOnce.Do(func() {
		close(h.done)
		h.heartbeat.Stop()

		h.mu.Lock()
		defer h.mu.Unlock()

		for id, sub := range h.subscribers {
			close(sub.Done)
			close(sub.Events)
			delete(h.subscribers, id)
		}
	})
}

// SubscriberCount returns the number of connected subscribers
func (h *EventHub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}

// CrewScheduleEvent is the payload of crew schedule events
type CrewScheduleEvent struct {
	GameID         uint `json:"gameId"`
	CrewScheduleID uint `json:"crewScheduleId"`
}

// CrewAssignedEvent tells a member about a new assignment
type CrewAssignedEvent struct {
	GameID         uint   `json:"gameId"`
	CrewScheduleID uint   `json:"crewScheduleId"`
	Position       string `json:"position"`
	ReportTime     string `json:"reportTime,omitempty"`
	ReportLocation string `json:"reportLocation,omitempty"`
}

// GamesAddedEvent is the payload of EventGamesAdded
type GamesAddedEvent struct {
	ScheduleID uint `json:"scheduleId"`
	Count      int  `json:"count"`
}
