// Package lifecycle publishes best-effort notifications after a mutation
// has committed. Publishing never blocks the request and never turns a
// successful operation into a failure; sink errors are logged and dropped.
package lifecycle

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fitlog-dev/fitlog/internal/scope"
)

type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

type Event struct {
	Name       string    `json:"name"` // lifecycle.<table>.<action>
	Resource   string    `json:"resource"`
	Action     Action    `json:"action"`
	ResourceID string    `json:"resource_id,omitempty"`
	User       string    `json:"user,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

type Publisher struct {
	webhookURL string
	client     *http.Client

	mu          sync.RWMutex
	subscribers map[chan Event]struct{}
}

// NewPublisher builds a publisher. An empty webhookURL disables the
// webhook sink; the in-process feed still works.
func NewPublisher(webhookURL string) *Publisher {
	return &Publisher{
		webhookURL:  webhookURL,
		client:      &http.Client{Timeout: 10 * time.Second},
		subscribers: make(map[chan Event]struct{}),
	}
}

// Publish emits one lifecycle event. Call it only after the transaction
// has committed; it returns immediately.
func (p *Publisher) Publish(kind scope.Kind, action Action, resourceID uuid.UUID, userEmail string) {
	event := Event{
		Name:       fmt.Sprintf("lifecycle.%s.%s", kind.Table, action),
		Resource:   kind.Name,
		Action:     action,
		User:       userEmail,
		Timestamp:  time.Now().UTC(),
	}
	if resourceID != uuid.Nil {
		event.ResourceID = resourceID.String()
	}

	p.fanout(event)

	if p.webhookURL != "" {
		go p.postWebhook(event)
	}
}

// Subscribe registers a listener for the in-process feed. Slow listeners
// miss events rather than stalling publishers.
func (p *Publisher) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, 16)

	p.mu.Lock()
	p.subscribers[ch] = struct{}{}
	p.mu.Unlock()

	cancel := func() {
		p.mu.Lock()
		delete(p.subscribers, ch)
		p.mu.Unlock()
	}
	return ch, cancel
}

func (p *Publisher) fanout(event Event) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	for ch := range p.subscribers {
		select {
		case ch <- event:
		default:
		}
	}
}

func (p *Publisher) postWebhook(event Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to encode lifecycle event %s: %v", event.Name, err)
		return
	}

	resp, err := p.client.Post(p.webhookURL, "application/json", bytes.NewBuffer(payload))
	if err != nil {
		log.Printf("Failed to deliver lifecycle event %s: %v", event.Name, err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Printf("Lifecycle webhook returned status %d for %s", resp.StatusCode, event.Name)
	}
}
