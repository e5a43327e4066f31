package storage

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/skilltrail/skilltrail/internal/domain/events"
)

// FileEventStore implements the activity log using a JSON Lines file.
type FileEventStore struct {
	mu       sync.RWMutex
	path     string
	basePath string
	lastHash string
}

// NewFileEventStore creates a new file-based event store. The directory is
// created on first write, not at construction time, so it does not
// interfere with workspace initialization checks.
func NewFileEventStore(basePath string) (*FileEventStore, error) {
	path := filepath.Join(basePath, EventsFile)

	store := &FileEventStore{path: path, basePath: basePath}

	// Load last hash for chaining (no error if file doesn't exist yet)
	if last, err := store.GetLastEvent(); err == nil && last != nil {
		store.lastHash = last.Hash
	}

	return store, nil
}

// Append adds a new event to the store, linking it into the hash chain.
func (s *FileEventStore) Append(event *events.BaseEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	if err := os.MkdirAll(s.basePath, 0750); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	event.PrevHash = s.lastHash
	event.Hash = event.CalculateHash()

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	data = append(data, '\n')

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("open events file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("write event: %w", err)
	}

	s.lastHash = event.Hash
	return nil
}

// ReadAll returns every stored event in append order.
func (s *FileEventStore) ReadAll() ([]events.BaseEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.readAll()
}

func (s *FileEventStore) readAll() ([]events.BaseEvent, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open events file: %w", err)
	}
	defer f.Close()

	var out []events.BaseEvent
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var e events.BaseEvent
		if err := json.Unmarshal(line, &e); err != nil {
			return nil, fmt.Errorf("unmarshal event: %w", err)
		}
		out = append(out, e)
	}
	return out, scanner.Err()
}

// GetLastEvent returns the most recent event, or nil for an empty store.
func (s *FileEventStore) GetLastEvent() (*events.BaseEvent, error) {
	all, err := s.readAll()
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, nil
	}
	return &all[len(all)-1], nil
}

// VerifyChain recomputes every event hash and checks the chain links.
func (s *FileEventStore) VerifyChain() error {
	all, err := s.ReadAll()
	if err != nil {
		return err
	}

	prevHash := ""
	for i := range all {
		e := all[i]
		if e.PrevHash != prevHash {
			return fmt.Errorf("event %s: chain broken (prev_hash mismatch)", e.ID)
		}
		if e.CalculateHash() != e.Hash {
			return fmt.Errorf("event %s: hash mismatch", e.ID)
		}
		prevHash = e.Hash
	}
	return nil
}

// InMemoryEventPublisher is a simple in-process event publisher.
type InMemoryEventPublisher struct {
	mu       sync.RWMutex
	handlers []events.EventHandler
}

// NewInMemoryEventPublisher creates a new in-memory publisher.
func NewInMemoryEventPublisher() *InMemoryEventPublisher {
	return &InMemoryEventPublisher{
		handlers: make([]events.EventHandler, 0),
	}
}

// Publish sends an event to all subscribers.
func (p *InMemoryEventPublisher) Publish(event *events.BaseEvent) error {
	p.mu.RLock()
	handlers := make([]events.EventHandler, len(p.handlers))
	copy(handlers, p.handlers)
	p.mu.RUnlock()

	for _, h := range handlers {
		if err := h(event); err != nil {
			// Handlers must not block publishing
			continue
		}
	}
	return nil
}

// Subscribe registers a handler for events.
func (p *InMemoryEventPublisher) Subscribe(handler events.EventHandler) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.handlers = append(p.handlers, handler)
}
