// Package events defines the activity events recorded for a learner.
package events

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"
	"time"
)

// Event types emitted across the application.
const (
	TypeStepStarted         = "step.started"
	TypeStepCompleted       = "step.completed"
	TypeStepFailed          = "step.failed"
	TypeQuizSubmitted       = "quiz.submitted"
	TypeAssignmentSubmitted = "assignment.submitted"
	TypeAssignmentGraded    = "assignment.graded"
	TypePointsAwarded       = "points.awarded"
	TypeBadgeEarned         = "badge.earned"
	TypeLevelUp             = "level.up"
	TypeStreakUpdated       = "streak.updated"
	TypeRoadmapImported     = "roadmap.imported"
	TypeRoadmapGenerated    = "roadmap.generated"
)

// BaseEvent is a single activity record. Events form a hash chain so the
// activity log can be verified for tampering.
type BaseEvent struct {
	ID          string                 `json:"id"`
	Type        string                 `json:"type"`
	AggregateID string                 `json:"aggregate_id"` // step, badge, or roadmap ID
	Timestamp   time.Time              `json:"timestamp"`
	Actor       string                 `json:"actor"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
	PrevHash    string                 `json:"prev_hash,omitempty"`
	Hash        string                 `json:"hash,omitempty"`
}

// CalculateHash generates a deterministic SHA256 hash of the event.
func (e *BaseEvent) CalculateHash() string {
	h := sha256.New()
	h.Write([]byte(e.PrevHash))
	h.Write([]byte(e.ID))
	h.Write([]byte(e.Timestamp.Format(time.RFC3339Nano)))
	h.Write([]byte(e.Type))
	h.Write([]byte(e.AggregateID))
	h.Write([]byte(e.Actor))
	h.Write([]byte(canonicalJSON(e.Metadata)))
	return hex.EncodeToString(h.Sum(nil))
}

// canonicalJSON marshals metadata with sorted keys so hashes are stable.
func canonicalJSON(m map[string]interface{}) string {
	if len(m) == 0 {
		return ""
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := "{"
	for i, k := range keys {
		if i > 0 {
			out += ","
		}
		kb, _ := json.Marshal(k)
		vb, _ := json.Marshal(m[k])
		out += string(kb) + ":" + string(vb)
	}
	return out + "}"
}

// EventHandler receives published events.
type EventHandler func(e *BaseEvent) error

// Publisher fans events out to in-process subscribers (SSE, websocket,
// webhooks).
type Publisher interface {
	Publish(e *BaseEvent) error
	Subscribe(handler EventHandler)
}
