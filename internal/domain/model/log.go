// Package model holds the records the order service persists and reports.
package model

import "time"

// ActionType labels audit entries.
type ActionType string

const (
	ActionOrderPlaced   ActionType = "order_placed"
	ActionOrderRejected ActionType = "order_rejected"
	ActionClosureAdded  ActionType = "closure_added"
	ActionStaffToken    ActionType = "staff_token_issued"
	ActionStaffDenied   ActionType = "staff_token_denied"
)

// LogEntry is one request or audit record written to the logs collection.
// Actor is the staff subject of an audited staff action. Context-specific
// data goes in Fields.
type LogEntry struct {
	ID         string         `json:"id,omitempty"`
	Timestamp  time.Time      `json:"timestamp"`
	Level      string         `json:"level"`
	Message    string         `json:"message"`
	RequestID  string         `json:"request_id,omitempty"`
	Method     string         `json:"method,omitempty"`
	Path       string         `json:"path,omitempty"`
	StatusCode int            `json:"status_code,omitempty"`
	Duration   int64          `json:"duration_ms,omitempty"`
	IP         string         `json:"ip,omitempty"`
	UserAgent  string         `json:"user_agent,omitempty"`
	Error      string         `json:"error,omitempty"`
	Actor      string         `json:"actor,omitempty"`
	ActionType ActionType     `json:"action_type,omitempty"`
	Fields     map[string]any `json:"fields,omitempty"`
}

// WithField sets one context field.
func (e *LogEntry) WithField(key string, value any) *LogEntry {
	if e.Fields == nil {
		e.Fields = make(map[string]any)
	}
	e.Fields[key] = value
	return e
}

// WithFields merges fields into the entry.
func (e *LogEntry) WithFields(fields map[string]any) *LogEntry {
	if e.Fields == nil {
		e.Fields = make(map[string]any, len(fields))
	}
	for k, v := range fields {
		e.Fields[k] = v
	}
	return e
}

// LogQueryOptions filters log queries.
type LogQueryOptions struct {
	RequestID  string
	Level      string
	ActionType ActionType
	StartTime  *time.Time
	EndTime    *time.Time
	Limit      int
	Skip       int
}
