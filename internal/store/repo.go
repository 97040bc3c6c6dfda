package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// Session actions.
const (
	ActionStart    = "start"
	ActionRestart  = "restart"
	ActionComplete = "complete"
	ActionAbandon  = "abandon"
)

// SessionEventData captures a questionnaire lifecycle action.
type SessionEventData struct {
	SessionID    string
	Action       string
	Answered     int
	DurationSecs int
}

// SessionEventRecord is a stored session event.
type SessionEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	SessionEventData
}

// ResultData captures the outcome of a completed questionnaire.
type ResultData struct {
	SessionID    string
	Profile      string
	Score        float64
	MaxScore     float64
	Normalized   float64
	Answered     int
	Total        int
	DurationSecs int
}

// ResultRecord is a stored result.
type ResultRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	ResultData
}

// ProfileCount is the number of results per profile.
type ProfileCount struct {
	Profile string
	Count   int
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEventRecord is a stored LLM request event.
type LLMRequestEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsage aggregates token usage for one purpose or model.
type LLMUsage struct {
	Purpose      string
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// EventRepo provides append and query access to stored events.
type EventRepo interface {
	// AppendSessionEvent records a questionnaire lifecycle action.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendResult records a completed questionnaire.
	AppendResult(ctx context.Context, data ResultData) error

	// QueryResults returns results newest first.
	QueryResults(ctx context.Context, opts QueryOpts) ([]ResultRecord, error)

	// QuerySessionEvents returns session events for one session in order.
	QuerySessionEvents(ctx context.Context, sessionID string) ([]SessionEventRecord, error)

	// CountByProfile returns how many results landed in each profile.
	CountByProfile(ctx context.Context) ([]ProfileCount, error)

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM events newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)

	// GetLLMEvent returns one LLM event, or nil if it does not exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventRecord, error)

	// LLMUsageByPurpose aggregates LLM usage per purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)

	// LLMUsageByModel aggregates LLM usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMUsage, error)

	// PurgeHistory deletes all session events and results and returns the
	// number of rows removed. LLM events are kept.
	PurgeHistory(ctx context.Context) (int64, error)
}
