package models

// Memory event operations published to Kafka.
const (
	EventOpAdd    = "add"    // owner inserted a record
	EventOpShare  = "share"  // a copy was delivered to a linked account
	EventOpDelete = "delete" // a single record was removed
	EventOpClear  = "clear"  // all records of an owner were removed
)

// MemoryEvent describes a record-store mutation, published to Kafka for auditing.
type MemoryEvent struct {
	EventID   string `json:"event_id"`  // EventID is a unique identifier for the event.
	Timestamp int64  `json:"timestamp"` // Timestamp is the Unix timestamp (in seconds) of the mutation.
	UserID    string `json:"user_id"`   // UserID is the account the mutation applied to.
	RecordID  int64  `json:"record_id"` // RecordID is the affected user_data row, 0 for bulk operations.
	Title     string `json:"title"`     // Title of the affected record, "" for bulk operations.
	Operation string `json:"operation"` // Operation is one of "add", "share", "delete", "clear".
}
