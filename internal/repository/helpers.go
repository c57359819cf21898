package repository

import (
	"encoding/json"
	"fmt"
	"time"
)

// timeLayout is the storage format for created_at values. Fixed-width
// nanoseconds keep the textual ORDER BY consistent with chronological
// order even when two responses land within the same second; RFC3339Nano
// would drop a zero fractional part and break the lexicographic sort.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// marshalPayload serializes a response payload for TEXT column storage.
func marshalPayload(payload map[string]any) (string, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshaling payload: %w", err)
	}
	return string(data), nil
}

// unmarshalPayload deserializes a stored payload column.
func unmarshalPayload(raw string) (map[string]any, error) {
	var payload map[string]any
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("unmarshaling payload: %w", err)
	}
	return payload, nil
}

// parseStoredTime parses a created_at column value. RFC3339Nano accepts
// both the padded layout and rows written without fractional seconds.
func parseStoredTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}
