// internal/domain/models/isotime.go
package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// ISOTime is a creation instant that serializes to ISO-8601 UTC text in both
// BSON and JSON. Documents store the timestamp as a string rather than a BSON
// date, and reads parse it back, so the value must round-trip through its
// text form losslessly.
type ISOTime time.Time

// Now returns the current instant in UTC.
func Now() ISOTime {
	return ISOTime(time.Now().UTC())
}

// Time returns the underlying time.Time.
func (t ISOTime) Time() time.Time {
	return time.Time(t)
}

// Equal compares two instants at full stored precision.
func (t ISOTime) Equal(other ISOTime) bool {
	return time.Time(t).Equal(time.Time(other))
}

func (t ISOTime) format() string {
	return time.Time(t).UTC().Format(time.RFC3339Nano)
}

func parseISOTime(s string) (ISOTime, error) {
	// RFC3339Nano accepts both "Z" and numeric offsets, with or without
	// fractional seconds, which covers every form previously written to the
	// collections.
	ts, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return ISOTime{}, fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	return ISOTime(ts.UTC()), nil
}

// MarshalBSONValue stores the instant as an RFC 3339 string.
func (t ISOTime) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(t.format())
}

// UnmarshalBSONValue parses the stored text back into an instant.
func (t *ISOTime) UnmarshalBSONValue(bt bsontype.Type, data []byte) error {
	var s string
	if err := bson.UnmarshalValue(bt, data, &s); err != nil {
		return err
	}
	parsed, err := parseISOTime(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// MarshalJSON writes the instant as an RFC 3339 string.
func (t ISOTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.format() + `"`), nil
}

// UnmarshalJSON parses an RFC 3339 string.
func (t *ISOTime) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("timestamp must be a JSON string")
	}
	parsed, err := parseISOTime(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
