package entities

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ItemID identifies a catalog item. Backend ids may be numeric or opaque strings.
type ItemID string

// CustomerID identifies a customer.
type CustomerID string

// RecordID identifies a persisted record (transaction, saved cart, account).
type RecordID string

func (id ItemID) MarshalJSON() ([]byte, error) {
	return marshalID(string(id))
}

func (id *ItemID) UnmarshalJSON(b []byte) error {
	return unmarshalID(b, (*string)(id))
}

func (id CustomerID) MarshalJSON() ([]byte, error) {
	return marshalID(string(id))
}

func (id *CustomerID) UnmarshalJSON(b []byte) error {
	return unmarshalID(b, (*string)(id))
}

func (id RecordID) MarshalJSON() ([]byte, error) {
	return marshalID(string(id))
}

func (id *RecordID) UnmarshalJSON(b []byte) error {
	return unmarshalID(b, (*string)(id))
}

// CustomerRef returns a pointer suitable for a nullable customer field.
// An empty id is the walk-in customer and yields nil.
func CustomerRef(id CustomerID) *CustomerID {
	if id == "" {
		return nil
	}
	return &id
}

// marshalID writes canonical integers as JSON numbers so numeric backend keys
// round-trip unchanged; everything else is written as a string.
func marshalID(s string) ([]byte, error) {
	if isCanonicalInteger(s) {
		return []byte(s), nil
	}
	return json.Marshal(s)
}

func unmarshalID(b []byte, dst *string) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0 || bytes.Equal(b, []byte("null")):
		*dst = ""
		return nil
	case b[0] == '"':
		return json.Unmarshal(b, dst)
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("identifier must be a string or number, got %s", string(b))
	}
	*dst = n.String()
	return nil
}

func isCanonicalInteger(s string) bool {
	if s == "" || len(s) > 18 {
		return false
	}
	if len(s) > 1 && s[0] == '0' {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
