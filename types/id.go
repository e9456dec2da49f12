// Package types implements special scalar types for Homecircle.
package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ID is a numeric resource identifier.
//
// The backend is not consistent about identifiers: most endpoints send them
// as JSON numbers, a few legacy ones send them as strings, and some embedded
// objects omit them entirely. ID tolerates all three on decode so that a
// single malformed reference does not fail the whole payload.
type ID int64

// Nil is the zero ID, used for resources the server did not identify.
const Nil ID = 0

// UnmarshalJSON implements the json.Unmarshaler interface.
// Accepts a JSON number, a string-encoded number, or null (which decodes to Nil).
func (id *ID) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*id = Nil
		return nil
	}

	value := strings.Trim(string(data), `"`)
	if value == "" {
		*id = Nil
		return nil
	}

	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return fmt.Errorf("%q is not a valid resource ID", string(data))
	}

	*id = ID(n)
	return nil
}

// MarshalJSON implements the json.Marshaler interface.
func (id ID) MarshalJSON() ([]byte, error) {
	return json.Marshal(int64(id))
}

// String returns the decimal representation of the ID.
func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// IsNil reports whether the ID is the zero value.
func (id ID) IsNil() bool {
	return id == Nil
}
