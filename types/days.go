package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Days is a duration expressed in whole days, e.g. the length of a
// medication course or the validity period of an insurance policy.
//
// Some endpoints report these as integers, others as floating point numbers
// ("30.0"). Days rounds on decode so both shapes produce the same value.
type Days int

// UnmarshalJSON implements the json.Unmarshaler interface.
func (d *Days) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*d = 0
		return nil
	}

	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("%q is not a valid number of days", string(data))
	}

	*d = Days(math.Round(f))
	return nil
}

// MarshalJSON implements the json.Marshaler interface.
func (d Days) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(d))
}
