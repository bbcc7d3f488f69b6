package types

import (
	"encoding/json"
	"time"
)

// Time is a wrapper around time.Time that marshals to/from millisecond
// unix timestamps, which is what the exchange APIs speak.
type Time time.Time

var layout = "2006-01-02 15:04:05"

func (t Time) Time() time.Time {
	return time.Time(t)
}

func (t Time) Unix() int64 {
	return time.Time(t).Unix()
}

func (t Time) UnixMilli() int64 {
	return time.Time(t).UnixMilli()
}

func (t Time) String() string {
	return time.Time(t).String()
}

// Format renders the time in the report layout, e.g. 2023-04-01 13:22:05
func (t Time) Format() string {
	return time.Time(t).Format(layout)
}

func (t Time) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(t).UnixMilli())
}

func (t *Time) UnmarshalJSON(data []byte) error {
	var v int64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	*t = NewTimeFromMillis(v)
	return nil
}

// NewTimeFromMillis converts a millisecond unix epoch into Time.
func NewTimeFromMillis(ms int64) Time {
	return Time(time.Unix(0, ms*int64(time.Millisecond)))
}
