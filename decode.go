package longid

import (
	"errors"
	"time"
)

// ErrMalformedID is returned when a value is numerically too small to
// contain the sequence and server ID fields, meaning it was not
// produced by this scheme.
var ErrMalformedID = errors.New("value is too small to be a longid")

// An id must occupy more bits than the sequence and server fields
// combined, otherwise it carries no timestamp at all.
const minDecodable = 1 << (sequenceBits + serverIDBits)

func validate(id uint64) error {
	if id < minDecodable {
		return ErrMalformedID
	}
	return nil
}

// ExtractMillis extracts the generation timestamp from an ID as
// milliseconds since the Unix epoch.
func ExtractMillis(id uint64) (int64, error) {
	if err := validate(id); err != nil {
		return 0, err
	}
	return int64(id >> timestampShift), nil
}

// ExtractTime extracts the generation time from an ID.
func ExtractTime(id uint64) (time.Time, error) {
	ms, err := ExtractMillis(id)
	if err != nil {
		return time.Time{}, err
	}
	return time.UnixMilli(ms), nil
}

// ExtractServerID extracts the server ID from an ID.
func ExtractServerID(id uint64) (uint16, error) {
	if err := validate(id); err != nil {
		return 0, err
	}
	return uint16(id & maxServerID), nil
}

// ExtractSequence extracts the same-millisecond sequence counter from
// an ID. Mostly useful for debugging.
func ExtractSequence(id uint64) (uint8, error) {
	if err := validate(id); err != nil {
		return 0, err
	}
	return uint8((id >> sequenceShift) & maxSequence), nil
}
