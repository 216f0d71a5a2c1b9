package kernel

import (
	"fmt"
	"strings"
	"time"

	"zapshift/internal/pkg/errs"

	"github.com/google/uuid"
)

// trackingCodePrefix is printed on every label and keyed on by the public
// tracking endpoint.
const trackingCodePrefix = "ZAP"

// TrackingCode is the human-facing parcel identifier, formatted as
// ZAP-YYYYMMDD-XXXXXXXX where the suffix is a random hex block.
// Unlike the internal UUID it is safe to print on labels and read
// over the phone.
type TrackingCode struct {
	value string
}

// NewTrackingCode generates a tracking code stamped with the given creation time.
func NewTrackingCode(createdAt time.Time) TrackingCode {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:8])
	return TrackingCode{
		value: fmt.Sprintf("%s-%s-%s", trackingCodePrefix, createdAt.UTC().Format("20060102"), suffix),
	}
}

// TrackingCodeFromString reconstructs a tracking code from persistence,
// validating its shape.
func TrackingCodeFromString(s string) (TrackingCode, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 || parts[0] != trackingCodePrefix || len(parts[1]) != 8 || len(parts[2]) != 8 {
		return TrackingCode{}, errs.NewValueIsInvalidError("trackingCode")
	}
	return TrackingCode{value: s}, nil
}

// String returns the printable code.
func (c TrackingCode) String() string {
	return c.value
}

// IsEqual reports whether two tracking codes are the same.
func (c TrackingCode) IsEqual(other TrackingCode) bool {
	return c.value == other.value
}

// Validate returns an error for the zero value.
func (c TrackingCode) Validate() error {
	if c.value == "" {
		return errs.NewValueIsRequiredError("trackingCode")
	}
	return nil
}
