package kernel_test

import (
	"testing"
	"time"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUID(t *testing.T) {
	t.Run("new_uuid_is_valid_and_unique", func(t *testing.T) {
		first := kernel.NewUUID()
		second := kernel.NewUUID()

		require.NoError(t, first.Validate())
		require.NoError(t, second.Validate())
		assert.False(t, first.IsEqual(second))
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var id kernel.UUID
		require.ErrorIs(t, id.Validate(), errs.ErrValueIsRequired)
	})

	t.Run("round_trips_through_string", func(t *testing.T) {
		id := kernel.NewUUID()

		parsed, err := kernel.UUIDFromString(id.String())
		require.NoError(t, err)
		assert.True(t, id.IsEqual(parsed))
	})

	t.Run("rejects_malformed_string", func(t *testing.T) {
		_, err := kernel.UUIDFromString("not-a-uuid")
		require.Error(t, err)
	})

	t.Run("round_trips_through_bytes", func(t *testing.T) {
		id := kernel.NewUUID()
		raw := id.Bytes()

		parsed, err := kernel.UUIDFromBytes(raw[:])
		require.NoError(t, err)
		assert.True(t, id.IsEqual(parsed))
	})
}

func TestTrackingCode(t *testing.T) {
	createdAt := time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)

	t.Run("generates_prefixed_code", func(t *testing.T) {
		code := kernel.NewTrackingCode(createdAt)

		require.NoError(t, code.Validate())
		assert.Contains(t, code.String(), "ZAP-20250314-")
		assert.Len(t, code.String(), len("ZAP-20250314-")+8)
	})

	t.Run("codes_are_unique", func(t *testing.T) {
		first := kernel.NewTrackingCode(createdAt)
		second := kernel.NewTrackingCode(createdAt)
		assert.False(t, first.IsEqual(second))
	})

	t.Run("round_trips_through_string", func(t *testing.T) {
		code := kernel.NewTrackingCode(createdAt)

		parsed, err := kernel.TrackingCodeFromString(code.String())
		require.NoError(t, err)
		assert.True(t, code.IsEqual(parsed))
	})

	t.Run("rejects_malformed_code", func(t *testing.T) {
		for _, bad := range []string{"", "ZAP-1234-ABCD", "XYZ-20250314-DEADBEEF", "ZAP-20250314"} {
			_, err := kernel.TrackingCodeFromString(bad)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, bad)
		}
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var code kernel.TrackingCode
		require.ErrorIs(t, code.Validate(), errs.ErrValueIsRequired)
	})
}
