package parcel_test

import (
	"testing"
	"time"

	"zapshift/internal/core/domain/model/kernel"
	"zapshift/internal/core/domain/model/parcel"
	"zapshift/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestParcel(t *testing.T) *parcel.Parcel {
	t.Helper()
	p, err := parcel.NewParcel(
		kernel.NewUUID(),
		"sender@zap.test",
		"Jane Receiver",
		"12 Harbor Road, Chattogram",
		1500,
		500,
		time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return p
}

func payAndAssign(t *testing.T, p *parcel.Parcel) kernel.UUID {
	t.Helper()
	require.NoError(t, p.MarkPaid())
	riderID := kernel.NewUUID()
	require.NoError(t, p.AssignRider(riderID, "rider@zap.test", "Rifat"))
	return riderID
}

func TestNewParcel_Defaults(t *testing.T) {
	p := newTestParcel(t)

	assert.Equal(t, parcel.Unpaid, p.PaymentStatus())
	assert.Equal(t, parcel.NotCollected, p.DeliveryStatus())
	assert.Equal(t, parcel.CashoutNone, p.CashoutStatus())
	assert.Nil(t, p.Rider())
	assert.Nil(t, p.CashoutAt())
	assert.Contains(t, p.TrackingCode().String(), "ZAP-20250314-")
	require.NoError(t, p.Validate())
}

func TestNewParcel_Validation(t *testing.T) {
	now := time.Now()
	id := kernel.NewUUID()

	testCases := []struct {
		name     string
		build    func() (*parcel.Parcel, error)
		sentinel error
	}{
		{
			name: "zero id",
			build: func() (*parcel.Parcel, error) {
				return parcel.NewParcel(kernel.UUID{}, "s@x.com", "R", "Addr", 100, 100, now)
			},
			sentinel: errs.ErrValueIsRequired,
		},
		{
			name: "missing sender email",
			build: func() (*parcel.Parcel, error) {
				return parcel.NewParcel(id, "  ", "R", "Addr", 100, 100, now)
			},
			sentinel: errs.ErrValueIsRequired,
		},
		{
			name: "malformed sender email",
			build: func() (*parcel.Parcel, error) {
				return parcel.NewParcel(id, "not-an-email", "R", "Addr", 100, 100, now)
			},
			sentinel: errs.ErrValueIsInvalid,
		},
		{
			name: "missing receiver",
			build: func() (*parcel.Parcel, error) {
				return parcel.NewParcel(id, "s@x.com", "", "Addr", 100, 100, now)
			},
			sentinel: errs.ErrValueIsRequired,
		},
		{
			name: "non-positive weight",
			build: func() (*parcel.Parcel, error) {
				return parcel.NewParcel(id, "s@x.com", "R", "Addr", 0, 100, now)
			},
			sentinel: errs.ErrValueIsOutOfRange,
		},
		{
			name: "non-positive cost",
			build: func() (*parcel.Parcel, error) {
				return parcel.NewParcel(id, "s@x.com", "R", "Addr", 100, 0, now)
			},
			sentinel: errs.ErrValueIsOutOfRange,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.build()
			require.ErrorIs(t, err, tc.sentinel)
		})
	}
}

func TestParcel_Validate_ZeroValue(t *testing.T) {
	var p parcel.Parcel
	require.ErrorIs(t, p.Validate(), parcel.ErrParcelIsNotConstructed)
}

func TestParcel_MarkPaid(t *testing.T) {
	p := newTestParcel(t)

	require.NoError(t, p.MarkPaid())
	assert.Equal(t, parcel.Paid, p.PaymentStatus())

	err := p.MarkPaid()
	require.ErrorIs(t, err, errs.ErrConflict)
}

func TestParcel_AssignRider(t *testing.T) {
	t.Run("requires payment first", func(t *testing.T) {
		p := newTestParcel(t)

		err := p.AssignRider(kernel.NewUUID(), "rider@zap.test", "Rifat")
		require.ErrorIs(t, err, errs.ErrConflict)
		assert.Equal(t, parcel.NotCollected, p.DeliveryStatus())
		assert.Nil(t, p.Rider())
	})

	t.Run("moves status and records the rider", func(t *testing.T) {
		p := newTestParcel(t)
		riderID := payAndAssign(t, p)

		assert.Equal(t, parcel.RiderAssigned, p.DeliveryStatus())
		require.NotNil(t, p.Rider())
		assert.True(t, riderID.IsEqual(p.Rider().RiderID))
		assert.Equal(t, "rider@zap.test", p.Rider().Email)
		assert.Equal(t, "Rifat", p.Rider().Name)
	})

	t.Run("rejects reassignment once assigned", func(t *testing.T) {
		p := newTestParcel(t)
		payAndAssign(t, p)

		err := p.AssignRider(kernel.NewUUID(), "other@zap.test", "Other")
		require.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("rejects empty rider email", func(t *testing.T) {
		p := newTestParcel(t)
		require.NoError(t, p.MarkPaid())

		err := p.AssignRider(kernel.NewUUID(), " ", "Rifat")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestParcel_ChangeDeliveryStatus(t *testing.T) {
	t.Run("walks the happy path", func(t *testing.T) {
		p := newTestParcel(t)
		payAndAssign(t, p)

		changed, err := p.ChangeDeliveryStatus(parcel.InTransit)
		require.NoError(t, err)
		assert.True(t, changed)

		changed, err = p.ChangeDeliveryStatus(parcel.Delivered)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, parcel.Delivered, p.DeliveryStatus())
	})

	t.Run("same value is a no-op success", func(t *testing.T) {
		p := newTestParcel(t)
		payAndAssign(t, p)

		changed, err := p.ChangeDeliveryStatus(parcel.RiderAssigned)
		require.NoError(t, err)
		assert.False(t, changed)
	})

	t.Run("rejects skipping states", func(t *testing.T) {
		p := newTestParcel(t)
		payAndAssign(t, p)

		_, err := p.ChangeDeliveryStatus(parcel.Delivered)
		require.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("rejects unknown status values", func(t *testing.T) {
		p := newTestParcel(t)

		_, err := p.ChangeDeliveryStatus(parcel.DeliveryStatus(99))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestParcel_CashOut(t *testing.T) {
	deliver := func(t *testing.T) *parcel.Parcel {
		p := newTestParcel(t)
		payAndAssign(t, p)
		_, err := p.ChangeDeliveryStatus(parcel.InTransit)
		require.NoError(t, err)
		_, err = p.ChangeDeliveryStatus(parcel.Delivered)
		require.NoError(t, err)
		return p
	}

	t.Run("settles a delivered parcel once", func(t *testing.T) {
		p := deliver(t)
		at := time.Date(2025, 3, 20, 9, 0, 0, 0, time.UTC)

		require.NoError(t, p.CashOut(120, at))
		assert.Equal(t, parcel.CashedOut, p.CashoutStatus())
		assert.Equal(t, int64(120), p.CashoutAmount())
		require.NotNil(t, p.CashoutAt())
		assert.Equal(t, at, *p.CashoutAt())
	})

	t.Run("second cash-out is a conflict", func(t *testing.T) {
		p := deliver(t)
		require.NoError(t, p.CashOut(120, time.Now()))

		err := p.CashOut(120, time.Now())
		require.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("rejects undelivered parcels", func(t *testing.T) {
		p := newTestParcel(t)
		payAndAssign(t, p)

		err := p.CashOut(120, time.Now())
		require.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		p := deliver(t)

		err := p.CashOut(0, time.Now())
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestRestoreParcel_RoundTrip(t *testing.T) {
	p := newTestParcel(t)
	payAndAssign(t, p)

	restored, err := parcel.RestoreParcel(
		p.ID(),
		p.TrackingCode(),
		p.SenderEmail(),
		p.ReceiverName(),
		p.ReceiverAddress(),
		p.WeightGrams(),
		p.CostAmount(),
		p.PaymentStatus(),
		p.DeliveryStatus(),
		p.Rider(),
		p.CashoutStatus(),
		p.CashoutAmount(),
		p.CashoutAt(),
		p.CreatedAt(),
	)
	require.NoError(t, err)
	assert.True(t, p.IsEqual(restored))
	assert.Equal(t, parcel.RiderAssigned, restored.DeliveryStatus())
	require.NotNil(t, restored.Rider())
}

func TestRestoreParcel_RejectsDriftedState(t *testing.T) {
	p := newTestParcel(t)

	_, err := parcel.RestoreParcel(
		p.ID(), p.TrackingCode(), p.SenderEmail(), p.ReceiverName(), p.ReceiverAddress(),
		p.WeightGrams(), p.CostAmount(),
		parcel.PaymentStatus(9), p.DeliveryStatus(), nil,
		p.CashoutStatus(), 0, nil, p.CreatedAt(),
	)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
