package shipment_test

import (
	"testing"
	"time"

	"parcelmatch/internal/core/domain/model/kernel"
	"parcelmatch/internal/core/domain/model/shipment"
	"parcelmatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPrice(t *testing.T) kernel.Money {
	t.Helper()
	price, err := kernel.NewMoney(4500, "EUR")
	require.NoError(t, err)
	return price
}

func newOpenShipment(t *testing.T, senderID kernel.UUID) *shipment.Shipment {
	t.Helper()
	s, err := shipment.NewShipment(
		kernel.NewUUID(), senderID, "Berlin", "Munich", 2500, "books", validPrice(t))
	require.NoError(t, err)
	return s
}

func newMatchedShipment(t *testing.T, senderID, courierID kernel.UUID) *shipment.Shipment {
	t.Helper()
	s := newOpenShipment(t, senderID)
	require.NoError(t, s.AssignCourier(courierID))
	return s
}

func TestNewShipment(t *testing.T) {
	senderID := kernel.NewUUID()

	t.Run("should create valid open shipment", func(t *testing.T) {
		s, err := shipment.NewShipment(
			kernel.NewUUID(), senderID, "Berlin", "Munich", 2500, "books", validPrice(t))

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.Equal(t, shipment.Open, s.Status())
		assert.True(t, s.Sender().IsEqual(senderID))
		assert.Nil(t, s.Courier())
		assert.Equal(t, "Berlin", s.Origin())
		assert.Equal(t, "Munich", s.Destination())
		assert.Equal(t, 2500, s.WeightGrams())
		assert.Equal(t, "books", s.Content())
		assert.False(t, s.SenderConfirmedHandover())
		assert.False(t, s.CourierConfirmedHandover())
		assert.Nil(t, s.HandoverConfirmedAt())
		assert.Nil(t, s.DeliveryConfirmedAt())
	})

	t.Run("should fail with invalid sender", func(t *testing.T) {
		var invalidSender kernel.UUID

		_, err := shipment.NewShipment(
			kernel.NewUUID(), invalidSender, "Berlin", "Munich", 2500, "books", validPrice(t))

		require.Error(t, err)
	})

	t.Run("should fail with empty origin", func(t *testing.T) {
		_, err := shipment.NewShipment(
			kernel.NewUUID(), senderID, "", "Munich", 2500, "books", validPrice(t))

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with non-positive weight", func(t *testing.T) {
		_, err := shipment.NewShipment(
			kernel.NewUUID(), senderID, "Berlin", "Munich", 0, "books", validPrice(t))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail with unconstructed price", func(t *testing.T) {
		var zeroPrice kernel.Money

		_, err := shipment.NewShipment(
			kernel.NewUUID(), senderID, "Berlin", "Munich", 2500, "books", zeroPrice)

		require.Error(t, err)
	})
}

func TestShipment_Validate(t *testing.T) {
	t.Run("zero value is rejected", func(t *testing.T) {
		var s shipment.Shipment

		require.ErrorIs(t, s.Validate(), shipment.ErrShipmentIsNotConstructed)
	})

	t.Run("nil shipment is rejected", func(t *testing.T) {
		var s *shipment.Shipment

		require.ErrorIs(t, s.Validate(), shipment.ErrShipmentIsNotConstructed)
	})
}

func TestShipment_AssignCourier(t *testing.T) {
	senderID := kernel.NewUUID()
	courierID := kernel.NewUUID()

	t.Run("matches an open shipment", func(t *testing.T) {
		s := newOpenShipment(t, senderID)

		require.NoError(t, s.AssignCourier(courierID))

		assert.Equal(t, shipment.Matched, s.Status())
		require.NotNil(t, s.Courier())
		assert.True(t, s.Courier().IsEqual(courierID))
	})

	t.Run("rejects self-matching sender", func(t *testing.T) {
		s := newOpenShipment(t, senderID)

		err := s.AssignCourier(senderID)

		require.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("rejects a non-open shipment", func(t *testing.T) {
		s := newMatchedShipment(t, senderID, courierID)

		err := s.AssignCourier(kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestShipment_Cancel(t *testing.T) {
	senderID := kernel.NewUUID()
	courierID := kernel.NewUUID()

	t.Run("sender cancels an open shipment", func(t *testing.T) {
		s := newOpenShipment(t, senderID)

		require.NoError(t, s.Cancel(senderID))
		assert.Equal(t, shipment.Cancelled, s.Status())
	})

	t.Run("non-sender cannot cancel", func(t *testing.T) {
		s := newOpenShipment(t, senderID)

		err := s.Cancel(kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrForbidden)
		assert.Equal(t, shipment.Open, s.Status())
	})

	t.Run("matched shipment cannot be cancelled", func(t *testing.T) {
		s := newMatchedShipment(t, senderID, courierID)

		err := s.Cancel(senderID)

		require.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestShipment_Reopen(t *testing.T) {
	senderID := kernel.NewUUID()
	courierID := kernel.NewUUID()

	t.Run("reopening clears courier and confirmations", func(t *testing.T) {
		s := newMatchedShipment(t, senderID, courierID)
		_, err := s.ConfirmHandover(courierID, time.Now())
		require.NoError(t, err)

		require.NoError(t, s.Reopen())

		assert.Equal(t, shipment.Open, s.Status())
		assert.Nil(t, s.Courier())
		assert.False(t, s.SenderConfirmedHandover())
		assert.False(t, s.CourierConfirmedHandover())
	})

	t.Run("reopened shipment accepts a different courier", func(t *testing.T) {
		s := newMatchedShipment(t, senderID, courierID)
		require.NoError(t, s.Reopen())

		otherCourier := kernel.NewUUID()
		require.NoError(t, s.AssignCourier(otherCourier))

		assert.True(t, s.Courier().IsEqual(otherCourier))
	})

	t.Run("open shipment cannot reopen", func(t *testing.T) {
		s := newOpenShipment(t, senderID)

		require.ErrorIs(t, s.Reopen(), errs.ErrInvalidState)
	})
}

func TestShipment_ConfirmHandover(t *testing.T) {
	senderID := kernel.NewUUID()
	courierID := kernel.NewUUID()
	now := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)

	t.Run("courier confirms first, shipment stays matched", func(t *testing.T) {
		s := newMatchedShipment(t, senderID, courierID)

		both, err := s.ConfirmHandover(courierID, now)

		require.NoError(t, err)
		assert.False(t, both)
		assert.False(t, s.SenderConfirmedHandover())
		assert.True(t, s.CourierConfirmedHandover())
		assert.Equal(t, shipment.Matched, s.Status())
		assert.Nil(t, s.HandoverConfirmedAt())
	})

	t.Run("both confirmations advance to on-way and stamp the time", func(t *testing.T) {
		s := newMatchedShipment(t, senderID, courierID)

		_, err := s.ConfirmHandover(courierID, now)
		require.NoError(t, err)
		both, err := s.ConfirmHandover(senderID, now)
		require.NoError(t, err)

		assert.True(t, both)
		assert.Equal(t, shipment.OnWay, s.Status())
		require.NotNil(t, s.HandoverConfirmedAt())
		assert.Equal(t, now, *s.HandoverConfirmedAt())
	})

	t.Run("re-confirming is idempotent", func(t *testing.T) {
		s := newMatchedShipment(t, senderID, courierID)

		_, err := s.ConfirmHandover(courierID, now)
		require.NoError(t, err)
		both, err := s.ConfirmHandover(courierID, now.Add(time.Hour))
		require.NoError(t, err)

		assert.False(t, both)
		assert.Equal(t, shipment.Matched, s.Status())
		assert.Nil(t, s.HandoverConfirmedAt())
	})

	t.Run("stranger cannot confirm", func(t *testing.T) {
		s := newMatchedShipment(t, senderID, courierID)

		_, err := s.ConfirmHandover(kernel.NewUUID(), now)

		require.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("open shipment with no courier is rejected", func(t *testing.T) {
		s := newOpenShipment(t, senderID)

		_, err := s.ConfirmHandover(senderID, now)

		require.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("on-way shipment is rejected", func(t *testing.T) {
		s := newMatchedShipment(t, senderID, courierID)
		_, err := s.ConfirmHandover(courierID, now)
		require.NoError(t, err)
		_, err = s.ConfirmHandover(senderID, now)
		require.NoError(t, err)

		_, err = s.ConfirmHandover(senderID, now)

		require.ErrorIs(t, err, errs.ErrForbidden)
	})
}

func TestShipment_ConfirmDelivery(t *testing.T) {
	senderID := kernel.NewUUID()
	courierID := kernel.NewUUID()
	now := time.Date(2026, 3, 15, 18, 0, 0, 0, time.UTC)

	onWayShipment := func(t *testing.T) *shipment.Shipment {
		t.Helper()
		s := newMatchedShipment(t, senderID, courierID)
		_, err := s.ConfirmHandover(courierID, now)
		require.NoError(t, err)
		_, err = s.ConfirmHandover(senderID, now)
		require.NoError(t, err)
		return s
	}

	t.Run("single confirmation keeps shipment on the way", func(t *testing.T) {
		s := onWayShipment(t)

		both, err := s.ConfirmDelivery(senderID, now)

		require.NoError(t, err)
		assert.False(t, both)
		assert.True(t, s.SenderConfirmedDelivery())
		assert.False(t, s.CourierConfirmedDelivery())
		assert.Equal(t, shipment.OnWay, s.Status())
		assert.Nil(t, s.DeliveryConfirmedAt())
	})

	t.Run("both confirmations deliver and stamp the time", func(t *testing.T) {
		s := onWayShipment(t)

		_, err := s.ConfirmDelivery(senderID, now)
		require.NoError(t, err)
		both, err := s.ConfirmDelivery(courierID, now)
		require.NoError(t, err)

		assert.True(t, both)
		assert.Equal(t, shipment.Delivered, s.Status())
		require.NotNil(t, s.DeliveryConfirmedAt())
		assert.Equal(t, now, *s.DeliveryConfirmedAt())
	})

	t.Run("matched shipment rejects delivery confirmation", func(t *testing.T) {
		s := newMatchedShipment(t, senderID, courierID)

		_, err := s.ConfirmDelivery(senderID, now)

		require.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("stranger cannot confirm delivery", func(t *testing.T) {
		s := onWayShipment(t)

		_, err := s.ConfirmDelivery(kernel.NewUUID(), now)

		require.ErrorIs(t, err, errs.ErrForbidden)
	})
}

func TestShipment_DirectStatusPath(t *testing.T) {
	senderID := kernel.NewUUID()
	courierID := kernel.NewUUID()

	t.Run("courier marks shipment on its way", func(t *testing.T) {
		s := newMatchedShipment(t, senderID, courierID)

		require.NoError(t, s.MarkOnWay(courierID))
		assert.Equal(t, shipment.OnWay, s.Status())
	})

	t.Run("courier marks shipment delivered", func(t *testing.T) {
		s := newMatchedShipment(t, senderID, courierID)

		require.NoError(t, s.MarkDelivered(courierID))
		assert.Equal(t, shipment.Delivered, s.Status())
	})

	t.Run("sender cannot use the courier path", func(t *testing.T) {
		s := newMatchedShipment(t, senderID, courierID)

		require.ErrorIs(t, s.MarkOnWay(senderID), errs.ErrForbidden)
		require.ErrorIs(t, s.MarkDelivered(senderID), errs.ErrForbidden)
	})

	t.Run("unmatched shipment has no courier path", func(t *testing.T) {
		s := newOpenShipment(t, senderID)

		require.ErrorIs(t, s.MarkOnWay(courierID), errs.ErrForbidden)
	})
}

func TestRestoreShipment(t *testing.T) {
	senderID := kernel.NewUUID()
	courierID := kernel.NewUUID()
	price, _ := kernel.NewMoney(4500, "EUR")

	t.Run("restores a matched shipment", func(t *testing.T) {
		id := kernel.NewUUID()

		s, err := shipment.RestoreShipment(
			id, senderID, &courierID, "Berlin", "Munich", 2500, "books", price,
			shipment.Matched, false, true, false, false, nil, nil)

		require.NoError(t, err)
		assert.Equal(t, shipment.Matched, s.Status())
		assert.True(t, s.CourierConfirmedHandover())
		assert.False(t, s.SenderConfirmedHandover())
	})

	t.Run("rejects matched shipment without courier", func(t *testing.T) {
		_, err := shipment.RestoreShipment(
			kernel.NewUUID(), senderID, nil, "Berlin", "Munich", 2500, "books", price,
			shipment.Matched, false, false, false, false, nil, nil)

		require.Error(t, err)
	})

	t.Run("rejects open shipment with courier", func(t *testing.T) {
		_, err := shipment.RestoreShipment(
			kernel.NewUUID(), senderID, &courierID, "Berlin", "Munich", 2500, "books", price,
			shipment.Open, false, false, false, false, nil, nil)

		require.Error(t, err)
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		_, err := shipment.RestoreShipment(
			kernel.NewUUID(), senderID, nil, "Berlin", "Munich", 2500, "books", price,
			shipment.Unknown, false, false, false, false, nil, nil)

		require.Error(t, err)
	})
}
