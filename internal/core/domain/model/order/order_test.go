package order_test

import (
	"testing"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSender(t *testing.T) order.Sender {
	t.Helper()
	sender, err := order.NewSender("Budi", "+628111111", "Jl. Melati 5")
	require.NoError(t, err)
	return sender
}

func testPricing(t *testing.T) order.Pricing {
	t.Helper()
	pricing, err := order.NewPricing(1000, 3000, 0, 4000, 4000)
	require.NoError(t, err)
	return pricing
}

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	pickup, err := kernel.NewPoint(-6.1754, 106.8272)
	require.NoError(t, err)
	dropoff, err := kernel.NewPoint(-6.2000, 106.8167)
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), testSender(t), pickup, dropoff, testPricing(t), 0, 0)
	require.NoError(t, err)
	return o
}

// orderInStatus drives a fresh order through real transitions until it reaches
// the wanted status, so tests never restore synthetic states the state machine
// could not produce.
func orderInStatus(t *testing.T, status order.Status, courierID kernel.UUID) *order.Order {
	t.Helper()
	o := newTestOrder(t)
	admin := order.NewAdminActor("admin")
	courier := order.NewCourierActor(courierID.String())

	if status == order.StatusNew {
		return o
	}
	if status == order.StatusCancelled {
		require.NoError(t, o.Cancel(admin))
		return o
	}
	if status == order.StatusAssigned {
		require.NoError(t, o.Assign(courierID, false, admin))
		return o
	}

	require.NoError(t, o.Assign(courierID, true, admin))
	if status == order.StatusOffered {
		return o
	}

	path := []order.Status{
		order.StatusAccepted, order.StatusOtwPickup, order.StatusPicked,
		order.StatusOtwDropoff, order.StatusNeedPOD,
	}
	for _, next := range path {
		require.NoError(t, o.AdvanceTo(next, courier))
		if o.Status() == status {
			return o
		}
	}
	if status == order.StatusDelivered {
		require.NoError(t, o.UploadPODAndDeliver(courierID, "https://cdn.example/pod.jpg"))
		return o
	}

	t.Fatalf("cannot build order in status %s", status)
	return nil
}

func TestNewOrder(t *testing.T) {
	t.Run("starts in NEW with a creation event", func(t *testing.T) {
		o := newTestOrder(t)

		assert.Equal(t, order.StatusNew, o.Status())
		assert.Nil(t, o.Courier())

		audit := o.Audit()
		require.Len(t, audit, 1)
		assert.Equal(t, order.EventOrderCreated, audit[0].Kind())
		assert.Equal(t, order.ActorSystem, audit[0].ActorType())
	})

	t.Run("rejects negative amounts", func(t *testing.T) {
		pickup, _ := kernel.NewPoint(-6.2, 106.8)
		_, err := order.NewOrder(kernel.NewUUID(), testSender(t), pickup, pickup, testPricing(t), -1, 0)
		require.Error(t, err)

		_, err = order.NewOrder(kernel.NewUUID(), testSender(t), pickup, pickup, testPricing(t), 0, -500)
		require.Error(t, err)
	})

	t.Run("rejects zero-value struct", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_Assign(t *testing.T) {
	admin := order.NewAdminActor("admin")

	t.Run("offer sets OFFERED and records old and new courier", func(t *testing.T) {
		o := newTestOrder(t)
		courierID := kernel.NewUUID()

		require.NoError(t, o.Assign(courierID, true, admin))

		assert.Equal(t, order.StatusOffered, o.Status())
		require.NotNil(t, o.Courier())
		assert.True(t, o.Courier().IsEqual(courierID))

		events := o.Audit()
		last := events[len(events)-1]
		assert.Equal(t, order.EventOrderAssigned, last.Kind())
		assert.Equal(t, "", last.Meta()["oldCourierId"])
		assert.Equal(t, courierID.String(), last.Meta()["newCourierId"])
	})

	t.Run("direct assignment sets ASSIGNED", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.Assign(kernel.NewUUID(), false, admin))

		assert.Equal(t, order.StatusAssigned, o.Status())
	})

	t.Run("re-offer replaces the binding before acceptance", func(t *testing.T) {
		o := newTestOrder(t)
		first := kernel.NewUUID()
		second := kernel.NewUUID()

		require.NoError(t, o.Assign(first, true, admin))
		require.NoError(t, o.Assign(second, true, admin))

		assert.True(t, o.Courier().IsEqual(second))
		events := o.Audit()
		last := events[len(events)-1]
		assert.Equal(t, first.String(), last.Meta()["oldCourierId"])
		assert.Equal(t, second.String(), last.Meta()["newCourierId"])
	})

	t.Run("refused once the courier accepted", func(t *testing.T) {
		courierID := kernel.NewUUID()
		o := orderInStatus(t, order.StatusAccepted, courierID)

		err := o.Assign(kernel.NewUUID(), true, admin)
		require.Error(t, err)
		assert.True(t, o.Courier().IsEqual(courierID))
	})

	t.Run("refused on terminal orders", func(t *testing.T) {
		o := orderInStatus(t, order.StatusCancelled, kernel.NewUUID())

		require.ErrorIs(t, o.Assign(kernel.NewUUID(), true, admin), order.ErrOrderTerminal)
	})

	t.Run("refused for non-admin actors", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.Assign(kernel.NewUUID(), true, order.NewCourierActor(kernel.NewUUID().String()))
		require.ErrorIs(t, err, order.ErrNotAuthorizedForOrder)
	})
}

func TestOrder_RejectThenReassign(t *testing.T) {
	courierA := kernel.NewUUID()
	o := orderInStatus(t, order.StatusOffered, courierA)

	require.NoError(t, o.Reject(courierA, "tidak bisa"))

	assert.Equal(t, order.StatusNew, o.Status())
	assert.Nil(t, o.Courier())

	events := o.Audit()
	last := events[len(events)-1]
	assert.Equal(t, order.EventOrderRejected, last.Kind())
	assert.Equal(t, "tidak bisa", last.Meta()["reason"])

	// the order is immediately reassignable
	courierB := kernel.NewUUID()
	require.NoError(t, o.Assign(courierB, true, order.NewAdminActor("admin")))
	assert.True(t, o.Courier().IsEqual(courierB))
}

func TestOrder_Reject(t *testing.T) {
	t.Run("defaults the reason", func(t *testing.T) {
		courierID := kernel.NewUUID()
		o := orderInStatus(t, order.StatusOffered, courierID)

		require.NoError(t, o.Reject(courierID, ""))

		events := o.Audit()
		assert.Equal(t, "not specified", events[len(events)-1].Meta()["reason"])
	})

	t.Run("only legal while OFFERED", func(t *testing.T) {
		courierID := kernel.NewUUID()
		o := orderInStatus(t, order.StatusAccepted, courierID)

		require.ErrorIs(t, o.Reject(courierID, "terlambat"), order.ErrInvalidTransition)
	})

	t.Run("only the offered courier may reject", func(t *testing.T) {
		o := orderInStatus(t, order.StatusOffered, kernel.NewUUID())

		require.ErrorIs(t, o.Reject(kernel.NewUUID(), "x"), order.ErrNotAuthorizedForOrder)
	})
}

func TestOrder_AdvanceTo(t *testing.T) {
	t.Run("walks the courier happy path", func(t *testing.T) {
		courierID := kernel.NewUUID()
		courier := order.NewCourierActor(courierID.String())
		o := orderInStatus(t, order.StatusAccepted, courierID)

		for _, next := range []order.Status{
			order.StatusOtwPickup, order.StatusPicked,
			order.StatusOtwDropoff, order.StatusNeedPOD,
		} {
			require.NoError(t, o.AdvanceTo(next, courier))
			assert.Equal(t, next, o.Status())

			events := o.Audit()
			last := events[len(events)-1]
			assert.Equal(t, order.StatusEventKind(next), last.Kind())
			assert.NotEmpty(t, last.Meta()["previousStatus"])
		}
	})

	t.Run("invalid transition reports current status and allowed set", func(t *testing.T) {
		courierID := kernel.NewUUID()
		o := orderInStatus(t, order.StatusAccepted, courierID)

		err := o.AdvanceTo(order.StatusDelivered, order.NewCourierActor(courierID.String()))

		var invalid *order.InvalidTransitionError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, order.StatusAccepted, invalid.From)
		assert.Equal(t, order.StatusDelivered, invalid.Requested)
		assert.Equal(t, []order.Status{order.StatusOtwPickup}, invalid.Allowed)
	})

	t.Run("delivering without POD fails the precondition", func(t *testing.T) {
		courierID := kernel.NewUUID()
		o := orderInStatus(t, order.StatusNeedPOD, courierID)

		err := o.AdvanceTo(order.StatusDelivered, order.NewCourierActor(courierID.String()))

		require.ErrorIs(t, err, order.ErrProofOfDeliveryRequired)
		require.ErrorIs(t, err, order.ErrPreconditionFailed)
		assert.Equal(t, order.StatusNeedPOD, o.Status())
	})

	t.Run("admin may override the POD precondition", func(t *testing.T) {
		o := orderInStatus(t, order.StatusNeedPOD, kernel.NewUUID())

		require.NoError(t, o.AdvanceTo(order.StatusDelivered, order.NewAdminActor("admin")))
		assert.Equal(t, order.StatusDelivered, o.Status())
	})

	t.Run("requesting REJECTED routes through reject semantics", func(t *testing.T) {
		courierID := kernel.NewUUID()
		o := orderInStatus(t, order.StatusOffered, courierID)

		require.NoError(t, o.AdvanceTo(order.StatusRejected, order.NewCourierActor(courierID.String())))

		assert.Equal(t, order.StatusNew, o.Status())
		assert.Nil(t, o.Courier())
	})
}

func TestOrder_TransitionSoundness_FullCrossProduct(t *testing.T) {
	// For every (at-rest status, requested status) pair, a courier-driven
	// AdvanceTo must succeed exactly when the transition table allows it.
	table := courierTable()

	for _, from := range allStatuses() {
		if from == order.StatusRejected {
			continue // transient, unreachable at rest
		}
		for _, requested := range allStatuses() {
			from, requested := from, requested
			t.Run(from.String()+"_to_"+requested.String(), func(t *testing.T) {
				courierID := kernel.NewUUID()
				o := orderInStatus(t, from, courierID)

				err := o.AdvanceTo(requested, order.NewCourierActor(courierID.String()))

				allowed := false
				for _, next := range table[from] {
					if next == requested {
						allowed = true
					}
				}
				// NEED_POD -> DELIVERED is in the table but gated on a POD
				// photo, which this bare order does not have.
				if from == order.StatusNeedPOD && requested == order.StatusDelivered {
					require.ErrorIs(t, err, order.ErrPreconditionFailed)
					return
				}
				if allowed {
					require.NoError(t, err)
				} else {
					require.Error(t, err)
				}
			})
		}
	}
}

func TestOrder_TerminalImmutability(t *testing.T) {
	courierID := kernel.NewUUID()
	admin := order.NewAdminActor("admin")

	for _, terminal := range []order.Status{order.StatusDelivered, order.StatusCancelled} {
		t.Run(terminal.String(), func(t *testing.T) {
			o := orderInStatus(t, terminal, courierID)
			statusBefore := o.Status()

			require.ErrorIs(t, o.Assign(kernel.NewUUID(), true, admin), order.ErrOrderTerminal)
			require.ErrorIs(t, o.Cancel(admin), order.ErrOrderTerminal)
			require.ErrorIs(t, o.AdvanceTo(order.StatusOtwPickup, admin), order.ErrOrderTerminal)
			if terminal == order.StatusDelivered {
				require.ErrorIs(t, o.Accept(courierID), order.ErrOrderTerminal)
				require.ErrorIs(t, o.UploadPODAndDeliver(courierID, "x.jpg"), order.ErrOrderTerminal)
			}

			assert.Equal(t, statusBefore, o.Status())
		})
	}
}

func TestOrder_OwnershipEnforcement(t *testing.T) {
	// Every courier-initiated operation must refuse a courier that is not the
	// assigned one, leaving the order untouched: same status, no audit entry.
	assignedCourier := kernel.NewUUID()
	stranger := kernel.NewUUID()

	ops := map[string]func(o *order.Order) error{
		"accept": func(o *order.Order) error { return o.Accept(stranger) },
		"reject": func(o *order.Order) error { return o.Reject(stranger, "mau") },
		"advance": func(o *order.Order) error {
			return o.AdvanceTo(order.StatusAccepted, order.NewCourierActor(stranger.String()))
		},
		"upload pod": func(o *order.Order) error { return o.UploadPODAndDeliver(stranger, "x.jpg") },
		"report issue": func(o *order.Order) error {
			return o.ReportIssue(stranger, "alamat salah", "rumah kosong")
		},
		"mark cod collected": func(o *order.Order) error { return o.MarkCODCollected(stranger) },
	}

	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			o := orderInStatus(t, order.StatusOffered, assignedCourier)
			auditBefore := len(o.Audit())
			statusBefore := o.Status()

			require.ErrorIs(t, op(o), order.ErrNotAuthorizedForOrder)

			assert.Equal(t, statusBefore, o.Status())
			assert.Len(t, o.Audit(), auditBefore, "no audit entry may be appended")
		})
	}
}

func TestOrder_UploadPODAndDeliver(t *testing.T) {
	t.Run("appends exactly one photo and two events", func(t *testing.T) {
		courierID := kernel.NewUUID()
		o := orderInStatus(t, order.StatusNeedPOD, courierID)
		photosBefore := len(o.PODPhotos())

		require.NoError(t, o.UploadPODAndDeliver(courierID, "https://cdn.example/pod-1.jpg"))

		assert.Equal(t, order.StatusDelivered, o.Status())
		require.Len(t, o.PODPhotos(), photosBefore+1)
		assert.Equal(t, "https://cdn.example/pod-1.jpg", o.PODPhotos()[photosBefore].URL())

		events := o.Audit()
		require.GreaterOrEqual(t, len(events), 2)
		assert.Equal(t, order.EventPODUploaded, events[len(events)-2].Kind())
		assert.Equal(t, order.StatusEventKind(order.StatusDelivered), events[len(events)-1].Kind())
	})

	t.Run("refused outside NEED_POD", func(t *testing.T) {
		courierID := kernel.NewUUID()
		o := orderInStatus(t, order.StatusPicked, courierID)

		require.ErrorIs(t, o.UploadPODAndDeliver(courierID, "x.jpg"), order.ErrInvalidTransition)
	})

	t.Run("refuses an empty photo reference", func(t *testing.T) {
		courierID := kernel.NewUUID()
		o := orderInStatus(t, order.StatusNeedPOD, courierID)

		require.Error(t, o.UploadPODAndDeliver(courierID, ""))
		assert.Equal(t, order.StatusNeedPOD, o.Status())
	})
}

func TestOrder_ReportIssue(t *testing.T) {
	courierID := kernel.NewUUID()
	o := orderInStatus(t, order.StatusOtwDropoff, courierID)
	statusBefore := o.Status()

	require.NoError(t, o.ReportIssue(courierID, "penerima tidak ada", "sudah ditunggu 15 menit"))

	assert.Equal(t, statusBefore, o.Status(), "reporting an issue never changes status")
	events := o.Audit()
	last := events[len(events)-1]
	assert.Equal(t, order.EventIssueReported, last.Kind())
	assert.Equal(t, "penerima tidak ada", last.Meta()["type"])
}

func TestOrder_Financials(t *testing.T) {
	newOrderWith := func(t *testing.T, cod, talangan int) (*order.Order, kernel.UUID) {
		pickup, _ := kernel.NewPoint(-6.2, 106.8)
		o, err := order.NewOrder(kernel.NewUUID(), testSender(t), pickup, pickup, testPricing(t), cod, talangan)
		require.NoError(t, err)
		courierID := kernel.NewUUID()
		admin := order.NewAdminActor("admin")
		require.NoError(t, o.Assign(courierID, false, admin))
		return o, courierID
	}

	t.Run("cod settle requires delivery", func(t *testing.T) {
		o, courierID := newOrderWith(t, 150000, 0)
		admin := order.NewAdminActor("admin")

		require.NoError(t, o.MarkCODCollected(courierID))
		require.ErrorIs(t, o.SettleCOD(admin), order.ErrCODNotDelivered)

		courier := order.NewCourierActor(courierID.String())
		for _, next := range []order.Status{
			order.StatusOtwPickup, order.StatusPicked, order.StatusOtwDropoff, order.StatusNeedPOD,
		} {
			require.NoError(t, o.AdvanceTo(next, courier))
		}
		require.NoError(t, o.UploadPODAndDeliver(courierID, "pod.jpg"))

		require.NoError(t, o.SettleCOD(admin))
		assert.True(t, o.CODSettled())
	})

	t.Run("cod operations need a COD amount", func(t *testing.T) {
		o, courierID := newOrderWith(t, 0, 0)

		require.ErrorIs(t, o.MarkCODCollected(courierID), order.ErrPreconditionFailed)
	})

	t.Run("talangan reimbursement is admin-only bookkeeping", func(t *testing.T) {
		o, _ := newOrderWith(t, 0, 75000)
		admin := order.NewAdminActor("admin")
		statusBefore := o.Status()

		require.ErrorIs(t, o.ConfirmTalanganReimbursed(order.NewCourierActor("x")), order.ErrNotAuthorizedForOrder)
		require.NoError(t, o.ConfirmTalanganReimbursed(admin))

		assert.True(t, o.TalanganReimbursed())
		assert.Equal(t, statusBefore, o.Status())
	})

	t.Run("talangan confirmation without talangan fails", func(t *testing.T) {
		o, _ := newOrderWith(t, 0, 0)

		require.ErrorIs(t, o.ConfirmTalanganReimbursed(order.NewAdminActor("admin")), order.ErrNoTalangan)
	})
}

func TestRestoreOrder(t *testing.T) {
	pickup, _ := kernel.NewPoint(-6.2, 106.8)

	t.Run("round-trips a live order", func(t *testing.T) {
		courierID := kernel.NewUUID()
		o := orderInStatus(t, order.StatusPicked, courierID)

		restored, err := order.RestoreOrder(
			o.ID(), 3, o.Status(), o.Courier(),
			o.Sender(), o.Pickup(), o.Dropoff(), o.Pricing(),
			o.CODAmount(), o.CODCollected(), o.CODSettled(),
			o.TalanganAmount(), o.TalanganReimbursed(),
			o.PODPhotos(), o.Audit(),
		)

		require.NoError(t, err)
		assert.Equal(t, 3, restored.Version())
		assert.Equal(t, o.Status(), restored.Status())
		assert.Equal(t, len(o.Audit()), len(restored.Audit()))
	})

	t.Run("rejects REJECTED at rest", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), 0, order.StatusRejected, nil,
			testSender(t), pickup, pickup, testPricing(t),
			0, false, false, 0, false, nil, nil,
		)
		require.Error(t, err)
	})

	t.Run("rejects courier on NEW order", func(t *testing.T) {
		courierID := kernel.NewUUID()
		_, err := order.RestoreOrder(
			kernel.NewUUID(), 0, order.StatusNew, &courierID,
			testSender(t), pickup, pickup, testPricing(t),
			0, false, false, 0, false, nil, nil,
		)
		require.Error(t, err)
	})

	t.Run("rejects settled COD before delivery", func(t *testing.T) {
		courierID := kernel.NewUUID()
		_, err := order.RestoreOrder(
			kernel.NewUUID(), 0, order.StatusPicked, &courierID,
			testSender(t), pickup, pickup, testPricing(t),
			100000, true, true, 0, false, nil, nil,
		)
		require.Error(t, err)
	})
}
