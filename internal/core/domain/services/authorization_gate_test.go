package services_test

import (
	"testing"
	"time"

	"courier/internal/core/domain/model/actor"
	"courier/internal/core/domain/model/shipment"
	"courier/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	owner       = actor.Actor{ID: 10, Role: actor.RoleShipper}
	otherOwner  = actor.Actor{ID: 11, Role: actor.RoleShipper}
	driver      = actor.Actor{ID: 20, Role: actor.RoleDriver}
	otherDriver = actor.Actor{ID: 21, Role: actor.RoleDriver}
	admin       = actor.Actor{ID: 1, Role: actor.RoleAdmin}
)

func buildShipment(t *testing.T, status shipment.Status) *shipment.Shipment {
	t.Helper()
	now := time.Now().UTC()

	pickup, err := shipment.NewAddress("100 King St W", "Toronto", "M5V 2T6")
	require.NoError(t, err)
	delivery, err := shipment.NewAddress("200 Bay St", "Toronto", "M5J 2J2")
	require.NoError(t, err)
	province, err := shipment.NewProvince("ON")
	require.NoError(t, err)

	s, err := shipment.NewShipment(owner.ID, "parcel", pickup, delivery, province, "", now)
	require.NoError(t, err)

	switch status {
	case shipment.StatusPending:
	case shipment.StatusQuoted:
		require.NoError(t, s.Quote(120, now))
	case shipment.StatusApproved:
		require.NoError(t, s.Quote(120, now))
		require.NoError(t, s.Approve(now))
	case shipment.StatusAssigned:
		require.NoError(t, s.Quote(120, now))
		require.NoError(t, s.AssignDriver(driver.ID, nil, now))
	default:
		t.Fatalf("buildShipment does not support status %s", status)
	}
	return s
}

func TestAuthorizationGate_AuthorizeCreate(t *testing.T) {
	gate := services.NewAuthorizationGate()

	require.NoError(t, gate.AuthorizeCreate(owner))
	require.ErrorIs(t, gate.AuthorizeCreate(driver), services.ErrForbidden)
	require.ErrorIs(t, gate.AuthorizeCreate(admin), services.ErrForbidden)
}

func TestAuthorizationGate_Authorize(t *testing.T) {
	gate := services.NewAuthorizationGate()

	tests := []struct {
		name    string
		act     actor.Actor
		status  shipment.Status
		op      services.Operation
		allowed bool
	}{
		// view
		{"admin views anything", admin, shipment.StatusPending, services.OpViewShipment, true},
		{"owner views own", owner, shipment.StatusPending, services.OpViewShipment, true},
		{"foreign shipper blocked from viewing", otherOwner, shipment.StatusPending, services.OpViewShipment, false},
		{"driver views open job", driver, shipment.StatusApproved, services.OpViewShipment, true},
		{"driver views own assignment", driver, shipment.StatusAssigned, services.OpViewShipment, true},
		{"foreign driver blocked from assignment", otherDriver, shipment.StatusAssigned, services.OpViewShipment, false},
		{"driver blocked from pending", driver, shipment.StatusPending, services.OpViewShipment, false},

		// update
		{"owner edits own pending", owner, shipment.StatusPending, services.OpUpdateShipment, true},
		{"owner blocked once quoted", owner, shipment.StatusQuoted, services.OpUpdateShipment, false},
		{"foreign shipper blocked from editing", otherOwner, shipment.StatusPending, services.OpUpdateShipment, false},
		{"admin edits regardless of status", admin, shipment.StatusQuoted, services.OpUpdateShipment, true},
		{"driver never edits", driver, shipment.StatusPending, services.OpUpdateShipment, false},

		// admin-only mutations
		{"admin quotes", admin, shipment.StatusPending, services.OpQuoteShipment, true},
		{"shipper blocked from quoting", owner, shipment.StatusPending, services.OpQuoteShipment, false},
		{"admin approves", admin, shipment.StatusQuoted, services.OpApproveShipment, true},
		{"driver blocked from approving", driver, shipment.StatusQuoted, services.OpApproveShipment, false},
		{"admin cancels", admin, shipment.StatusAssigned, services.OpCancelShipment, true},
		{"shipper blocked from cancelling", owner, shipment.StatusPending, services.OpCancelShipment, false},
		{"admin settles invoice", admin, shipment.StatusAssigned, services.OpMarkInvoicePaid, true},
		{"shipper blocked from settling", owner, shipment.StatusAssigned, services.OpMarkInvoicePaid, false},

		// job claim
		{"driver claims open job", driver, shipment.StatusApproved, services.OpAcceptJob, true},
		{"driver re-claims own job", driver, shipment.StatusAssigned, services.OpAcceptJob, true},
		{"foreign driver blocked from claimed job", otherDriver, shipment.StatusAssigned, services.OpAcceptJob, false},
		{"driver blocked from unapproved job", driver, shipment.StatusQuoted, services.OpAcceptJob, false},
		{"shipper blocked from claiming", owner, shipment.StatusApproved, services.OpAcceptJob, false},
		{"admin blocked from claiming", admin, shipment.StatusApproved, services.OpAcceptJob, false},

		// job status
		{"owning driver advances status", driver, shipment.StatusAssigned, services.OpUpdateJobStatus, true},
		{"foreign driver blocked from advancing", otherDriver, shipment.StatusAssigned, services.OpUpdateJobStatus, false},
		{"admin blocked from driver flow", admin, shipment.StatusAssigned, services.OpUpdateJobStatus, false},

		// invoice
		{"owner views invoice", owner, shipment.StatusAssigned, services.OpViewInvoice, true},
		{"admin views invoice", admin, shipment.StatusAssigned, services.OpViewInvoice, true},
		{"foreign shipper blocked from invoice", otherOwner, shipment.StatusAssigned, services.OpViewInvoice, false},
		{"driver blocked from invoice", driver, shipment.StatusAssigned, services.OpViewInvoice, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := buildShipment(t, tt.status)

			err := gate.Authorize(tt.act, s, tt.op)

			if tt.allowed {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, services.ErrForbidden)

			var forbidden *services.ForbiddenError
			require.ErrorAs(t, err, &forbidden)
			assert.Equal(t, tt.op, forbidden.Operation)
			assert.Equal(t, tt.act.Role, forbidden.Role)
		})
	}
}

func TestAuthorizationGate_Authorize_UnconstructedShipment(t *testing.T) {
	gate := services.NewAuthorizationGate()
	var s shipment.Shipment

	err := gate.Authorize(admin, &s, services.OpViewShipment)

	require.ErrorIs(t, err, shipment.ErrShipmentIsNotConstructed)
}
