package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestStatusCodeFor(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{errs.NewObjectNotFoundError("order", "x"), http.StatusNotFound},
		{order.ErrNotAuthorizedForOrder, http.StatusForbidden},
		{order.ErrInvalidTransition, http.StatusConflict},
		{order.ErrOrderTerminal, http.StatusConflict},
		{order.ErrProofOfDeliveryRequired, http.StatusConflict},
		{order.ErrCODNotDelivered, http.StatusConflict},
		{courier.ErrCourierInactive, http.StatusConflict},
		{commands.ErrConcurrentModification, http.StatusConflict},
		{courier.ErrPairingCodeInvalid, http.StatusBadRequest},
		{courier.ErrPairingCodeExpired, http.StatusBadRequest},
		{errs.NewValueIsRequiredError("name"), http.StatusBadRequest},
		{errs.NewValueIsInvalidError("lat"), http.StatusBadRequest},
		{errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v_%d", tt.err, tt.code), func(t *testing.T) {
			assert.Equal(t, tt.code, statusCodeFor(tt.err))
		})
	}
}

func TestStatusCodeFor_MalformedUUIDIsBadRequest(t *testing.T) {
	_, err := kernel.UUIDFromString("not-a-uuid")

	assert.Equal(t, http.StatusBadRequest, statusCodeFor(err))
}

func TestActorFromRequest(t *testing.T) {
	actor, err := actorFromRequest("courier-1", "")
	assert.NoError(t, err)
	assert.Equal(t, order.ActorCourier, actor.Type())

	actor, err = actorFromRequest("", "admin-1")
	assert.NoError(t, err)
	assert.Equal(t, order.ActorAdmin, actor.Type())

	_, err = actorFromRequest("", "")
	assert.Error(t, err)

	_, err = actorFromRequest("courier-1", "admin-1")
	assert.Error(t, err)
}
