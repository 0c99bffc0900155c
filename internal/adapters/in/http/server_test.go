package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"freight/internal/core/domain/model/account"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEchoContext(headers map[string]string) echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec)
}

func TestActorFromRequest(t *testing.T) {
	userID := kernel.NewUUID()
	companyID := kernel.NewUUID()

	t.Run("staff member with company", func(t *testing.T) {
		ctx := newEchoContext(map[string]string{
			HeaderUserID:    userID.String(),
			HeaderUserRole:  "Driver",
			HeaderCompanyID: companyID.String(),
		})

		actor, err := actorFromRequest(ctx)

		require.NoError(t, err)
		assert.True(t, actor.ID().IsEqual(userID))
		assert.Equal(t, account.RoleDriver, actor.Role())
		require.NotNil(t, actor.CompanyID())
		assert.True(t, actor.CompanyID().IsEqual(companyID))
	})

	t.Run("customer without company", func(t *testing.T) {
		ctx := newEchoContext(map[string]string{
			HeaderUserID:   userID.String(),
			HeaderUserRole: "Customer",
		})

		actor, err := actorFromRequest(ctx)

		require.NoError(t, err)
		assert.Equal(t, account.RoleCustomer, actor.Role())
		assert.Nil(t, actor.CompanyID())
	})

	t.Run("missing user id", func(t *testing.T) {
		ctx := newEchoContext(map[string]string{
			HeaderUserRole: "Customer",
		})

		_, err := actorFromRequest(ctx)

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("unknown role", func(t *testing.T) {
		ctx := newEchoContext(map[string]string{
			HeaderUserID:   userID.String(),
			HeaderUserRole: "Superuser",
		})

		_, err := actorFromRequest(ctx)

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("malformed company id", func(t *testing.T) {
		ctx := newEchoContext(map[string]string{
			HeaderUserID:    userID.String(),
			HeaderUserRole:  "Admin",
			HeaderCompanyID: "not-a-uuid",
		})

		_, err := actorFromRequest(ctx)

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"denied", errs.NewAuthorizationDeniedError("Customer", "close", "delivery"), http.StatusForbidden},
		{"not found", errs.NewObjectNotFoundError("shipment", "x"), http.StatusNotFound},
		{"conflict", errs.NewConcurrentConflictError("shipment", "x"), http.StatusConflict},
		{"bad transition", errs.NewInvalidTransitionError("offer", "Accepted", "Rejected"), http.StatusUnprocessableEntity},
		{"invalid value", errs.NewValueIsInvalidError("price"), http.StatusBadRequest},
		{"required value", errs.NewValueIsRequiredError("name"), http.StatusBadRequest},
		{"unclassified", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, statusFromError(tt.err))
		})
	}
}
