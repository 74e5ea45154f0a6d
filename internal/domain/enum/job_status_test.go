package enum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJobStatusNext(t *testing.T) {
	assert.Equal(t, JobStatusProcessing, JobStatusPending.Next())
	assert.Equal(t, JobStatusReady, JobStatusProcessing.Next())
	assert.Equal(t, JobStatusDelivered, JobStatusReady.Next())
	assert.Equal(t, JobStatusDelivered, JobStatusDelivered.Next())
}

func TestJobStatusCanTransitionTo(t *testing.T) {
	assert.True(t, JobStatusPending.CanTransitionTo(JobStatusProcessing))
	assert.True(t, JobStatusPending.CanTransitionTo(JobStatusDelivered)) // skipping ahead
	assert.False(t, JobStatusReady.CanTransitionTo(JobStatusProcessing))
	assert.False(t, JobStatusReady.CanTransitionTo(JobStatusReady))
	assert.False(t, JobStatusPending.CanTransitionTo("Lost"))
	assert.False(t, JobStatus("Lost").CanTransitionTo(JobStatusReady))
}

func TestPaymentMethodValid(t *testing.T) {
	assert.True(t, PaymentMethodCash.Valid())
	assert.True(t, PaymentMethodMFS.Valid())
	assert.False(t, PaymentMethod("Barter").Valid())
	assert.False(t, PaymentMethod("").Valid())
}

func TestRoleBypassesPermissionChecks(t *testing.T) {
	assert.True(t, RoleAdmin.BypassesPermissionChecks())
	assert.True(t, RoleAdministrative.BypassesPermissionChecks())
	assert.False(t, RoleSalesperson.BypassesPermissionChecks())
	assert.False(t, RoleManager.BypassesPermissionChecks())
}
