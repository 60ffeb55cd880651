package permissions

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"ledgerbot/internal/model/lederrors"
)

const (
	ownerID    int64 = 1
	adminID    int64 = 2
	operatorID int64 = 3
	strangerID int64 = 4
)

// newSeededRegistry Реестр с владельцем, администратором и оператором.
func newSeededRegistry(t *testing.T) *Registry {
	r := NewRegistry(ownerID)
	assert.NoError(t, r.Grant(ownerID, adminID, Admin))
	assert.NoError(t, r.Grant(adminID, operatorID, Operator))
	return r
}

func Test_NewRegistry_ShouldSeedOwnerAsSuperAdmin(t *testing.T) {
	r := NewRegistry(ownerID)

	assert.Equal(t, SuperAdmin, r.Level(ownerID))
	assert.Equal(t, None, r.Level(strangerID))
	assert.True(t, r.CheckLevel(ownerID, SuperAdmin))
	assert.False(t, r.CheckLevel(strangerID, Operator))
}

func Test_Grant_ShouldRejectSelfEscalation(t *testing.T) {
	r := newSeededRegistry(t)

	// Админ не может выдать уровень, равный своему.
	err := r.Grant(adminID, strangerID, Admin)
	assert.True(t, errors.Is(err, lederrors.ErrNotPermitted))
	assert.Equal(t, None, r.Level(strangerID))

	// Оператор не может выдавать права вообще.
	err = r.Grant(operatorID, strangerID, Operator)
	assert.True(t, errors.Is(err, lederrors.ErrNotPermitted))

	// Неизвестный пользователь - тем более.
	err = r.Grant(strangerID, strangerID, Operator)
	assert.True(t, errors.Is(err, lederrors.ErrNotPermitted))
}

func Test_Grant_ShouldNeverGrantSuperAdmin(t *testing.T) {
	r := NewRegistry(ownerID)

	err := r.Grant(ownerID, adminID, SuperAdmin)
	assert.True(t, errors.Is(err, lederrors.ErrNotPermitted))
	assert.Equal(t, None, r.Level(adminID))
}

func Test_Grant_ShouldAllowHigherLevelActor(t *testing.T) {
	r := newSeededRegistry(t)

	assert.Equal(t, Admin, r.Level(adminID))
	assert.Equal(t, Operator, r.Level(operatorID))
	assert.True(t, r.CheckLevel(operatorID, Operator))
	assert.False(t, r.CheckLevel(operatorID, Admin))
}

func Test_Revoke_ShouldRequireStrictlyHigherLevel(t *testing.T) {
	r := newSeededRegistry(t)
	secondAdmin := int64(5)
	assert.NoError(t, r.Grant(ownerID, secondAdmin, Admin))

	// Админ не может отозвать права другого админа.
	err := r.Revoke(adminID, secondAdmin)
	assert.True(t, errors.Is(err, lederrors.ErrNotPermitted))
	assert.Equal(t, Admin, r.Level(secondAdmin))

	// Владелец - может.
	assert.NoError(t, r.Revoke(ownerID, secondAdmin))
	assert.Equal(t, None, r.Level(secondAdmin))
}

func Test_Revoke_SuperAdminIsUntouchable(t *testing.T) {
	// Решение по открытому вопросу: SuperAdmin не может быть отозван или
	// понижен никем, в том числе другим SuperAdmin (он единственный).
	r := newSeededRegistry(t)

	err := r.Revoke(ownerID, ownerID)
	assert.True(t, errors.Is(err, lederrors.ErrNotPermitted))
	assert.Equal(t, SuperAdmin, r.Level(ownerID))

	err = r.Grant(ownerID, ownerID, Operator)
	assert.True(t, errors.Is(err, lederrors.ErrNotPermitted))
	assert.Equal(t, SuperAdmin, r.Level(ownerID))
}

func Test_Revoke_UnknownTarget_ShouldReturnNotFound(t *testing.T) {
	r := newSeededRegistry(t)

	err := r.Revoke(ownerID, strangerID)
	assert.True(t, errors.Is(err, lederrors.ErrNotFound))
}
