package model

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"raporku_backend/internals/constants"
)

func TestUserBeforeSave_RoleValidation(t *testing.T) {
	u := UserModel{UserEmail: "Guru@Sekolah.ID", UserRole: "superhero"}
	assert.Error(t, u.BeforeSave(nil))

	u.UserRole = constants.RoleTeacher
	assert.NoError(t, u.BeforeSave(nil))
	assert.Equal(t, "guru@sekolah.id", u.UserEmail)
}

func TestUserBeforeSave_EmptyRoleDefaultsToTeacher(t *testing.T) {
	u := UserModel{UserEmail: "guru@sekolah.id"}
	assert.NoError(t, u.BeforeSave(nil))
	assert.Equal(t, constants.RoleTeacher, u.UserRole)
}

func TestSetAndCheckPassword(t *testing.T) {
	var u UserModel
	assert.NoError(t, u.SetPassword("rahasia-banget"))

	assert.NotEqual(t, "rahasia-banget", u.UserPassword)
	assert.True(t, u.CheckPassword("rahasia-banget"))
	assert.False(t, u.CheckPassword("salah"))
}
