package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"raporku_backend/internals/constants"
)

// UserModel merepresentasikan tabel users (guru/admin yang mengelola rapor)
type UserModel struct {
	UserID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:user_id" json:"user_id"`
	UserName      string         `gorm:"type:varchar(80);not null;column:user_name" json:"user_name"`
	UserEmail     string         `gorm:"type:varchar(255);not null;uniqueIndex:uq_users_email;column:user_email" json:"user_email"`
	UserPassword  string         `gorm:"type:varchar(255);not null;column:user_password" json:"-"`
	UserRole      string         `gorm:"type:varchar(20);not null;default:'teacher';column:user_role" json:"user_role"`
	UserIsActive  bool           `gorm:"not null;default:true;column:user_is_active" json:"user_is_active"`
	UserCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:user_created_at" json:"user_created_at"`
	UserUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:user_updated_at" json:"user_updated_at"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index" json:"user_deleted_at,omitempty"`
}

func (UserModel) TableName() string { return "users" }

func (u *UserModel) BeforeSave(tx *gorm.DB) error {
	u.UserEmail = strings.ToLower(strings.TrimSpace(u.UserEmail))
	if u.UserRole == "" {
		u.UserRole = constants.RoleTeacher
	}
	if !constants.IsValidRole(u.UserRole) {
		return errors.New("user_role tidak dikenal")
	}
	return nil
}

// SetPassword menyimpan hash bcrypt, bukan plaintext
func (u *UserModel) SetPassword(plain string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.UserPassword = string(hashed)
	return nil
}

// CheckPassword membandingkan plaintext dengan hash tersimpan
func (u *UserModel) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.UserPassword), []byte(plain)) == nil
}
