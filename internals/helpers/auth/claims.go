package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"raporku_backend/internals/constants"
)

// Ambil user_id dari c.Locals("user_id") (diisi oleh auth middleware).
// Return 401 kalau belum login, 400 kalau formatnya tidak valid.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	v := c.Locals("user_id")
	if v == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User belum login")
	}

	switch t := v.(type) {
	case uuid.UUID:
		if t == uuid.Nil {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User belum login")
		}
		return t, nil
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "User belum login")
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "User ID pada token tidak valid")
		}
		return id, nil
	default:
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "User ID pada token tidak valid")
	}
}

// GetRoleFromToken membaca role dari locals.
func GetRoleFromToken(c *fiber.Ctx) string {
	if v, ok := c.Locals("role").(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

// EnsureAdmin menolak request kalau role bukan admin.
func EnsureAdmin(c *fiber.Ctx) error {
	if GetRoleFromToken(c) != constants.RoleAdmin {
		return fiber.NewError(fiber.StatusForbidden, "Hanya admin yang diizinkan")
	}
	return nil
}

// EnsureAdminOrTeacher menolak request kalau role bukan admin/teacher.
func EnsureAdminOrTeacher(c *fiber.Ctx) error {
	role := GetRoleFromToken(c)
	if role != constants.RoleAdmin && role != constants.RoleTeacher {
		return fiber.NewError(fiber.StatusForbidden, "Hanya admin atau guru yang diizinkan")
	}
	return nil
}
