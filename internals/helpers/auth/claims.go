// file: internals/helpers/auth/claims.go
package helperAuth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Nama locals mengikuti yang di-set middleware AuthJWT.
const (
	LocUserID = "user_id"
)

// GetUserID mengambil namespace user dari locals. Semua operasi data
// wajib discope ke ID ini; kalau kosong berarti "belum siap" → 401.
func GetUserID(c *fiber.Ctx) (uuid.UUID, error) {
	v := c.Locals(LocUserID)
	if v == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	switch t := v.(type) {
	case uuid.UUID:
		if t != uuid.Nil {
			return t, nil
		}
	case string:
		if id, err := uuid.Parse(t); err == nil && id != uuid.Nil {
			return id, nil
		}
	}
	return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
}
