package handler

import (
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	pasetotoken "github.com/pawcare-vn/pawcare_backend/pkg/paseto"
)

// currentUserID pulls the authenticated user ID out of the request.
// AuthRequired guarantees claims are present on protected routes.
func currentUserID(c fiber.Ctx) (uuid.UUID, bool) {
	claims, ok := pasetotoken.ClaimsFromFiber(c)
	if !ok {
		return uuid.Nil, false
	}
	return claims.UserID, true
}

func currentRole(c fiber.Ctx) string {
	claims, ok := pasetotoken.ClaimsFromFiber(c)
	if !ok {
		return ""
	}
	return claims.Role
}

func currentSessionID(c fiber.Ctx) *uuid.UUID {
	claims, ok := pasetotoken.ClaimsFromFiber(c)
	if !ok {
		return nil
	}
	return claims.SessionID
}

func parseUUIDParam(c fiber.Ctx, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Params(name))
}
