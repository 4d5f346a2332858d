package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/pawcare-vn/pawcare_backend/internal/api/http/handler"
)

func (r *Router) registerAuthRoutes(api fiber.Router, h *handler.AuthHandler, authRequired fiber.Handler) {
	group := api.Group("/auth")
	group.Post("/register", h.Register)
	group.Post("/verify-otp", h.VerifyOTP)
	group.Post("/resend-otp", h.ResendOTP)
	group.Post("/login", h.Login)
	group.Post("/forgot-password", h.ForgotPassword)
	group.Post("/reset-password", h.ResetPassword)
	group.Post("/refresh", h.Refresh)
	group.Post("/logout", authRequired, h.Logout)
}
