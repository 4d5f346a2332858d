package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/pawcare-vn/pawcare_backend/internal/service/auth"
)

type AuthHandler struct {
	svc auth.Service
}

func NewAuthHandler(svc auth.Service) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func mapAuthError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, auth.ErrEmailAlreadyExists):
		return conflict(c, "Email đã được đăng ký")
	case errors.Is(err, auth.ErrInvalidEmail):
		return badRequest(c, "Email không hợp lệ")
	case errors.Is(err, auth.ErrInvalidPhone):
		return badRequest(c, "Số điện thoại không hợp lệ")
	case errors.Is(err, auth.ErrInvalidRole):
		return badRequest(c, "Vai trò đăng ký không hợp lệ")
	case errors.Is(err, auth.ErrPasswordTooShort):
		return badRequest(c, "Mật khẩu phải có ít nhất 8 ký tự")
	case errors.Is(err, auth.ErrOTPExpired):
		return badRequest(c, "Mã xác thực đã hết hạn, vui lòng yêu cầu mã mới")
	case errors.Is(err, auth.ErrOTPInvalid):
		return badRequest(c, "Mã xác thực không đúng")
	case errors.Is(err, auth.ErrOTPMaxAttempts):
		return tooManyRequests(c, "Bạn đã nhập sai quá nhiều lần, vui lòng yêu cầu mã mới")
	case errors.Is(err, auth.ErrInvalidCredentials):
		return fail(c, fiber.StatusUnauthorized, "Email hoặc mật khẩu không đúng")
	case errors.Is(err, auth.ErrAccountSuspended):
		return fail(c, fiber.StatusForbidden, "Tài khoản của bạn đã bị tạm khóa")
	case errors.Is(err, auth.ErrEmailNotVerified):
		return fail(c, fiber.StatusForbidden, "Email chưa được xác thực, vui lòng kiểm tra hộp thư")
	case errors.Is(err, auth.ErrResetTokenInvalid):
		return badRequest(c, "Mã đặt lại mật khẩu không hợp lệ hoặc đã hết hạn")
	case errors.Is(err, auth.ErrAccountLocked):
		return tooManyRequests(c, "Tài khoản tạm khóa do đăng nhập sai nhiều lần, vui lòng thử lại sau")
	case errors.Is(err, auth.ErrSessionNotFound), errors.Is(err, auth.ErrInvalidToken):
		return unauthorized(c)
	default:
		return internalError(c)
	}
}

func tokenResponse(t *auth.AuthTokens) fiber.Map {
	expiresAt := time.Now().Add(time.Duration(t.ExpiresIn) * time.Second).UTC().Format(time.RFC3339)

	resp := fiber.Map{
		"access_token":  t.AccessToken,
		"refresh_token": t.RefreshToken,
		"expires_at":    expiresAt,
	}
	if t.User != nil {
		resp["user_id"] = t.User.ID.String()
		resp["role"] = t.User.Role.String()
		resp["user"] = t.User
	}
	return resp
}

// POST /auth/register
func (h *AuthHandler) Register(c fiber.Ctx) error {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		FullName string `json:"full_name"`
		Phone    string `json:"phone"`
		Role     string `json:"role"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "Nội dung yêu cầu không hợp lệ")
	}
	if body.Role == "" {
		body.Role = "customer"
	}

	if err := h.svc.Register(c.Context(), auth.RegisterRequest{
		Email:    body.Email,
		Password: body.Password,
		FullName: body.FullName,
		Phone:    body.Phone,
		Role:     body.Role,
	}); err != nil {
		return mapAuthError(c, err)
	}

	return created(c, fiber.Map{
		"message": "Đăng ký thành công, vui lòng kiểm tra email để lấy mã xác thực",
	})
}

// POST /auth/verify-otp
func (h *AuthHandler) VerifyOTP(c fiber.Ctx) error {
	var body struct {
		Email string `json:"email"`
		Code  string `json:"code"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "Nội dung yêu cầu không hợp lệ")
	}

	tokens, err := h.svc.VerifyOTP(c.Context(), auth.VerifyOTPRequest{
		Email: body.Email,
		Code:  body.Code,
	})
	if err != nil {
		return mapAuthError(c, err)
	}

	return ok(c, tokenResponse(tokens))
}

// POST /auth/resend-otp
func (h *AuthHandler) ResendOTP(c fiber.Ctx) error {
	var body struct {
		Email string `json:"email"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "Nội dung yêu cầu không hợp lệ")
	}

	if err := h.svc.ResendOTP(c.Context(), body.Email); err != nil {
		return mapAuthError(c, err)
	}

	return ok(c, fiber.Map{"message": "Nếu email tồn tại, mã xác thực mới đã được gửi"})
}

// POST /auth/login
func (h *AuthHandler) Login(c fiber.Ctx) error {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "Nội dung yêu cầu không hợp lệ")
	}

	tokens, err := h.svc.Login(c.Context(), auth.LoginRequest{
		Email:    body.Email,
		Password: body.Password,
	})
	if err != nil {
		return mapAuthError(c, err)
	}

	return ok(c, tokenResponse(tokens))
}

// POST /auth/refresh
func (h *AuthHandler) Refresh(c fiber.Ctx) error {
	var body struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.Bind().JSON(&body); err != nil || body.RefreshToken == "" {
		return badRequest(c, "Thiếu refresh token")
	}

	tokens, err := h.svc.RefreshTokens(c.Context(), body.RefreshToken)
	if err != nil {
		return mapAuthError(c, err)
	}

	return ok(c, tokenResponse(tokens))
}

// POST /auth/forgot-password
func (h *AuthHandler) ForgotPassword(c fiber.Ctx) error {
	var body struct {
		Email string `json:"email"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "Nội dung yêu cầu không hợp lệ")
	}

	if err := h.svc.ForgotPassword(c.Context(), body.Email); err != nil {
		return mapAuthError(c, err)
	}

	return ok(c, fiber.Map{"message": "Nếu email tồn tại, hướng dẫn đặt lại mật khẩu đã được gửi"})
}

// POST /auth/reset-password
func (h *AuthHandler) ResetPassword(c fiber.Ctx) error {
	var body struct {
		Token    string `json:"token"`
		Password string `json:"password"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "Nội dung yêu cầu không hợp lệ")
	}

	if err := h.svc.ResetPassword(c.Context(), body.Token, body.Password); err != nil {
		return mapAuthError(c, err)
	}

	return ok(c, fiber.Map{"message": "Mật khẩu đã được cập nhật, vui lòng đăng nhập lại"})
}

// POST /auth/logout
func (h *AuthHandler) Logout(c fiber.Ctx) error {
	sid := currentSessionID(c)
	if sid == nil {
		return unauthorized(c)
	}

	if err := h.svc.Logout(c.Context(), *sid); err != nil {
		return mapAuthError(c, err)
	}

	return noContent(c)
}
