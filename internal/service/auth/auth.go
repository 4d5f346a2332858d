package auth

import (
	"context"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/pawcare-vn/pawcare_backend/config"
	"github.com/pawcare-vn/pawcare_backend/internal/repo"
	entuser "github.com/pawcare-vn/pawcare_backend/internal/repo/user"
	entsession "github.com/pawcare-vn/pawcare_backend/internal/repo/usersession"
	"github.com/pawcare-vn/pawcare_backend/internal/validation"
	"github.com/pawcare-vn/pawcare_backend/pkg/authorize"
	"github.com/pawcare-vn/pawcare_backend/pkg/crypto"
	"github.com/pawcare-vn/pawcare_backend/pkg/email"
	pasetotoken "github.com/pawcare-vn/pawcare_backend/pkg/paseto"
	"github.com/pawcare-vn/pawcare_backend/pkg/util/codes"
	"github.com/pawcare-vn/pawcare_backend/pkg/util/otp"
	"github.com/pawcare-vn/pawcare_backend/pkg/util/password"
)

const (
	maxOTPAttempts   = 5
	accountLockMins  = 15
	maxLoginAttempts = 5
)

// redisKeyOTP returns the Redis key for the OTP hash associated with an email.
func redisKeyOTP(emailAddr string) string { return "otp:" + emailAddr }

// redisKeyOTPAttempts returns the Redis key for the OTP attempt counter.
func redisKeyOTPAttempts(emailAddr string) string { return "otp:attempts:" + emailAddr }

// redisKeySession returns the Redis key for a session.
func redisKeySession(sessionID string) string { return "session:" + sessionID }

// redisKeyPasswordReset returns the Redis key holding the user ID a reset
// token was issued for.
func redisKeyPasswordReset(token string) string { return "pwreset:" + token }

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type RegisterRequest struct {
	Email    string
	Password string
	FullName string
	Phone    string // optional; VN local or E.164
	Role     string // customer | partner
}

type VerifyOTPRequest struct {
	Email string
	Code  string
}

type LoginRequest struct {
	Email    string
	Password string
}

type AuthTokens struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64 // seconds until access token expires
	User         *repo.User
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Register(ctx context.Context, req RegisterRequest) error
	VerifyOTP(ctx context.Context, req VerifyOTPRequest) (*AuthTokens, error)
	ResendOTP(ctx context.Context, emailAddr string) error
	Login(ctx context.Context, req LoginRequest) (*AuthTokens, error)
	RefreshTokens(ctx context.Context, refreshToken string) (*AuthTokens, error)
	Logout(ctx context.Context, sessionID uuid.UUID) error
	ForgotPassword(ctx context.Context, emailAddr string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type authService struct {
	db     *repo.Client
	rdb    *redis.Client
	mailer *email.Client
	paseto *pasetotoken.Manager
	authz  authorize.IAuthorization
	cfg    *config.Config
}

func New(
	db *repo.Client,
	rdb *redis.Client,
	mailer *email.Client,
	paseto *pasetotoken.Manager,
	authz authorize.IAuthorization,
	cfg *config.Config,
) Service {
	return &authService{
		db:     db,
		rdb:    rdb,
		mailer: mailer,
		paseto: paseto,
		authz:  authz,
		cfg:    cfg,
	}
}

// ---------------------------------------------------------------------------
// Register
// ---------------------------------------------------------------------------

func (s *authService) Register(ctx context.Context, req RegisterRequest) error {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Phone = strings.TrimSpace(req.Phone)
	req.FullName = strings.TrimSpace(req.FullName)

	if _, err := mail.ParseAddress(req.Email); err != nil {
		return ErrInvalidEmail
	}
	if req.Role != entuser.RoleCustomer.String() && req.Role != entuser.RolePartner.String() {
		return ErrInvalidRole
	}
	if len(req.Password) < 8 {
		return ErrPasswordTooShort
	}

	// Normalize phone to E.164 when provided
	var phone *string
	if req.Phone != "" {
		fe := validation.FieldErrors{}
		validation.Phone(fe, "phone", req.Phone)
		if len(fe) > 0 {
			return ErrInvalidPhone
		}
		p := validation.FormatPhone(req.Phone)
		phone = &p
	}

	exists, err := s.db.User.Query().
		Where(entuser.Email(req.Email), entuser.DeletedAtIsNil()).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check email: %w", err)
	}
	if exists {
		return ErrEmailAlreadyExists
	}

	passHash, err := password.Hash(req.Password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	q := s.db.User.Create().
		SetEmail(req.Email).
		SetPasswordHash(passHash).
		SetRole(entuser.Role(req.Role)).
		SetEmailVerified(false)

	if req.FullName != "" {
		q = q.SetFullName(req.FullName)
	}
	if phone != nil {
		q = q.SetPhone(*phone)
	}

	u, err := q.Save(ctx)
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	if err := authorize.AssignUserRole(ctx, s.authz, u.ID.String(), req.Role); err != nil {
		return fmt.Errorf("assign role: %w", err)
	}
	if err := authorize.AssignUserSelfRole(ctx, s.authz, u.ID.String()); err != nil {
		return fmt.Errorf("assign self role: %w", err)
	}

	return s.sendOTP(ctx, req.Email, req.FullName)
}

// ---------------------------------------------------------------------------
// VerifyOTP
// ---------------------------------------------------------------------------

func (s *authService) VerifyOTP(ctx context.Context, req VerifyOTPRequest) (*AuthTokens, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Code = strings.TrimSpace(req.Code)

	otpHash, err := s.rdb.Get(ctx, redisKeyOTP(req.Email)).Result()
	if err == redis.Nil {
		return nil, ErrOTPExpired
	}
	if err != nil {
		return nil, fmt.Errorf("redis get otp: %w", err)
	}

	attempts, _ := s.rdb.Get(ctx, redisKeyOTPAttempts(req.Email)).Int()
	if attempts >= maxOTPAttempts {
		return nil, ErrOTPMaxAttempts
	}

	if err := otp.Verify(otpHash, req.Code); err != nil {
		s.rdb.Incr(ctx, redisKeyOTPAttempts(req.Email))
		return nil, ErrOTPInvalid
	}

	s.rdb.Del(ctx, redisKeyOTP(req.Email), redisKeyOTPAttempts(req.Email))

	u, err := s.db.User.Query().
		Where(entuser.Email(req.Email), entuser.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if _, err := s.db.User.UpdateOne(u).SetEmailVerified(true).Save(ctx); err != nil {
		return nil, fmt.Errorf("update email_verified: %w", err)
	}

	return s.createSession(ctx, u)
}

func (s *authService) ResendOTP(ctx context.Context, emailAddr string) error {
	emailAddr = strings.ToLower(strings.TrimSpace(emailAddr))

	u, err := s.db.User.Query().
		Where(entuser.Email(emailAddr), entuser.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			// Do not leak which addresses exist
			return nil
		}
		return fmt.Errorf("find user: %w", err)
	}
	if u.EmailVerified {
		return nil
	}

	name := ""
	if u.FullName != nil {
		name = *u.FullName
	}
	return s.sendOTP(ctx, emailAddr, name)
}

// ---------------------------------------------------------------------------
// Login
// ---------------------------------------------------------------------------

func (s *authService) Login(ctx context.Context, req LoginRequest) (*AuthTokens, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return nil, ErrInvalidCredentials
	}

	u, err := s.db.User.Query().
		Where(entuser.Email(req.Email), entuser.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if u.Status == entuser.StatusSuspended {
		return nil, ErrAccountSuspended
	}
	if !u.EmailVerified {
		return nil, ErrEmailNotVerified
	}

	if u.LockedUntil != nil && time.Now().Before(*u.LockedUntil) {
		return nil, ErrAccountLocked
	}

	if u.PasswordHash == nil {
		return nil, ErrInvalidCredentials
	}
	if err := password.Verify(*u.PasswordHash, req.Password); err != nil {
		s.recordFailedLogin(ctx, u)
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	s.db.User.UpdateOne(u).
		SetFailedLoginAttempts(0).
		SetNillableLockedUntil(nil).
		SetLastLoginAt(now).
		Save(ctx)

	return s.createSession(ctx, u)
}

// ---------------------------------------------------------------------------
// RefreshTokens
// ---------------------------------------------------------------------------

func (s *authService) RefreshTokens(ctx context.Context, refreshToken string) (*AuthTokens, error) {
	claims, err := s.paseto.Verify(refreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims.Type != pasetotoken.TokenTypeRefresh {
		return nil, ErrInvalidToken
	}
	if claims.SessionID == nil {
		return nil, ErrInvalidToken
	}

	sessionKey := redisKeySession(claims.SessionID.String())

	if err := s.rdb.Get(ctx, sessionKey).Err(); err == redis.Nil {
		return nil, ErrSessionNotFound
	} else if err != nil {
		return nil, fmt.Errorf("redis get session: %w", err)
	}

	// Extend session TTL
	refreshTTL := time.Duration(s.cfg.Authentication.Paseto.RefreshTTLDays) * 24 * time.Hour
	s.rdb.Expire(ctx, sessionKey, refreshTTL)

	// Issue new access token only (refresh token stays the same until logout)
	accessTTL := time.Duration(s.cfg.Authentication.Paseto.AccessTTLMinutes) * time.Minute
	accessToken, err := s.paseto.IssueAccess(claims.UserID, claims.Role, claims.SessionID)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}

	return &AuthTokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken, // unchanged
		ExpiresIn:    int64(accessTTL.Seconds()),
	}, nil
}

// ---------------------------------------------------------------------------
// Logout
// ---------------------------------------------------------------------------

func (s *authService) Logout(ctx context.Context, sessionID uuid.UUID) error {
	deleted, err := s.rdb.Del(ctx, redisKeySession(sessionID.String())).Result()
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if deleted == 0 {
		// Session already expired, not an error from the client's perspective
		slog.Debug("logout: session not found in Redis (already expired)", "session_id", sessionID)
	}

	// Mark revoked in DB (audit, best-effort)
	now := time.Now()
	s.db.UserSession.Update().
		Where(entsession.SessionID(sessionID.String())).
		SetRevokedAt(now).
		Save(ctx)

	return nil
}

// ---------------------------------------------------------------------------
// Password reset
// ---------------------------------------------------------------------------

// ForgotPassword issues a single-use reset token and emails it. An unknown
// email returns nil so the endpoint cannot be used to probe which addresses
// have accounts.
func (s *authService) ForgotPassword(ctx context.Context, emailAddr string) error {
	emailAddr = strings.ToLower(strings.TrimSpace(emailAddr))
	if _, err := mail.ParseAddress(emailAddr); err != nil {
		return ErrInvalidEmail
	}

	u, err := s.db.User.Query().
		Where(entuser.Email(emailAddr), entuser.DeletedAtIsNil()).
		Only(ctx)
	if repo.IsNotFound(err) {
		slog.Debug("password reset requested for unknown email", "email", emailAddr)
		return nil
	}
	if err != nil {
		return fmt.Errorf("lookup user: %w", err)
	}

	token, err := codes.GenerateResetToken()
	if err != nil {
		return fmt.Errorf("generate reset token: %w", err)
	}

	ttl := time.Duration(s.cfg.Authentication.ResetTokenTTLMinutes) * time.Minute
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	if err := s.rdb.Set(ctx, redisKeyPasswordReset(token), u.ID.String(), ttl).Err(); err != nil {
		return fmt.Errorf("store reset token: %w", err)
	}

	msg := email.BuildPasswordResetEmail(emailAddr, derefName(u), token, int(ttl.Minutes()))
	if err := s.mailer.Send(ctx, msg); err != nil {
		// Token stays valid; the user can request again
		slog.Warn("failed to send password reset email", "email", emailAddr, "error", err)
	}

	return nil
}

// ResetPassword consumes a reset token and installs the new password. The
// token is deleted before the update so it cannot be replayed, and a
// successful reset also clears any login lockout.
func (s *authService) ResetPassword(ctx context.Context, token, newPassword string) error {
	token = codes.NormalizeToken(token)
	if token == "" {
		return ErrResetTokenInvalid
	}
	if len(newPassword) < 8 {
		return ErrPasswordTooShort
	}

	key := redisKeyPasswordReset(token)
	userIDStr, err := s.rdb.GetDel(ctx, key).Result()
	if err == redis.Nil {
		return ErrResetTokenInvalid
	}
	if err != nil {
		return fmt.Errorf("consume reset token: %w", err)
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return ErrResetTokenInvalid
	}

	passHash, err := password.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.db.User.UpdateOneID(userID).
		SetPasswordHash(passHash).
		SetFailedLoginAttempts(0).
		ClearLockedUntil().
		Exec(ctx); err != nil {
		if repo.IsNotFound(err) {
			return ErrResetTokenInvalid
		}
		return fmt.Errorf("update password: %w", err)
	}

	// Existing refresh sessions keep working; only the password changed.
	// Revoking them here would log the user out of the device they just
	// used to reset.
	return nil
}

func derefName(u *repo.User) string {
	if u.FullName == nil {
		return ""
	}
	return *u.FullName
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (s *authService) sendOTP(ctx context.Context, emailAddr, name string) error {
	code, err := otp.GenerateDefault()
	if err != nil {
		return fmt.Errorf("generate OTP: %w", err)
	}

	otpTTL := time.Duration(s.cfg.Authentication.OTPTTLMinutes) * time.Minute
	if otpTTL <= 0 {
		otpTTL = 5 * time.Minute
	}

	if err := s.rdb.Set(ctx, redisKeyOTP(emailAddr), otp.Hash(code), otpTTL).Err(); err != nil {
		return fmt.Errorf("store OTP: %w", err)
	}
	s.rdb.Set(ctx, redisKeyOTPAttempts(emailAddr), "0", otpTTL+5*time.Minute)

	msg := email.BuildOTPEmail(emailAddr, name, code, int(otpTTL.Minutes()))
	if err := s.mailer.Send(ctx, msg); err != nil {
		// Log but don't fail, the code can be resent
		slog.Warn("failed to send OTP email", "email", emailAddr, "error", err)
	}

	return nil
}

func (s *authService) createSession(ctx context.Context, u *repo.User) (*AuthTokens, error) {
	sessionID := uuid.Must(uuid.NewV7())

	refreshTTL := time.Duration(s.cfg.Authentication.Paseto.RefreshTTLDays) * 24 * time.Hour
	accessTTL := time.Duration(s.cfg.Authentication.Paseto.AccessTTLMinutes) * time.Minute

	sessionKey := redisKeySession(sessionID.String())
	if err := s.rdb.Set(ctx, sessionKey, u.ID.String(), refreshTTL).Err(); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	role := u.Role.String()
	access, err := s.paseto.IssueAccess(u.ID, role, &sessionID)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}
	refresh, err := s.paseto.IssueRefresh(u.ID, role, &sessionID)
	if err != nil {
		return nil, fmt.Errorf("issue refresh token: %w", err)
	}

	// Persist session record to DB (audit, best-effort)
	expiresAt := time.Now().Add(refreshTTL)
	refreshHash := crypto.Hash(refresh)
	s.db.UserSession.Create().
		SetUserID(u.ID).
		SetSessionID(sessionID.String()).
		SetRefreshTokenHash(refreshHash).
		SetExpiresAt(expiresAt).
		Save(ctx)

	return &AuthTokens{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(accessTTL.Seconds()),
		User:         u,
	}, nil
}

func (s *authService) recordFailedLogin(ctx context.Context, u *repo.User) {
	attempts := u.FailedLoginAttempts + 1
	upd := s.db.User.UpdateOne(u).
		SetFailedLoginAttempts(attempts)

	if attempts >= maxLoginAttempts {
		lockUntil := time.Now().Add(accountLockMins * time.Minute)
		upd = upd.SetLockedUntil(lockUntil)
	}
	upd.Save(ctx)
}
