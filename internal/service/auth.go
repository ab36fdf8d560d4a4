package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"golang.org/x/crypto/bcrypt"

	"odms-backend/internal/domain"
	"odms-backend/internal/logger"
	"odms-backend/internal/repository"
	"odms-backend/internal/security"
)

type authService struct {
	userRepo repository.UserRepository
	emailSvc EmailService
	tokens   security.TokenManager
	otpTTL   time.Duration
	now      func() time.Time
}

func NewAuthService(userRepo repository.UserRepository, emailSvc EmailService, tokens security.TokenManager, otpTTL time.Duration) AuthService {
	return &authService{
		userRepo: userRepo,
		emailSvc: emailSvc,
		tokens:   tokens,
		otpTTL:   otpTTL,
		now:      time.Now,
	}
}

func (s *authService) RequestOTP(ctx context.Context, email string) error {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}

	code, err := generateOTP()
	if err != nil {
		return err
	}

	// Only the bcrypt hash is stored; the plain code exists in the email.
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.userRepo.SetOTP(ctx, user.ID, string(hash), s.now()); err != nil {
		return err
	}

	if err := s.emailSvc.SendOTP(ctx, email, code); err != nil {
		return fmt.Errorf("failed to send OTP email: %w", err)
	}
	logger.Info("OTP issued", "user_id", user.ID)
	return nil
}

func (s *authService) VerifyOTP(ctx context.Context, email, code string) (string, *domain.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}

	if user.OTPHash == "" || user.OTPRequestedAt == nil {
		return "", nil, domain.ErrInvalidOTP
	}
	if s.now().Sub(*user.OTPRequestedAt) > s.otpTTL {
		return "", nil, domain.ErrOTPExpired
	}
	if bcrypt.CompareHashAndPassword([]byte(user.OTPHash), []byte(code)) != nil {
		return "", nil, domain.ErrInvalidOTP
	}

	// Clear the OTP so it cannot be replayed.
	if err := s.userRepo.ClearOTP(ctx, user.ID); err != nil {
		return "", nil, err
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		return "", nil, err
	}
	logger.Info("User logged in", "user_id", user.ID, "role", user.Role)
	return token, user, nil
}

func generateOTP() (string, error) {
	max := big.NewInt(1000000)
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
