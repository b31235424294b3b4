package commands

import (
	"context"
	"log/slog"

	"kayak-console/internal/pkg/config"
	"kayak-console/internal/pkg/errs"
	"kayak-console/internal/pkg/jwt"
	"kayak-console/internal/pkg/password"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrTokenGeneration    = errs.New("token generation failed")
)

const roleAdmin = "admin"

type LoginResult struct {
	Token     string
	SessionID uuid.UUID
}

// AuthCommands guards the console behind the single shared admin password.
// There are no user accounts; a successful login mints a session token.
type AuthCommands interface {
	Login(ctx context.Context, pass string) (*LoginResult, error)
}

type authCommandsImpl struct {
	passHash   string
	jwtService *jwt.Service
	logger     *slog.Logger
}

func NewAuthCommands(cfg config.BusinessConfig, jwtService *jwt.Service, logger *slog.Logger) AuthCommands {
	return &authCommandsImpl{
		passHash:   cfg.AdminPassHash,
		jwtService: jwtService,
		logger:     logger,
	}
}

func (a *authCommandsImpl) Login(_ context.Context, pass string) (*LoginResult, error) {
	if err := password.Verify(a.passHash, pass); err != nil {
		a.logger.Warn("admin login rejected")
		return nil, ErrInvalidCredentials
	}

	sessionID := uuid.New()
	token, err := a.jwtService.GenerateToken(sessionID, roleAdmin)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	a.logger.Info("admin login", "session_id", sessionID)
	return &LoginResult{
		Token:     token,
		SessionID: sessionID,
	}, nil
}
