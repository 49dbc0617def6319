package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/depotworks/workforce-backend-go/internal/domain/auth"
	"github.com/depotworks/workforce-backend-go/internal/domain/worker"
	"github.com/depotworks/workforce-backend-go/internal/pkg/database"
	"github.com/depotworks/workforce-backend-go/internal/pkg/jwt"
	"github.com/depotworks/workforce-backend-go/internal/repository/postgresql"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	db *database.DB
	worker.WorkerRepository
	jwt.Service
	postgresql.RefreshTokenRepository
}

func NewAuthService(db *database.DB, workerRepository worker.WorkerRepository, jwtService jwt.Service, refreshTokenRepository postgresql.RefreshTokenRepository) auth.AuthService {
	return &AuthServiceImpl{
		db:                     db,
		WorkerRepository:       workerRepository,
		Service:                jwtService,
		RefreshTokenRepository: refreshTokenRepository,
	}
}

func (a *AuthServiceImpl) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Register implements auth.AuthService. New accounts start unapproved;
// a manager flips the flag before the first login succeeds.
func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	if _, err := a.WorkerRepository.GetByUsername(ctx, req.Username); err == nil {
		return "", worker.ErrUsernameExists
	} else if !errors.Is(err, worker.ErrWorkerNotFound) {
		return "", fmt.Errorf("failed to check username: %w", err)
	}

	if req.Email != nil {
		if _, err := a.WorkerRepository.GetByEmail(ctx, *req.Email); err == nil {
			return "", worker.ErrEmailExists
		} else if !errors.Is(err, worker.ErrWorkerNotFound) {
			return "", fmt.Errorf("failed to check email: %w", err)
		}
	}

	passwordHash, err := a.hashPassword(req.Password)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := a.WorkerRepository.Create(ctx, worker.Worker{
		Username:     req.Username,
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: &passwordHash,
		Role:         worker.RoleWorker,
		IsApproved:   false,
		IsActive:     true,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create worker: %w", err)
	}

	return created.ID, nil
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest, session auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	workerData, err := a.WorkerRepository.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, worker.ErrWorkerNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get worker by username: %w", err)
	}

	if workerData.PasswordHash == nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*workerData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return a.issueTokens(ctx, workerData, session)
}

// LoginWithGoogle implements auth.AuthService. Google sign-in never
// auto-registers; the email must already belong to a worker account.
func (a *AuthServiceImpl) LoginWithGoogle(ctx context.Context, googleEmail string, session auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	workerData, err := a.WorkerRepository.GetByEmail(ctx, googleEmail)
	if err != nil {
		if errors.Is(err, worker.ErrWorkerNotFound) {
			return auth.TokenResponse{}, auth.ErrGoogleNotLinked
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get worker by email: %w", err)
	}

	return a.issueTokens(ctx, workerData, session)
}

func (a *AuthServiceImpl) issueTokens(ctx context.Context, workerData worker.Worker, session auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	if !workerData.IsApproved {
		return auth.TokenResponse{}, auth.ErrAccountNotApproved
	}
	if !workerData.IsActive {
		return auth.TokenResponse{}, auth.ErrAccountInactive
	}

	var tokenResponse auth.TokenResponse
	err := postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var err error
		tokenResponse.AccessToken, tokenResponse.AccessTokenExpiresIn, err = a.Service.GenerateAccessToken(workerData.ID, workerData.Username, workerData.Name, workerData.Role)
		if err != nil {
			return fmt.Errorf("failed to create access token: %w", err)
		}
		tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, err = a.Service.GenerateRefreshToken(workerData.ID)
		if err != nil {
			return fmt.Errorf("failed to create refresh token: %w", err)
		}

		err = a.CreateRefreshToken(txCtx, workerData.ID, tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, session)
		if err != nil {
			return fmt.Errorf("failed to save refresh token to database: %w", err)
		}
		return nil
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return tokenResponse, nil
}

// RefreshToken implements auth.AuthService. Rotation: the presented
// refresh token is revoked and a fresh pair is issued.
func (a *AuthServiceImpl) RefreshToken(ctx context.Context, refreshToken string, session auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	token, err := jwtauth.VerifyToken(a.JWTAuth(), refreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	claims, err := token.AsMap(ctx)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}
	tokenType, ok := claims["type"].(string)
	if !ok || tokenType != "refresh" {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}
	workerID, ok := claims["worker_id"].(string)
	if !ok || workerID == "" {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	isRevoked, err := a.IsRefreshTokenRevoked(ctx, refreshToken)
	if err != nil {
		if err == pgx.ErrNoRows {
			return auth.TokenResponse{}, auth.ErrInvalidToken
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to check refresh token: %w", err)
	}
	if isRevoked {
		return auth.TokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	workerData, err := a.WorkerRepository.GetByID(ctx, workerID)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	var tokenResponse auth.TokenResponse
	err = postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := a.RevokeRefreshToken(txCtx, refreshToken); err != nil {
			return fmt.Errorf("failed to revoke refresh token: %w", err)
		}

		var err error
		tokenResponse.AccessToken, tokenResponse.AccessTokenExpiresIn, err = a.Service.GenerateAccessToken(workerData.ID, workerData.Username, workerData.Name, workerData.Role)
		if err != nil {
			return fmt.Errorf("failed to create access token: %w", err)
		}
		tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, err = a.Service.GenerateRefreshToken(workerData.ID)
		if err != nil {
			return fmt.Errorf("failed to create refresh token: %w", err)
		}

		return a.CreateRefreshToken(txCtx, workerData.ID, tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, session)
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return tokenResponse, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	err := postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		isRevoked, err := a.IsRefreshTokenRevoked(txCtx, refreshToken)
		if err != nil {
			if err == pgx.ErrNoRows {
				return nil
			}
			return fmt.Errorf("failed to check if refresh token is revoked: %w", err)
		}
		if !isRevoked {
			if err := a.RevokeRefreshToken(txCtx, refreshToken); err != nil {
				return fmt.Errorf("failed to revoke refresh token: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	return nil
}
