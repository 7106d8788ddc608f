package services

import (
	"context"
	"fmt"
	"net/http"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	"inventory-system/internal/repositories"
	"inventory-system/pkg/config"
	"inventory-system/pkg/constants"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/service"
	"inventory-system/pkg/utils"

	"go.uber.org/zap"
)

type AuthServiceInterface interface {
	Login(ctx context.Context, payload dto.LoginDTO) (*dto.TokenPairDTO, error)
	Register(ctx context.Context, payload dto.RegisterDTO) (*entities.User, error)
	Refresh(ctx context.Context, payload dto.RefreshDTO) (*dto.TokenPairDTO, error)
	GetUserByID(ctx context.Context, userID uint64) (*entities.User, error)
}

type AuthService struct {
	userRepo  repositories.UserRepositoryInterface
	cacheRepo repositories.CacheRepositoryInterface
	jwtSvc    service.JWTService
	logger    *zap.Logger
	cfg       *config.AuthConfig
}

func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	jwtSvc service.JWTService,
	logger *zap.Logger,
	cfg *config.AuthConfig,
) AuthServiceInterface {
	return &AuthService{
		userRepo:  userRepo,
		cacheRepo: cacheRepo,
		jwtSvc:    jwtSvc,
		logger:    logger,
		cfg:       cfg,
	}
}

// Login проверяет учётные данные и выдает пару токенов, в claims которых
// зашиты {id, username, role}. Для обеих причин отказа (нет пользователя,
// не совпал пароль) возвращается одна и та же ошибка.
func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*dto.TokenPairDTO, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, payload.Username)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := s.checkLockout(ctx, user.ID); err != nil {
		return nil, err
	}

	if err := utils.ComparePasswords(user.Password, payload.Password); err != nil {
		s.handleFailedLoginAttempt(ctx, user.ID)
		return nil, apperrors.ErrInvalidCredentials
	}

	s.resetLoginAttempts(ctx, user.ID)

	role, ok := constants.ParseRole(user.Role)
	if !ok {
		s.logger.Error("Login: у пользователя некорректная роль",
			zap.Uint64("userID", user.ID), zap.String("role", user.Role))
		return nil, apperrors.ErrUnknownRole
	}

	accessToken, refreshToken, err := s.jwtSvc.GenerateTokens(user.ID, user.Username, role)
	if err != nil {
		return nil, apperrors.NewHttpError(
			http.StatusInternalServerError,
			"Не удалось выдать токены",
			err,
			map[string]interface{}{"userID": user.ID},
		)
	}

	s.logger.Info("Пользователь вошел в систему",
		zap.Uint64("userID", user.ID), zap.String("role", role))

	return &dto.TokenPairDTO{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Role:         role,
		Username:     user.Username,
	}, nil
}

// Register создает нового пользователя. Роль нормализуется на границе.
func (s *AuthService) Register(ctx context.Context, payload dto.RegisterDTO) (*entities.User, error) {
	role, ok := constants.ParseRole(payload.Role)
	if !ok {
		return nil, apperrors.NewInvalidInputError("недопустимая роль: %q", payload.Role)
	}

	hashedPassword, err := utils.HashPassword(payload.Password)
	if err != nil {
		return nil, apperrors.NewHttpError(
			http.StatusInternalServerError,
			"Ошибка хэширования пароля",
			err,
			nil,
		)
	}

	user := &entities.User{
		Username: payload.Username,
		Password: hashedPassword,
		Role:     role,
	}

	id, err := s.userRepo.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = id

	s.logger.Info("Зарегистрирован новый пользователь",
		zap.Uint64("userID", id), zap.String("role", role))

	return user, nil
}

// Refresh обменивает refresh-токен на новую пару. Пользователь
// перечитывается из хранилища: удаленный аккаунт токены не обновит.
func (s *AuthService) Refresh(ctx context.Context, payload dto.RefreshDTO) (*dto.TokenPairDTO, error) {
	claims, err := s.jwtSvc.ValidateToken(payload.RefreshToken)
	if err != nil {
		return nil, err
	}
	if !claims.IsRefreshToken {
		return nil, apperrors.ErrTokenIsNotRefresh
	}

	user, err := s.userRepo.FindUserByID(ctx, claims.UserID)
	if err != nil {
		return nil, apperrors.ErrUnauthorized
	}

	accessToken, refreshToken, err := s.jwtSvc.GenerateTokens(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, apperrors.NewHttpError(
			http.StatusInternalServerError,
			"Не удалось выдать токены",
			err,
			map[string]interface{}{"userID": user.ID},
		)
	}

	return &dto.TokenPairDTO{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Role:         user.Role,
		Username:     user.Username,
	}, nil
}

func (s *AuthService) GetUserByID(ctx context.Context, userID uint64) (*entities.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		s.logger.Warn("GetUserByID: не удалось найти пользователя",
			zap.Uint64("userID", userID), zap.Error(err))
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func (s *AuthService) checkLockout(ctx context.Context, userID uint64) error {
	lockoutKey := fmt.Sprintf("lockout:%d", userID)

	// Если ключ существует — аккаунт заблокирован
	if _, err := s.cacheRepo.Get(ctx, lockoutKey); err == nil {
		return apperrors.ErrAccountLocked
	}
	return nil
}

func (s *AuthService) handleFailedLoginAttempt(ctx context.Context, userID uint64) {
	attemptsKey := fmt.Sprintf("login_attempts:%d", userID)
	attempts, _ := s.cacheRepo.Incr(ctx, attemptsKey)
	if attempts >= int64(s.cfg.MaxLoginAttempts) {
		lockoutKey := fmt.Sprintf("lockout:%d", userID)
		s.cacheRepo.Set(ctx, lockoutKey, "locked", s.cfg.LockoutDuration)
		s.cacheRepo.Del(ctx, attemptsKey)
	} else {
		s.cacheRepo.Expire(ctx, attemptsKey, s.cfg.LockoutDuration)
	}
}

func (s *AuthService) resetLoginAttempts(ctx context.Context, userID uint64) {
	attemptsKey := fmt.Sprintf("login_attempts:%d", userID)
	lockoutKey := fmt.Sprintf("lockout:%d", userID)
	s.cacheRepo.Del(ctx, attemptsKey, lockoutKey)
}
