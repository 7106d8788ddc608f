package services

import (
	"context"

	"inventory-system/internal/dto"
	"inventory-system/internal/repositories"

	"go.uber.org/zap"
)

type UserServiceInterface interface {
	GetEngineers(ctx context.Context, search string) ([]dto.ShortUserDTO, error)
}

type UserService struct {
	userRepo repositories.UserRepositoryInterface
	logger   *zap.Logger
}

func NewUserService(userRepo repositories.UserRepositoryInterface, logger *zap.Logger) UserServiceInterface {
	return &UserService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// GetEngineers возвращает инженеров для формы назначения оборудования;
// search фильтрует по подстроке имени без учета регистра.
func (s *UserService) GetEngineers(ctx context.Context, search string) ([]dto.ShortUserDTO, error) {
	engineers, err := s.userRepo.GetEngineers(ctx, search)
	if err != nil {
		return nil, err
	}

	list := make([]dto.ShortUserDTO, 0, len(engineers))
	for _, engineer := range engineers {
		list = append(list, dto.ShortUserDTO{
			ID:       engineer.ID,
			Username: engineer.Username,
			Role:     engineer.Role,
		})
	}

	return list, nil
}
