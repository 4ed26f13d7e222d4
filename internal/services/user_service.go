package services

import (
	"errors"

	"gorm.io/gorm"

	"stayhub_backend/internal/auth"
	"stayhub_backend/internal/models"
	"stayhub_backend/internal/repositories"
	"stayhub_backend/internal/services/dto"
	"stayhub_backend/pkg/apperrors"
)

type UserService interface {
	CreateUser(db *gorm.DB, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	GetUserByID(db *gorm.DB, id string) (*dto.UserResponse, error)
	GetAllUsers(db *gorm.DB) (*dto.UserListResponse, error)
	UpdateUser(db *gorm.DB, id string, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	DeleteUser(db *gorm.DB, id string) error
}

type userService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) CreateUser(db *gorm.DB, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         models.UserRole(req.Role),
		Status:       true,
	}

	if err := s.userRepo.Create(db, user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	return dto.NewUserResponse(user), nil
}

func (s *userService) GetUserByID(db *gorm.DB, id string) (*dto.UserResponse, error) {
	user, err := s.findUser(db, id)
	if err != nil {
		return nil, err
	}
	return dto.NewUserResponse(user), nil
}

func (s *userService) GetAllUsers(db *gorm.DB) (*dto.UserListResponse, error) {
	users, err := s.userRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := make([]*dto.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, dto.NewUserResponse(&users[i]))
	}
	return &dto.UserListResponse{Users: out, Total: int64(len(out))}, nil
}

func (s *userService) UpdateUser(db *gorm.DB, id string, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Email != nil {
		user, err := s.findUser(db, id)
		if err != nil {
			return nil, err
		}
		if *req.Email != user.Email {
			exists, err := s.userRepo.EmailExists(db, *req.Email)
			if err != nil {
				return nil, apperrors.InternalError(err)
			}
			if exists {
				return nil, apperrors.ErrEmailAlreadyExists
			}
		}
		updates["email"] = *req.Email
	}

	if len(updates) > 0 {
		if err := s.userRepo.Update(db, id, updates); err != nil {
			if errors.Is(err, repositories.ErrUserNotFound) {
				return nil, apperrors.ErrUserNotFound
			}
			return nil, apperrors.InternalError(err)
		}
	}

	return s.GetUserByID(db, id)
}

func (s *userService) DeleteUser(db *gorm.DB, id string) error {
	if err := s.userRepo.Delete(db, id); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *userService) findUser(db *gorm.DB, id string) (*models.User, error) {
	user, err := s.userRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}
