package service

import (
	"context"

	"github.com/Skotchmaster/webstore/internal/hash"
	"github.com/Skotchmaster/webstore/internal/logging"
	"github.com/Skotchmaster/webstore/internal/models"
	"github.com/Skotchmaster/webstore/internal/repo"
	"github.com/Skotchmaster/webstore/internal/transport"
)

type UserService struct {
	Repo *repo.GormRepo
}

func (s *UserService) GetUsers(ctx context.Context) ([]transport.UserDTO, error) {
	items, err := s.Repo.GetUsers(ctx)
	if err != nil {
		return nil, err
	}
	return usersToDTO(items), nil
}

func (s *UserService) GetUser(ctx context.Context, id uint) (*transport.UserDTO, error) {
	user, err := s.Repo.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := userToDTO(user)
	return &dto, nil
}

func (s *UserService) GetUserByUsername(ctx context.Context, username string) (*transport.UserDTO, error) {
	user, err := s.Repo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	dto := userToDTO(user)
	return &dto, nil
}

// CreateUser checks username first, then email, so a request colliding on
// both reports the username conflict. The check and the insert are separate
// statements; the unique indexes on users are the backstop if two creates
// race between them.
func (s *UserService) CreateUser(ctx context.Context, req transport.CreateUserRequest) (*transport.UserDTO, error) {
	l := logging.FromContext(ctx).With("svc", "user.create", "username", req.Username)

	if taken, err := s.Repo.UserExistsByUsername(ctx, req.Username); err != nil {
		return nil, err
	} else if taken {
		l.Warn("create_user_rejected", "reason", "username already exists")
		return nil, ErrUsernameTaken
	}

	if taken, err := s.Repo.UserExistsByEmail(ctx, req.Email); err != nil {
		return nil, err
	} else if taken {
		l.Warn("create_user_rejected", "reason", "email already exists")
		return nil, ErrEmailTaken
	}

	pwHash, err := hash.HashPassword(req.Password)
	if err != nil {
		l.Error("create_user_error", "reason", "cannot hash the password", "error", err)
		return nil, err
	}

	user := models.User{
		Username:     req.Username,
		PasswordHash: pwHash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Active:       true,
	}

	created, err := s.Repo.CreateUser(ctx, &user)
	if err != nil {
		return nil, err
	}

	dto := userToDTO(created)
	return &dto, nil
}

// UpdateUser replaces every mutable field except the password; there is no
// password-update path. Uniqueness is only re-checked when the value actually
// changed, so saving a user's own record untouched always succeeds.
func (s *UserService) UpdateUser(ctx context.Context, id uint, req transport.UserDTO) (*transport.UserDTO, error) {
	l := logging.FromContext(ctx).With("svc", "user.update", "id", id)

	user, err := s.Repo.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Username != user.Username {
		if taken, err := s.Repo.UserExistsByUsername(ctx, req.Username); err != nil {
			return nil, err
		} else if taken {
			l.Warn("update_user_rejected", "reason", "username already exists")
			return nil, ErrUsernameTaken
		}
	}

	if req.Email != user.Email {
		if taken, err := s.Repo.UserExistsByEmail(ctx, req.Email); err != nil {
			return nil, err
		} else if taken {
			l.Warn("update_user_rejected", "reason", "email already exists")
			return nil, ErrEmailTaken
		}
	}

	user.Username = req.Username
	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Email = req.Email
	user.Active = req.Active

	saved, err := s.Repo.SaveUser(ctx, user)
	if err != nil {
		return nil, err
	}

	dto := userToDTO(saved)
	return &dto, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	return s.Repo.DeleteUser(ctx, id)
}

func userToDTO(u *models.User) transport.UserDTO {
	return transport.UserDTO{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Active:    u.Active,
	}
}

func usersToDTO(items []models.User) []transport.UserDTO {
	out := make([]transport.UserDTO, 0, len(items))
	for i := range items {
		out = append(out, userToDTO(&items[i]))
	}
	return out
}
