package services

import (
	"github.com/Fahad-kn/bot-binance/domain"
)

type usersStorage interface {
	NewUser(newUser *domain.User)
	GetUsers() []domain.User
	FindUser(findUser *domain.User) (domain.User, bool)
}

func NewUsersService(storage usersStorage) *UsersService {
	return &UsersService{storage: storage}
}

type UsersService struct {
	storage usersStorage
}

// CheckAddUser saves the user, a user that already exists is kept as is.
func (usersService *UsersService) CheckAddUser(user *domain.User) {
	_, ok := usersService.storage.FindUser(user)

	if !ok {
		usersService.storage.NewUser(user)
	}
}

func (usersService *UsersService) GetUsers() []domain.User {
	return usersService.storage.GetUsers()
}
