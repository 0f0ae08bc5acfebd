package service

import (
	"errors"
	"regexp"

	"pagegen/model"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials covers unknown email and wrong password alike so
	// responses cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidEmail       = errors.New("invalid email address")
)

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// UserStore is the slice of the credential store the auth flow needs.
type UserStore interface {
	Create(user *model.User) error
	GetByEmail(email string) (*model.User, error)
	EmailTaken(email string) (bool, error)
}

type UserService struct {
	users  UserStore
	tokens *TokenService
}

func NewUserService(users UserStore, tokens *TokenService) *UserService {
	return &UserService{users: users, tokens: tokens}
}

// Register creates the user and returns its id.
func (service *UserService) Register(name, email, password string) (string, error) {
	if !emailRegexp.MatchString(email) {
		return "", ErrInvalidEmail
	}

	// 唯一性检查
	taken, err := service.users.EmailTaken(email)
	if err != nil {
		return "", errors.New("internal server error")
	}
	if taken {
		return "", ErrEmailTaken
	}

	// 密码加密
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", errors.New("internal server error")
	}

	newUser := &model.User{
		Name:     name,
		Email:    email,
		Password: string(hashedPassword),
	}
	if err := service.users.Create(newUser); err != nil {
		return "", errors.New("internal server error")
	}
	return newUser.ID, nil
}

type LoginResult struct {
	UserID      string
	AccessToken string
	ExpiresAt   int64
}

// Login verifies the credentials and issues a session token carrying the
// user's id.
func (service *UserService) Login(email, password string) (*LoginResult, error) {
	registeredUser, err := service.users.GetByEmail(email)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, errors.New("failed to get user")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(registeredUser.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	// 生成会话令牌
	token, err := service.tokens.CreateToken(registeredUser.ID)
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	return &LoginResult{
		UserID:      registeredUser.ID,
		AccessToken: token.AccessToken,
		ExpiresAt:   token.AtExpires,
	}, nil
}
