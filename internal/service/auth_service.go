package service

import (
	"errors"
	"strings"

	"go-warehouse-ops/internal/model"
	"go-warehouse-ops/internal/repository"
	"go-warehouse-ops/pkg/apiclient"
	"go-warehouse-ops/pkg/jwt"
	"go-warehouse-ops/pkg/logger"

	"github.com/sirupsen/logrus"
)

const loginFallbackMessage = "Gagal terhubung ke server"

var ErrLoginFailed = errors.New("login failed")

type AuthService interface {
	Login(username, password string) (*model.LoginResult, error)
	ValidateToken(tokenString string) (*model.User, error)
}

// LoginError carries the message shown on the login screen.
type LoginError struct {
	Message string
	Err     error
}

func (e *LoginError) Error() string { return e.Message }
func (e *LoginError) Unwrap() error { return e.Err }

type authService struct {
	authRepo repository.AuthRepository
	log      *logrus.Logger
}

func NewAuthService(authRepo repository.AuthRepository, log *logrus.Logger) AuthService {
	return &authService{authRepo: authRepo, log: log}
}

// Login checks the credentials upstream and issues a gateway session token
// that wraps the upstream one.
func (s *authService) Login(username, password string) (*model.LoginResult, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrCredentialsRequired
	}

	sess, err := s.authRepo.Login(username, password)
	if err != nil {
		logger.LogError(s.log, "auth", "Login", "upstream login", map[string]string{"username": username}, err)
		msg := apiclient.UpstreamMessage(err)
		if msg == "" {
			msg = loginFallbackMessage
		}
		return nil, &LoginError{Message: msg, Err: errors.Join(ErrLoginFailed, err)}
	}

	token, err := jwt.GenerateToken(sess.User.Username, sess.User.Name, sess.Token)
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	return &model.LoginResult{Token: token, User: sess.User}, nil
}

func (s *authService) ValidateToken(tokenString string) (*model.User, error) {
	claims, err := jwt.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	return &model.User{Username: claims.Username, Name: claims.Name}, nil
}
