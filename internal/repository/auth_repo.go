package repository

import (
	"encoding/json"
	"errors"

	"go-warehouse-ops/internal/model"
	"go-warehouse-ops/pkg/apiclient"
)

var ErrEmptyLoginResponse = errors.New("login response has no token")

// UpstreamSession is what the upstream login returns.
type UpstreamSession struct {
	Token string
	User  model.User
}

type AuthRepository interface {
	Login(username, password string) (*UpstreamSession, error)
}

type authRepo struct {
	api *apiclient.Client
}

func NewAuthRepo(api *apiclient.Client) AuthRepository {
	return &authRepo{api}
}

func (r *authRepo) Login(username, password string) (*UpstreamSession, error) {
	body, err := r.api.Post(pathLogin, map[string]string{
		"username": username,
		"password": password,
	}, "")
	if err != nil {
		return nil, err
	}

	var resp struct {
		Token string                 `json:"token"`
		User  map[string]interface{} `json:"user"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, err
	}
	if resp.Token == "" {
		return nil, ErrEmptyLoginResponse
	}
	return &UpstreamSession{
		Token: resp.Token,
		User:  model.UserFromProfile(resp.User, username),
	}, nil
}
