package model

import "strings"

// User is the account the upstream API returned at login. The upstream shape
// is not fixed, so the whole object is kept in Profile and the usual name
// fields are lifted out of it.
type User struct {
	Username string                 `json:"username"`
	Name     string                 `json:"name"`
	Profile  map[string]interface{} `json:"profile,omitempty"`
}

// UserFromProfile builds a User from the upstream user object, falling back to
// the login name when the object has none.
func UserFromProfile(profile map[string]interface{}, login string) User {
	u := User{Username: login, Profile: profile}
	for _, k := range []string{"username", "Username", "user", "UserName"} {
		if s := profileString(profile, k); s != "" {
			u.Username = s
			break
		}
	}
	for _, k := range []string{"name", "Name", "nama", "Nama", "full_name"} {
		if s := profileString(profile, k); s != "" {
			u.Name = s
			break
		}
	}
	if u.Name == "" {
		u.Name = u.Username
	}
	return u
}

func profileString(m map[string]interface{}, key string) string {
	if s, ok := m[key].(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

// LoginResult is the gateway session handed to the client.
type LoginResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
