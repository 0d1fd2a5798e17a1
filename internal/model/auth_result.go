package model

type AuthResult struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}
