package store

import "blog-service/internal/model"

type Status string

const (
	StatusIdle      Status = "idle"
	StatusLoading   Status = "loading"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

type AuthState struct {
	User   *model.User
	Token  string
	Status Status
	Error  string
}

func (s AuthState) IsLoading() bool {
	return s.Status == StatusLoading
}

func (s AuthState) IsAuthenticated() bool {
	return s.Token != "" && s.User != nil
}

type PostState struct {
	Posts       []*model.PostDetailed
	CurrentPost *model.PostDetailed
	Status      Status
	Error       string
}

func (s PostState) IsLoading() bool {
	return s.Status == StatusLoading
}

type State struct {
	Auth AuthState
	Post PostState
}

// InitialState seeds the auth slice with a previously persisted token.
func InitialState(token string) State {
	return State{
		Auth: AuthState{Token: token, Status: StatusIdle},
		Post: PostState{Posts: []*model.PostDetailed{}, Status: StatusIdle},
	}
}
