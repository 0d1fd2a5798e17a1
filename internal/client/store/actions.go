package store

import (
	"strings"

	"blog-service/internal/model"
)

type ActionType string

const (
	LoginPending            ActionType = "auth/login/pending"
	LoginFulfilled          ActionType = "auth/login/fulfilled"
	LoginRejected           ActionType = "auth/login/rejected"
	SignupPending           ActionType = "auth/signup/pending"
	SignupFulfilled         ActionType = "auth/signup/fulfilled"
	SignupRejected          ActionType = "auth/signup/rejected"
	GetCurrentUserPending   ActionType = "auth/getCurrentUser/pending"
	GetCurrentUserFulfilled ActionType = "auth/getCurrentUser/fulfilled"
	GetCurrentUserRejected  ActionType = "auth/getCurrentUser/rejected"
	Logout                  ActionType = "auth/logout"
	ClearAuthError          ActionType = "auth/clearError"
	UpdateUser              ActionType = "auth/updateUser"

	FetchPostsPending   ActionType = "post/fetchPosts/pending"
	FetchPostsFulfilled ActionType = "post/fetchPosts/fulfilled"
	FetchPostsRejected  ActionType = "post/fetchPosts/rejected"
	FetchPostPending    ActionType = "post/fetchPost/pending"
	FetchPostFulfilled  ActionType = "post/fetchPost/fulfilled"
	FetchPostRejected   ActionType = "post/fetchPost/rejected"
	ClearCurrentPost    ActionType = "post/clearCurrentPost"
	ClearPostError      ActionType = "post/clearError"
)

const (
	MsgLoginFailed      = "Login failed"
	MsgSignupFailed     = "Signup failed"
	MsgFetchUserFailed  = "Failed to fetch user"
	MsgFetchPostsFailed = "Failed to fetch posts"
	MsgFetchPostFailed  = "Failed to fetch post"
)

// Action is a plain value describing a state change. Payload type depends on
// Type: AuthPayload for login/signup fulfilled, *model.User for getCurrentUser
// fulfilled, UserPatch for updateUser, []*model.PostDetailed and
// *model.PostDetailed for the post fetches.
type Action struct {
	Type    ActionType
	Payload any
	Error   string
}

func (a Action) Slice() string {
	slice, _, _ := strings.Cut(string(a.Type), "/")
	return slice
}

type AuthPayload struct {
	User  *model.User
	Token string
}

// UserPatch holds the fields merged into the current user by updateUser.
// Nil fields are left untouched.
type UserPatch struct {
	Username *string
	Email    *string
	Name     *string
	Bio      *string
	Avatar   *string
}

func PatchFromUser(u *model.User) UserPatch {
	return UserPatch{
		Username: &u.Username,
		Email:    &u.Email,
		Name:     &u.Name,
		Bio:      &u.Bio,
		Avatar:   &u.Avatar,
	}
}

func Pending(t ActionType) Action {
	return Action{Type: t}
}

func Fulfilled(t ActionType, payload any) Action {
	return Action{Type: t, Payload: payload}
}

func Rejected(t ActionType, err error) Action {
	a := Action{Type: t}
	if err != nil {
		a.Error = err.Error()
	}
	return a
}
