package store

import "blog-service/internal/model"

// Reduce applies action to both slices. Reducers never mutate their input and
// have no side effects.
func Reduce(state State, action Action) State {
	return State{
		Auth: ReduceAuth(state.Auth, action),
		Post: ReducePost(state.Post, action),
	}
}

func ReduceAuth(state AuthState, action Action) AuthState {
	switch action.Type {
	case LoginPending, SignupPending, GetCurrentUserPending:
		state.Status = StatusLoading
		state.Error = ""

	case LoginFulfilled, SignupFulfilled:
		payload, ok := action.Payload.(AuthPayload)
		if !ok {
			return state
		}
		state.Status = StatusSucceeded
		state.User = payload.User
		state.Token = payload.Token

	case LoginRejected:
		state.Status = StatusFailed
		state.Error = errorOrDefault(action.Error, MsgLoginFailed)

	case SignupRejected:
		state.Status = StatusFailed
		state.Error = errorOrDefault(action.Error, MsgSignupFailed)

	case GetCurrentUserFulfilled:
		user, ok := action.Payload.(*model.User)
		if !ok {
			return state
		}
		state.Status = StatusSucceeded
		state.User = user

	case GetCurrentUserRejected:
		state.Status = StatusFailed
		state.Error = errorOrDefault(action.Error, MsgFetchUserFailed)
		state.User = nil
		state.Token = ""

	case Logout:
		state.User = nil
		state.Token = ""
		state.Error = ""
		state.Status = StatusIdle

	case ClearAuthError:
		state.Error = ""

	case UpdateUser:
		patch, ok := action.Payload.(UserPatch)
		if !ok {
			return state
		}
		state.User = patch.apply(state.User)
	}
	return state
}

func ReducePost(state PostState, action Action) PostState {
	switch action.Type {
	case FetchPostsPending, FetchPostPending:
		state.Status = StatusLoading
		state.Error = ""

	case FetchPostsFulfilled:
		posts, ok := action.Payload.([]*model.PostDetailed)
		if !ok {
			return state
		}
		if posts == nil {
			posts = []*model.PostDetailed{}
		}
		state.Status = StatusSucceeded
		state.Posts = posts

	case FetchPostsRejected:
		state.Status = StatusFailed
		state.Error = errorOrDefault(action.Error, MsgFetchPostsFailed)

	case FetchPostFulfilled:
		post, ok := action.Payload.(*model.PostDetailed)
		if !ok {
			return state
		}
		state.Status = StatusSucceeded
		state.CurrentPost = post

	case FetchPostRejected:
		state.Status = StatusFailed
		state.Error = errorOrDefault(action.Error, MsgFetchPostFailed)

	case ClearCurrentPost:
		state.CurrentPost = nil

	case ClearPostError:
		state.Error = ""
	}
	return state
}

// apply returns a merged copy and leaves user untouched.
func (p UserPatch) apply(user *model.User) *model.User {
	var merged model.User
	if user != nil {
		merged = *user
	}
	if p.Username != nil {
		merged.Username = *p.Username
	}
	if p.Email != nil {
		merged.Email = *p.Email
	}
	if p.Name != nil {
		merged.Name = *p.Name
	}
	if p.Bio != nil {
		merged.Bio = *p.Bio
	}
	if p.Avatar != nil {
		merged.Avatar = *p.Avatar
	}
	return &merged
}

func errorOrDefault(msg, fallback string) string {
	if msg == "" {
		return fallback
	}
	return msg
}
