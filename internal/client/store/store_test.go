package store_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-service/internal/client/storage"
	"blog-service/internal/client/store"
	"blog-service/internal/logger"
	mocks "blog-service/mocks/store"
)

func TestStore_LoadsPersistedToken(t *testing.T) {
	s := store.New(storage.NewMemoryTokenStorage("persisted"), logger.New("test"))

	state := s.GetState()
	assert.Equal(t, "persisted", state.Auth.Token)
	assert.Nil(t, state.Auth.User)
	assert.Equal(t, store.StatusIdle, state.Auth.Status)
	assert.Equal(t, store.StatusIdle, state.Post.Status)
	assert.Empty(t, state.Post.Posts)
	assert.Equal(t, store.GuardFetchUser, s.RequireAuth())
}

func TestStore_LoadFailureStartsAnonymous(t *testing.T) {
	tokens := mocks.NewTokenStorage(t)
	tokens.On("Load").Return("", errors.New("disk gone"))

	s := store.New(tokens, logger.New("test"))

	assert.Empty(t, s.GetState().Auth.Token)
	assert.Equal(t, store.GuardRedirectLogin, s.RequireAuth())
}

func TestStore_TokenPersistence(t *testing.T) {
	alice := testUser("alice")
	tokens := storage.NewMemoryTokenStorage("")
	s := store.New(tokens, logger.New("test"))

	s.Dispatch(store.Pending(store.LoginPending))
	assert.Equal(t, store.GuardRedirectLogin, s.RequireAuth())

	s.Dispatch(store.Fulfilled(store.LoginFulfilled, store.AuthPayload{User: alice, Token: "tok"}))
	saved, err := tokens.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok", saved)
	assert.Equal(t, store.GuardAllow, s.RequireAuth())

	s.Dispatch(store.Rejected(store.GetCurrentUserRejected, errors.New("Unauthorized")))
	saved, err = tokens.Load()
	require.NoError(t, err)
	assert.Empty(t, saved)
	assert.Empty(t, s.GetState().Auth.Token)

	s.Dispatch(store.Fulfilled(store.SignupFulfilled, store.AuthPayload{User: alice, Token: "tok2"}))
	saved, err = tokens.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok2", saved)

	s.Dispatch(store.Action{Type: store.Logout})
	saved, err = tokens.Load()
	require.NoError(t, err)
	assert.Empty(t, saved)
	assert.Nil(t, s.GetState().Auth.User)
}

func TestStore_StorageErrorsDoNotBlockDispatch(t *testing.T) {
	alice := testUser("alice")
	tokens := mocks.NewTokenStorage(t)
	tokens.On("Load").Return("", nil)
	tokens.On("Save", "tok").Return(errors.New("read-only"))
	tokens.On("Remove").Return(errors.New("read-only"))

	s := store.New(tokens, logger.New("test"))

	state := s.Dispatch(store.Fulfilled(store.LoginFulfilled, store.AuthPayload{User: alice, Token: "tok"}))
	assert.Equal(t, "tok", state.Auth.Token)

	state = s.Dispatch(store.Action{Type: store.Logout})
	assert.Empty(t, state.Auth.Token)
}

func TestStore_RejectedLoginDoesNotTouchStorage(t *testing.T) {
	tokens := mocks.NewTokenStorage(t)
	tokens.On("Load").Return("", nil)

	s := store.New(tokens, logger.New("test"))
	s.Dispatch(store.Pending(store.LoginPending))
	s.Dispatch(store.Rejected(store.LoginRejected, nil))

	assert.Equal(t, store.MsgLoginFailed, s.GetState().Auth.Error)
	tokens.AssertNotCalled(t, "Save", "")
	tokens.AssertNotCalled(t, "Remove")
}

func TestStore_Subscribe(t *testing.T) {
	s := store.New(storage.NewMemoryTokenStorage(""), logger.New("test"))

	var seen []store.Status
	unsubscribe := s.Subscribe(func(state store.State) {
		seen = append(seen, state.Post.Status)
	})

	s.Dispatch(store.Pending(store.FetchPostsPending))
	s.Dispatch(store.Rejected(store.FetchPostsRejected, nil))
	unsubscribe()
	s.Dispatch(store.Pending(store.FetchPostsPending))

	assert.Equal(t, []store.Status{store.StatusLoading, store.StatusFailed}, seen)
}

func TestStore_ConcurrentDispatch(t *testing.T) {
	s := store.New(storage.NewMemoryTokenStorage(""), logger.New("test"))

	var mu sync.Mutex
	notified := 0
	s.Subscribe(func(store.State) {
		mu.Lock()
		notified++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Dispatch(store.Pending(store.FetchPostPending))
			_ = s.GetState()
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, notified)
	assert.Equal(t, store.StatusLoading, s.GetState().Post.Status)
}

func TestStore_ConcurrentLoginLogoutKeepsStorageInSync(t *testing.T) {
	alice := testUser("alice")

	for round := 0; round < 20; round++ {
		tokens := storage.NewMemoryTokenStorage("")
		s := store.New(tokens, logger.New("test"))

		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(2)
			token := fmt.Sprintf("tok-%d", i)
			go func() {
				defer wg.Done()
				s.Dispatch(store.Fulfilled(store.LoginFulfilled, store.AuthPayload{User: alice, Token: token}))
			}()
			go func() {
				defer wg.Done()
				s.Dispatch(store.Action{Type: store.Logout})
			}()
		}
		wg.Wait()

		saved, err := tokens.Load()
		require.NoError(t, err)
		assert.Equal(t, s.GetState().Auth.Token, saved)
	}
}
