package store

type Guard int

const (
	// GuardRedirectLogin means there is no token; the caller has to log in.
	GuardRedirectLogin Guard = iota
	// GuardWait means an auth request is in flight.
	GuardWait
	// GuardFetchUser means a token is present but the user is not loaded yet.
	GuardFetchUser
	GuardAllow
)

func (g Guard) String() string {
	switch g {
	case GuardRedirectLogin:
		return "redirect_login"
	case GuardWait:
		return "wait"
	case GuardFetchUser:
		return "fetch_user"
	case GuardAllow:
		return "allow"
	default:
		return "unknown"
	}
}

func RequireAuth(auth AuthState) Guard {
	switch {
	case auth.Token == "":
		return GuardRedirectLogin
	case auth.IsLoading():
		return GuardWait
	case auth.User == nil:
		return GuardFetchUser
	default:
		return GuardAllow
	}
}
