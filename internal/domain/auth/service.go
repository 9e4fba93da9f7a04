package auth

import "context"

type AuthService interface {
	SignUp(ctx context.Context, req SignUpRequest) (SignUpResponse, error)
	SignIn(ctx context.Context, req SignInRequest) (SignInResponse, error)
	// Whoami resolves the acting user back into the login payload, used by
	// the token verification endpoint.
	Whoami(ctx context.Context) (UserPayload, error)
}
