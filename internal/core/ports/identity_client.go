package ports

import (
	"context"

	"smallsquare/internal/core/domain/model/kernel"
)

// IdentityUser is the read model returned by the identity microservice for
// an existing user. Only the fields the marketplace consumes are mapped.
type IdentityUser struct {
	ID   kernel.UUID
	Role string
}

// SignUpRequest carries the data forwarded to the identity microservice
// when registering a new kitchen employee user.
type SignUpRequest struct {
	Name     string
	LastName string
	Email    string
	Phone    string
	Password string
}

// IdentityClient is the request/response contract with the external identity
// microservice. The order lifecycle itself never calls it; the restaurant
// registration flow uses GetUser to gate creation to the "owner" role, and
// the employee registration flow uses SignUp to create the backing user.
type IdentityClient interface {
	// GetUser fetches a user by id. Returns a not-found error when the user
	// does not exist; any transport failure is wrapped as an internal error.
	GetUser(ctx context.Context, id kernel.UUID) (IdentityUser, error)

	// SignUp registers a new user and returns the id encoded in the access
	// token the identity service issues.
	SignUp(ctx context.Context, req SignUpRequest) (kernel.UUID, error)
}
