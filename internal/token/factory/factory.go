// Package factory composes the refresh, access and session token types
// into the (refresh, access, session) triple issued on every successful
// login.
package factory

import (
	"context"

	"github.com/VinukaThejana/auth-rs/internal/token/claims"
	"github.com/VinukaThejana/auth-rs/internal/token/types"
)

// Factory composes the three token types the login/refresh choreography
// needs. It does not construct them itself (they are supplied by
// svc.ServiceContext) so there is no mutual reference between the
// factory and the token types.
type Factory struct {
	Refresh *types.RefreshToken
	Access  *types.AccessToken
	Session *types.SessionToken
}

// Triple is the (refresh, access, session) set returned by a successful
// login.
type Triple struct {
	Refresh *types.Response
	Access  *types.Response
	Session *types.Response
}

// Issue runs the full factory sequence: refresh (writes cache bindings)
// -> extract rjti/ajti -> access in bound mode -> session over the
// user's profile.
func (f *Factory) Issue(ctx context.Context, userID string, profile claims.Profile) (*Triple, error) {
	refreshResp, paired, err := f.Refresh.Create(ctx, userID, f.Access.Exp())
	if err != nil {
		return nil, err
	}

	accessResp, err := f.Access.CreateBound(userID, paired.RJTI, paired.AJTI)
	if err != nil {
		return nil, err
	}

	sessionResp, err := f.Session.Create(paired.RJTI, profile)
	if err != nil {
		return nil, err
	}

	return &Triple{Refresh: refreshResp, Access: accessResp, Session: sessionResp}, nil
}
