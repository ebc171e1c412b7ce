package sessioninfo

import (
	"context"
	"fmt"
	"net/http"
)

// ctxKey is a type for storing values in the request context
type ctxKey string

// CtxSession is the key used to store the Session in the context.
const CtxSession ctxKey = "session"

// NewCtx returns a copy of ctx carrying s.
func NewCtx(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, CtxSession, s)
}

// FromRequest returns the session from the request context.
func FromRequest(r *http.Request) Session {
	return FromCtx(r.Context())
}

// FromCtx returns the session from the context.
func FromCtx(ctx context.Context) Session {
	s, ok := ctx.Value(CtxSession).(Session)
	if !ok {
		panic(fmt.Sprintf("failed to find %s in request context", CtxSession))
	}

	return s
}
