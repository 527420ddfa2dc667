package core

import "context"

type clientInfoKey struct{}

// ClientInfo identifies who asked for a view. Exports store it as provenance.
type ClientInfo struct {
	IP        string
	UserAgent string
}

// WithClientInfo returns a copy of ctx carrying info.
func WithClientInfo(ctx context.Context, info ClientInfo) context.Context {
	return context.WithValue(ctx, clientInfoKey{}, info)
}

// ClientInfoFrom returns the ClientInfo stored in ctx, or the zero value
// for requests that did not come over HTTP (the CLI).
func ClientInfoFrom(ctx context.Context) ClientInfo {
	info, _ := ctx.Value(clientInfoKey{}).(ClientInfo)
	return info
}
