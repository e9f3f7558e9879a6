package cbrs

import (
	"context"

	"github.com/enodebd-net/enodebd-acs/pkg/fsm"
)

// FetchFunc performs the actual domain-proxy RPC for one serial. The
// real transport (a gRPC call to the Domain Proxy) is supplied by the
// caller that
// wires up a QRTB handler; this package only defines the shape SAS
// grant data takes once it arrives and what the engine does with it.
type FetchFunc func(ctx context.Context, serial string) (fsm.CBSDState, error)

// Client adapts a FetchFunc to fsm.DomainProxyClient. Splitting the
// interface from the transport keeps pkg/fsm free of any dependency on
// how the Domain Proxy is actually reached.
type Client struct {
	Fetch FetchFunc
}

// NewClient wraps fetch as an fsm.DomainProxyClient.
func NewClient(fetch FetchFunc) *Client {
	return &Client{Fetch: fetch}
}

// FetchCBSDState implements fsm.DomainProxyClient.
func (c *Client) FetchCBSDState(ctx context.Context, serial string) (fsm.CBSDState, error) {
	return c.Fetch(ctx, serial)
}
