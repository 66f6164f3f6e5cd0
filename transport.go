package fldigi

import (
	"errors"
	"net"
	"net/http"
	"net/rpc"
	"net/url"
	"strconv"
	"time"

	"github.com/kolo/xmlrpc"
)

// Transport performs synchronous XML-RPC exchanges with fldigi.
type Transport interface {
	// Invoke calls the named remote method with positional arguments and
	// returns the decoded result verbatim. A protocol-level rejection by
	// fldigi is returned as a *Fault; any other error is a transport
	// failure.
	Invoke(method string, args []any) (any, error)

	// Close closes the transport and releases any resources.
	Close() error
}

// xmlrpcTransport talks to fldigi's XML-RPC server over HTTP. The TCP
// connection is established lazily on first use; the configured timeout
// bounds dialing and the wait for each response.
type xmlrpcTransport struct {
	rpc *xmlrpc.Client
	url string
}

var _ Transport = (*xmlrpcTransport)(nil)

func newTransport(host string, port int, timeout time.Duration) (*xmlrpcTransport, error) {
	if host == "" {
		return nil, ErrNoHost
	}
	if port < 1 || port > 65535 {
		return nil, ErrInvalidPort
	}

	target := net.JoinHostPort(host, strconv.Itoa(port))
	u, err := url.Parse("http://" + target)
	if err != nil {
		return nil, err
	}

	cli, err := xmlrpc.NewClient(u.String(), &http.Transport{
		DialContext:           (&net.Dialer{Timeout: timeout}).DialContext,
		ResponseHeaderTimeout: timeout,
	})
	if err != nil {
		return nil, err
	}

	return &xmlrpcTransport{rpc: cli, url: u.String()}, nil
}

func (t *xmlrpcTransport) Invoke(method string, args []any) (any, error) {
	var result any
	err := t.rpc.Call(method, args, &result)
	if err == nil {
		return result, nil
	}

	// Surface protocol faults as our own type so callers never depend on
	// the wire library.
	var fault xmlrpc.FaultError
	if errors.As(err, &fault) {
		return nil, &Fault{Code: fault.Code, Reason: fault.String}
	}

	// The net/rpc machinery underneath the codec flattens remote-reported
	// faults into a ServerError string. Anything else is a transport
	// failure and passes through unwrapped.
	var serr rpc.ServerError
	if errors.As(err, &serr) {
		return nil, &Fault{Reason: string(serr)}
	}
	return nil, err
}

func (t *xmlrpcTransport) Close() error {
	return t.rpc.Close()
}
