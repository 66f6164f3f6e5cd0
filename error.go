package fldigi

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoHost indicates that no host was provided to connect to.
	ErrNoHost = errors.New("no host provided")
	// ErrInvalidPort indicates a port outside the range 1-65535.
	ErrInvalidPort = errors.New("invalid port")
)

// ErrorKind identifies which part of fldigi a failed call is attributed to.
type ErrorKind int

const (
	// KindXmlrpc is an XML-RPC communication error or an unclassified
	// protocol fault.
	KindXmlrpc ErrorKind = iota
	// KindRig is a rig control fault.
	KindRig
	// KindModem is a modem configuration fault.
	KindModem
	// KindMain is a main application state fault.
	KindMain
)

func (k ErrorKind) String() string {
	switch k {
	case KindRig:
		return "rig"
	case KindModem:
		return "modem"
	case KindMain:
		return "main"
	default:
		return "xmlrpc"
	}
}

// Fault is a protocol-level rejection reported by fldigi itself, as opposed
// to a connectivity or timeout failure.
type Fault struct {
	Code   int
	Reason string
}

func (f *Fault) Error() string {
	return fmt.Sprintf("fault %d: %s", f.Code, f.Reason)
}

// Error is a failed remote call, classified by namespace. It carries the
// remote method name and chains the underlying cause.
type Error struct {
	Kind   ErrorKind
	Method string

	cause error
}

func (e *Error) Error() string {
	if e.Method == "" {
		return fmt.Sprintf("%s error: %v", e.Kind, e.cause)
	}
	return fmt.Sprintf("%s error in %s: %v", e.Kind, e.Method, e.cause)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// IsKind reports whether err is a classified call error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var cerr *Error
	return errors.As(err, &cerr) && cerr.Kind == kind
}

// classify maps a failed call to an ErrorKind. Only the method name and the
// structural kind of the failure are inspected, never argument values.
// Connectivity and timeout failures are always KindXmlrpc; protocol faults
// are attributed by namespace, first match wins.
func classify(method string, err error) ErrorKind {
	var fault *Fault
	if !errors.As(err, &fault) {
		return KindXmlrpc
	}

	lower := strings.ToLower(method)
	switch {
	case strings.Contains(lower, "rig"):
		return KindRig
	case strings.Contains(lower, "modem"):
		return KindModem
	case strings.HasPrefix(method, "main."):
		return KindMain
	}
	return KindXmlrpc
}
