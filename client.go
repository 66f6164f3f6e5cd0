package fldigi

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Client controls a running fldigi instance over its XML-RPC interface.
//
// Every operation performs one blocking round trip and returns once fldigi
// replies or the timeout elapses. A Client holds no state beyond its
// transport and performs no caching; it is not safe for concurrent use by
// multiple goroutines without external synchronization. fldigi itself
// serializes incoming requests.
type Client struct {
	// Namespace proxies covering fldigi's full XML-RPC method surface.
	// Rig.Call("get_mode") is exactly equivalent to Call("rig.get_mode").
	Fldigi      *Namespace
	Main        *Namespace
	Rig         *Namespace
	Text        *Namespace
	Modem       *Namespace
	ModemOlivia *Namespace
	RX          *Namespace
	RXTX        *Namespace
	TX          *Namespace
	Log         *Namespace
	IO          *Namespace
	Spot        *Namespace
	Navtex      *Namespace
	Wefax       *Namespace

	transport Transport
	logger    zerolog.Logger
}

// NewClient creates a client for the fldigi XML-RPC server, by default at
// 127.0.0.1:7362 with a 5 second call timeout. Configuration errors surface
// immediately; the connection itself is established on first call.
func NewClient(opts ...Option) (*Client, error) {
	options := &Options{
		Host:    DefaultHost,
		Port:    DefaultPort,
		Timeout: DefaultTimeout,
		Logger:  zerolog.Nop(),
	}

	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}

	transport := options.Transport
	if transport == nil {
		var err error
		transport, err = newTransport(options.Host, options.Port, options.Timeout)
		if err != nil {
			return nil, &Error{Kind: KindXmlrpc, cause: err}
		}
	}

	c := &Client{
		transport: transport,
		logger:    options.Logger,
	}

	c.Fldigi = c.Namespace("fldigi")
	c.Main = c.Namespace("main")
	c.Rig = c.Namespace("rig")
	c.Text = c.Namespace("text")
	c.Modem = c.Namespace("modem")
	c.ModemOlivia = c.Namespace("modem.olivia")
	c.RX = c.Namespace("rx")
	c.RXTX = c.Namespace("rxtx")
	c.TX = c.Namespace("tx")
	c.Log = c.Namespace("log")
	c.IO = c.Namespace("io")
	c.Spot = c.Namespace("spot")
	c.Navtex = c.Namespace("navtex")
	c.Wefax = c.Namespace("wefax")

	return c, nil
}

// Close closes the underlying transport.
func (c *Client) Close() error {
	return c.transport.Close()
}

// Namespace returns a proxy bound to an arbitrary namespace prefix. The
// common namespaces are predeclared as fields on Client.
func (c *Client) Namespace(prefix string) *Namespace {
	return &Namespace{client: c, prefix: prefix}
}

// Call invokes a fully qualified remote method, e.g. "rig.get_frequency",
// with positional arguments and returns the raw result unchanged. Every
// remote call made by this package passes through here: a failure is
// classified by namespace into an *Error that chains the underlying cause.
func (c *Client) Call(method string, args ...any) (any, error) {
	c.logger.Debug().Str("method", method).Int("args", len(args)).Msg("dispatching call")

	result, err := c.transport.Invoke(method, args)
	if err != nil {
		cerr := &Error{Kind: classify(method, err), Method: method, cause: err}
		c.logger.Debug().Err(cerr).Msg("call failed")
		return nil, cerr
	}
	return result, nil
}

// callWithFallback issues the rig-namespace call and repeats it in the main
// namespace, with identical arguments, when the rig rejected it. Only
// KindRig triggers the fallback; any other failure, and any failure of the
// fallback itself, propagates unmodified.
func (c *Client) callWithFallback(primary, fallback string, args ...any) (any, error) {
	result, err := c.Call(primary, args...)
	if err != nil && IsKind(err, KindRig) {
		return c.Call(fallback, args...)
	}
	return result, err
}

// Rx switches fldigi to receive. Wire call: main.rx.
func (c *Client) Rx() error {
	_, err := c.Call("main.rx")
	return err
}

// Tx switches fldigi to transmit. Wire call: main.tx.
func (c *Client) Tx() error {
	_, err := c.Call("main.tx")
	return err
}

// Tune switches fldigi to tune mode. Wire call: main.tune.
func (c *Client) Tune() error {
	_, err := c.Call("main.tune")
	return err
}

// Abort aborts a transmit or tune. Wire call: main.abort.
func (c *Client) Abort() error {
	_, err := c.Call("main.abort")
	return err
}

// AddTx appends text to the transmit buffer. Wire call: text.add_tx.
func (c *Client) AddTx(text string) error {
	_, err := c.Call("text.add_tx", text)
	return err
}

// ClearRx clears the receive buffer. Wire call: text.clear_rx.
func (c *Client) ClearRx() error {
	_, err := c.Call("text.clear_rx")
	return err
}

// ClearTx clears the transmit buffer. Wire call: text.clear_tx.
func (c *Client) ClearTx() error {
	_, err := c.Call("text.clear_tx")
	return err
}

// GetRx returns received text starting at the given character offset. A
// length of 0 requests the remainder of the buffer, matching the sentinel
// fldigi expects on the wire. Wire call: text.get_rx.
func (c *Client) GetRx(start, length int) (string, error) {
	result, err := c.Call("text.get_rx", start, 0, length)
	if err != nil {
		return "", err
	}
	return toString("text.get_rx", result)
}

// Frequency returns the current carrier frequency in Hz. Wire call:
// rig.get_frequency, falling back to main.get_frequency when the rig
// rejects it.
func (c *Client) Frequency() (float64, error) {
	result, err := c.callWithFallback("rig.get_frequency", "main.get_frequency")
	if err != nil {
		return 0, err
	}
	return toFloat("rig.get_frequency", result)
}

// SetFrequency tunes to the given frequency in Hz. Wire call:
// rig.set_frequency, falling back to main.set_frequency.
func (c *Client) SetFrequency(hz float64) error {
	_, err := c.callWithFallback("rig.set_frequency", "main.set_frequency", hz)
	return err
}

// Mode returns the current operating mode name, e.g. "BPSK31". Wire call:
// rig.get_mode, falling back to main.get_mode.
func (c *Client) Mode() (string, error) {
	result, err := c.callWithFallback("rig.get_mode", "main.get_mode")
	if err != nil {
		return "", err
	}
	return toString("rig.get_mode", result)
}

// SetMode selects an operating mode by name. Wire call: rig.set_mode,
// falling back to main.set_mode.
func (c *Client) SetMode(name string) error {
	_, err := c.callWithFallback("rig.set_mode", "main.set_mode", name)
	return err
}

// Bandwidth returns the current bandwidth in Hz. Wire call:
// rig.get_bandwidth, falling back to main.get_bandwidth.
func (c *Client) Bandwidth() (int, error) {
	result, err := c.callWithFallback("rig.get_bandwidth", "main.get_bandwidth")
	if err != nil {
		return 0, err
	}
	return toInt("rig.get_bandwidth", result)
}

// SetBandwidth sets the bandwidth in Hz. Wire call: rig.set_bandwidth,
// falling back to main.set_bandwidth.
func (c *Client) SetBandwidth(hz int) error {
	_, err := c.callWithFallback("rig.set_bandwidth", "main.set_bandwidth", hz)
	return err
}

// Squelch returns the squelch level (0-100). Wire call:
// main.get_squelch_level.
func (c *Client) Squelch() (int, error) {
	result, err := c.Call("main.get_squelch_level")
	if err != nil {
		return 0, err
	}
	return toInt("main.get_squelch_level", result)
}

// SetSquelch sets the squelch level (0-100). Wire call:
// main.set_squelch_level.
func (c *Client) SetSquelch(level int) error {
	_, err := c.Call("main.set_squelch_level", level)
	return err
}

// SignalStrength returns the current signal quality (0.0-100.0). Wire call:
// modem.get_quality.
func (c *Client) SignalStrength() (float64, error) {
	result, err := c.Call("modem.get_quality")
	if err != nil {
		return 0, err
	}
	return toFloat("modem.get_quality", result)
}

// RxState reports whether fldigi is receiving. Wire call: main.rx.
func (c *Client) RxState() (bool, error) {
	result, err := c.Call("main.rx")
	if err != nil {
		return false, err
	}
	return toBool("main.rx", result)
}

// TxState reports whether fldigi is transmitting. Wire call: main.tx.
func (c *Client) TxState() (bool, error) {
	result, err := c.Call("main.tx")
	if err != nil {
		return false, err
	}
	return toBool("main.tx", result)
}

// The wire codec decodes integers as int64 and byte buffers as []byte; the
// typed accessors tolerate the handful of representations fldigi is known
// to reply with.

func toString(method string, v any) (string, error) {
	switch s := v.(type) {
	case string:
		return s, nil
	case []byte:
		return string(s), nil
	}
	return "", unexpectedResult(method, v)
}

func toFloat(method string, v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case int64:
		return float64(n), nil
	case int:
		return float64(n), nil
	}
	return 0, unexpectedResult(method, v)
}

func toInt(method string, v any) (int, error) {
	switch n := v.(type) {
	case int64:
		return int(n), nil
	case int:
		return n, nil
	case float64:
		return int(n), nil
	}
	return 0, unexpectedResult(method, v)
}

func toBool(method string, v any) (bool, error) {
	switch b := v.(type) {
	case bool:
		return b, nil
	case nil:
		return false, nil
	case int64:
		return b != 0, nil
	case int:
		return b != 0, nil
	}
	return false, unexpectedResult(method, v)
}

func unexpectedResult(method string, v any) error {
	return &Error{
		Kind:   KindXmlrpc,
		Method: method,
		cause:  fmt.Errorf("unexpected result type %T", v),
	}
}
