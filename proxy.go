package fldigi

// Namespace forwards calls into one dot-prefixed group of fldigi's XML-RPC
// methods (e.g. "rig", "text"). It exposes the full remote method surface
// without enumerating it: the method name is not validated locally, an
// unknown name surfaces as a classified error at call time.
type Namespace struct {
	client *Client
	prefix string
}

// Call invokes "<prefix>.<name>" with the given positional arguments through
// the client's dispatcher and returns the raw result. Calling
// client.Rig.Call("get_mode") is exactly equivalent to
// client.Call("rig.get_mode").
func (n *Namespace) Call(name string, args ...any) (any, error) {
	return n.client.Call(n.prefix+"."+name, args...)
}

// Prefix returns the namespace prefix this proxy is bound to.
func (n *Namespace) Prefix() string {
	return n.prefix
}
