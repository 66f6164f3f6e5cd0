package fldigi

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	fault := &Fault{Code: 1, Reason: "not configured"}

	tests := []struct {
		method string
		err    error
		kind   ErrorKind
	}{
		// Protocol faults are attributed by namespace, first match wins.
		{"rig.set_frequency", fault, KindRig},
		{"RIG.GET_MODE", fault, KindRig},
		{"modem.get_quality", fault, KindModem},
		{"modem.olivia.set_bandwidth", fault, KindModem},
		{"main.rx", fault, KindMain},
		{"main.set_rig_name", fault, KindRig},
		{"text.add_tx", fault, KindXmlrpc},
		{"fldigi.version", fault, KindXmlrpc},

		// Connectivity failures are always KindXmlrpc, regardless of the
		// method name.
		{"rig.set_frequency", errors.New("connection refused"), KindXmlrpc},
		{"modem.get_quality", errors.New("timeout"), KindXmlrpc},
		{"main.rx", errors.New("timeout"), KindXmlrpc},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			assert.Equal(t, tt.kind, classify(tt.method, tt.err))
		})
	}
}

func TestClassifySeesWrappedFault(t *testing.T) {
	err := fmt.Errorf("call failed: %w", &Fault{Code: 3, Reason: "busy"})
	assert.Equal(t, KindRig, classify("rig.get_mode", err))
}

func TestErrorMessage(t *testing.T) {
	err := &Error{
		Kind:   KindRig,
		Method: "rig.set_frequency",
		cause:  &Fault{Code: 1, Reason: "rig not configured"},
	}

	assert.Equal(t, "rig error in rig.set_frequency: fault 1: rig not configured", err.Error())
}

func TestErrorChainsCause(t *testing.T) {
	fault := &Fault{Code: 1, Reason: "busy"}
	err := &Error{Kind: KindModem, Method: "modem.set_carrier", cause: fault}

	var got *Fault
	require.True(t, errors.As(err, &got))
	assert.Equal(t, fault, got)
	assert.True(t, errors.Is(err, fault))
}

func TestIsKind(t *testing.T) {
	err := error(&Error{Kind: KindRig, Method: "rig.get_mode", cause: errors.New("x")})

	assert.True(t, IsKind(err, KindRig))
	assert.False(t, IsKind(err, KindMain))
	assert.False(t, IsKind(errors.New("plain"), KindRig))
	assert.False(t, IsKind(nil, KindXmlrpc))

	wrapped := fmt.Errorf("facade: %w", err)
	assert.True(t, IsKind(wrapped, KindRig))
}

func TestErrorKindString(t *testing.T) {
	assert.Equal(t, "xmlrpc", KindXmlrpc.String())
	assert.Equal(t, "rig", KindRig.String())
	assert.Equal(t, "modem", KindModem.String())
	assert.Equal(t, "main", KindMain.String())
}
