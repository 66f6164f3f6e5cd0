// Package fldigi is a client for controlling the fldigi digital-modem
// application over its XML-RPC interface.
//
// The typed convenience API covers frequency, mode, bandwidth, squelch and
// the transmit/receive buffers; everything else fldigi exposes is reachable
// through the namespace proxies or Call:
//
//	radio, err := fldigi.NewClient()
//	if err != nil {
//		// fldigi not reachable
//	}
//	defer radio.Close()
//
//	radio.AddTx("CQ CQ DE KM4YRI")
//	freq, _ := radio.Frequency()
//	radio.SetMode("BPSK31")
//	version, _ := radio.Fldigi.Call("version")
package fldigi
