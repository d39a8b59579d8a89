// Package channel provides the value types for process-variable channels:
// identifiers, per-channel configuration, point-in-time snapshots and the
// wire encodings accepted by mutations.
// This package has NO dependencies on I/O or external packages.
package channel

import "strings"

// Transport delimiters recognised in channel identifiers.
// "://" is checked first so that "ca://BL01:MTR:X" splits on the scheme.
const (
	SchemeDelimiter = "://"
	ShortDelimiter  = ":"
)

// Address is a parsed channel identifier (value type).
type Address struct {
	Transport string // empty when the identifier carried no prefix
	Name      string // bare name, never includes the transport prefix
	Raw       string // the identifier as received
}

// HasTransport reports whether the identifier named a transport.
func (a Address) HasTransport() bool {
	return a.Transport != ""
}

// String returns the canonical "<transport>://<name>" form, or the bare
// name when no transport was given.
func (a Address) String() string {
	if a.Transport == "" {
		return a.Name
	}
	return a.Transport + SchemeDelimiter + a.Name
}

// ParseAddress splits an identifier into transport and bare name.
// It never fails: whether the transport exists is decided by the registry.
//
//	ParseAddress("ca://PV1")  -> {Transport: "ca", Name: "PV1"}
//	ParseAddress("ca:PV1")    -> {Transport: "ca", Name: "PV1"}
//	ParseAddress("PV1")       -> {Transport: "",   Name: "PV1"}
func ParseAddress(id string) Address {
	transport, name := StripTransport(id)
	return Address{Transport: transport, Name: name, Raw: id}
}

// StripTransport applies the identifier parsing rule to a raw PV string,
// such as the read_pv or write_pv of a channel config.
func StripTransport(pv string) (transport, name string) {
	if i := strings.Index(pv, SchemeDelimiter); i > 0 {
		return pv[:i], pv[i+len(SchemeDelimiter):]
	}
	if i := strings.Index(pv, ShortDelimiter); i > 0 {
		return pv[:i], pv[i+len(ShortDelimiter):]
	}
	return "", pv
}
