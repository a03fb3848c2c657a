package admitkit

import (
	wapc "github.com/wapc/wapc-guest-tinygo"
)

// Function is the guest entry-point signature the host dispatcher
// invokes: one binary payload in, one binary payload out.
type Function = wapc.Function

// RegisterEntryPoints wires a policy into the host dispatcher under the
// fixed entry-point names: the caller-supplied validate callback plus
// the SDK's settings validation and protocol negotiation handlers.
func RegisterEntryPoints[T Validatable](validate Function) {
	wapc.RegisterFunctions(wapc.Functions{
		"validate":          validate,
		"validate_settings": ValidateSettings[T],
		"protocol_version":  ProtocolVersionGuest,
	})
}

// RegisterFunction registers an additional entry point under name.
func RegisterFunction(name string, fn Function) {
	wapc.RegisterFunctions(wapc.Functions{name: fn})
}
