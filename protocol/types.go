// Package protocol defines the wire records exchanged between a guest
// admission policy and its host. Field names are a compatibility
// contract with the host and must not change.
package protocol

import "fmt"

// ValidationResponse is the verdict returned to the host for an
// admission request.
type ValidationResponse struct {
	Accepted bool `json:"accepted"`
	// Message is shown to the user, present only on rejection.
	Message *string `json:"message,omitempty"`
	// Code is the status code reported alongside a rejection.
	Code *uint16 `json:"code,omitempty"`
	// MutatedObject replaces the object under admission when the guest
	// accepts with mutation.
	MutatedObject any `json:"mutated_object,omitempty"`
	// AuditAnnotations is an unstructured key/value map the admission
	// controller attaches to the audit log for this request. Hosts
	// prefix the keys with the webhook name
	// (e.g. imagepolicy.example.com/error=image-blacklisted).
	AuditAnnotations map[string]string `json:"audit_annotations,omitempty"`
	// Warnings are non-fatal notices returned to the requesting API
	// client. Hosts may truncate warnings over 256 characters.
	Warnings []string `json:"warnings,omitempty"`
}

// Check validates the structural invariants of a verdict: an accepted
// verdict carries no message or code, and only an accepted verdict may
// carry a mutated object.
func (r *ValidationResponse) Check() error {
	if r.Accepted {
		if r.Message != nil {
			return fmt.Errorf("accepted verdict carries a message: %q", *r.Message)
		}
		if r.Code != nil {
			return fmt.Errorf("accepted verdict carries code %d", *r.Code)
		}
		return nil
	}
	if r.MutatedObject != nil {
		return fmt.Errorf("rejected verdict carries a mutated object")
	}
	return nil
}

// SettingsValidationResponse is the verdict returned to the host for a
// settings validation request.
type SettingsValidationResponse struct {
	Valid bool `json:"valid"`
	// Message explains the failure, present only when Valid is false.
	Message *string `json:"message,omitempty"`
}

// ProtocolVersion identifies the guest/host wire protocol revision. It
// is fixed at build time; the guest never negotiates.
type ProtocolVersion string

const (
	ProtocolVersionUnknown ProtocolVersion = "unknown"
	ProtocolVersionV1      ProtocolVersion = "v1"
	ProtocolVersionV2      ProtocolVersion = "v2"
)

// DefaultProtocolVersion returns the protocol version this SDK speaks,
// always the latest revision.
func DefaultProtocolVersion() ProtocolVersion {
	return ProtocolVersionV2
}

// IsKnown reports whether v is a protocol version this SDK understands.
func (v ProtocolVersion) IsKnown() bool {
	switch v {
	case ProtocolVersionV1, ProtocolVersionV2:
		return true
	default:
		return false
	}
}
