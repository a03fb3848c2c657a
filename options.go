package admitkit

import "github.com/ppiankov/admitkit/protocol"

// RejectOption attaches an optional field to a rejection verdict.
type RejectOption func(*protocol.ValidationResponse)

// WithMessage sets the message shown to the user.
func WithMessage(message string) RejectOption {
	return func(r *protocol.ValidationResponse) { r.Message = &message }
}

// WithCode sets the status code reported with the rejection.
func WithCode(code uint16) RejectOption {
	return func(r *protocol.ValidationResponse) { r.Code = &code }
}

// WithAuditAnnotations sets the unstructured key/value map attached to
// the host's audit log for this request.
func WithAuditAnnotations(annotations map[string]string) RejectOption {
	return func(r *protocol.ValidationResponse) { r.AuditAnnotations = annotations }
}

// WithWarnings appends warning messages returned to the requesting API
// client. Keep individual warnings under 120 characters where possible;
// hosts may truncate longer ones.
func WithWarnings(warnings ...string) RejectOption {
	return func(r *protocol.ValidationResponse) {
		r.Warnings = append(r.Warnings, warnings...)
	}
}
