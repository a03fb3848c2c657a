package admitkit

import (
	"encoding/json"
	"fmt"

	"github.com/ppiankov/admitkit/protocol"
)

// AcceptRequest encodes an acceptance verdict with every optional field
// absent.
func AcceptRequest() ([]byte, error) {
	return marshalResponse(&protocol.ValidationResponse{Accepted: true})
}

// MutateRequest encodes an acceptance verdict that replaces the object
// under admission with mutatedObject. The document is carried through
// verbatim: no validation or diffing happens here, the caller is
// responsible for producing a shape the host accepts.
func MutateRequest(mutatedObject any) ([]byte, error) {
	return marshalResponse(&protocol.ValidationResponse{
		Accepted:      true,
		MutatedObject: mutatedObject,
	})
}

// RejectRequest encodes a rejection verdict. Every field is optional
// and independent; a bare RejectRequest() is a legal rejection with no
// diagnostics.
func RejectRequest(opts ...RejectOption) ([]byte, error) {
	resp := protocol.ValidationResponse{Accepted: false}
	for _, o := range opts {
		o(&resp)
	}
	return marshalResponse(&resp)
}

func marshalResponse(r *protocol.ValidationResponse) ([]byte, error) {
	out, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("failed to encode validation response: %w", err)
	}
	return out, nil
}
