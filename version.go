package admitkit

import (
	"encoding/json"
	"fmt"

	"github.com/ppiankov/admitkit/protocol"
)

// ProtocolVersionGuest answers the host's protocol negotiation probe.
// The inbound payload is ignored: the guest unconditionally reports the
// one protocol version it was compiled with, so the host can detect
// incompatibility before routing real admission traffic.
func ProtocolVersionGuest(_ []byte) ([]byte, error) {
	out, err := json.Marshal(protocol.DefaultProtocolVersion())
	if err != nil {
		return nil, fmt.Errorf("failed to encode protocol version: %w", err)
	}
	return out, nil
}
