package admitkit

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/ppiankov/admitkit/protocol"
)

func TestProtocolVersionGuestReportsDefault(t *testing.T) {
	raw, err := ProtocolVersionGuest(nil)
	if err != nil {
		t.Fatalf("ProtocolVersionGuest failed: %v", err)
	}

	var version protocol.ProtocolVersion
	if err := json.Unmarshal(raw, &version); err != nil {
		t.Fatalf("cannot decode version %s: %v", raw, err)
	}
	if version != protocol.DefaultProtocolVersion() {
		t.Errorf("expected %s, got %s", protocol.DefaultProtocolVersion(), version)
	}
	if version != protocol.ProtocolVersionV2 {
		t.Errorf("expected v2, got %s", version)
	}
}

func TestProtocolVersionGuestIgnoresInputAndIsStable(t *testing.T) {
	first, err := ProtocolVersionGuest(nil)
	if err != nil {
		t.Fatalf("ProtocolVersionGuest failed: %v", err)
	}
	second, err := ProtocolVersionGuest([]byte("garbage payload"))
	if err != nil {
		t.Fatalf("ProtocolVersionGuest failed: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Errorf("version must be stable across calls: %s vs %s", first, second)
	}
}
