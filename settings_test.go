package admitkit

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/ppiankov/admitkit/protocol"
)

// exclusiveSettings requires exactly one of setting_a or setting_b.
type exclusiveSettings struct {
	SettingA *string `json:"setting_a,omitempty"`
	SettingB *string `json:"setting_b,omitempty"`
}

func (s *exclusiveSettings) Validate() error {
	if s.SettingA == nil && s.SettingB == nil {
		return errors.New("either setting A or setting B has to be provided")
	}
	if s.SettingA != nil && s.SettingB != nil {
		return errors.New("setting A and setting B cannot be set at the same time")
	}
	return nil
}

func decodeSettingsVerdict(t *testing.T, raw []byte) protocol.SettingsValidationResponse {
	t.Helper()
	var resp protocol.SettingsValidationResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		t.Fatalf("cannot decode settings verdict %s: %v", raw, err)
	}
	return resp
}

func TestValidateSettingsAcceptsExactlyOne(t *testing.T) {
	for _, payload := range []string{
		`{"setting_a": "value"}`,
		`{"setting_b": "value"}`,
	} {
		raw, err := ValidateSettings[*exclusiveSettings]([]byte(payload))
		if err != nil {
			t.Fatalf("ValidateSettings(%s) failed: %v", payload, err)
		}
		resp := decodeSettingsVerdict(t, raw)
		if !resp.Valid {
			t.Errorf("expected valid=true for %s, got message %v", payload, resp.Message)
		}
		if resp.Message != nil {
			t.Errorf("expected no message for %s, got %q", payload, *resp.Message)
		}
	}
}

func TestValidateSettingsRejectsBothOrNeither(t *testing.T) {
	for _, payload := range []string{
		`{}`,
		`{"setting_a": "a", "setting_b": "b"}`,
	} {
		raw, err := ValidateSettings[*exclusiveSettings]([]byte(payload))
		if err != nil {
			t.Fatalf("ValidateSettings(%s) failed: %v", payload, err)
		}
		resp := decodeSettingsVerdict(t, raw)
		if resp.Valid {
			t.Errorf("expected valid=false for %s", payload)
		}
		if resp.Message == nil || *resp.Message == "" {
			t.Errorf("expected a non-empty message for %s", payload)
		}
	}
}

func TestValidateSettingsNullPayloadIsInvocationError(t *testing.T) {
	raw, err := ValidateSettings[*exclusiveSettings]([]byte(`null`))
	if err == nil {
		t.Fatalf("expected invocation error for null payload, got payload %s", raw)
	}
	if raw != nil {
		t.Error("expected no verdict payload for null settings")
	}
	if !strings.Contains(err.Error(), "null") {
		t.Errorf("diagnostic must carry the raw payload, got: %v", err)
	}
}

func TestValidateSettingsMalformedPayloadIsInvocationError(t *testing.T) {
	for _, payload := range []string{
		`{"setting_a": 42}`,
		`{"setting_a":`,
		`not json at all`,
	} {
		raw, err := ValidateSettings[*exclusiveSettings]([]byte(payload))
		if err == nil {
			t.Fatalf("expected invocation error for %s, got payload %s", payload, raw)
		}
		if raw != nil {
			t.Errorf("expected no verdict payload for %s", payload)
		}
		if !strings.Contains(err.Error(), payload) {
			t.Errorf("diagnostic must carry the raw payload %q, got: %v", payload, err)
		}
	}
}
