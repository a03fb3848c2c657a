package admitkit

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/ppiankov/admitkit/protocol"
)

// Validatable is implemented by policy settings types. Validate reports
// whether the decoded settings are semantically acceptable; a non-nil
// error carries the message returned to the host.
type Validatable interface {
	Validate() error
}

// ValidateSettings decodes payload into T, runs its Validate method and
// encodes the outcome as a SettingsValidationResponse.
//
// A structural decode failure is an invocation error, not a negative
// verdict: the returned error embeds the raw payload and the cause so
// the operator can see exactly what was sent. A semantic failure from
// Validate is a normal valid:false payload.
func ValidateSettings[T Validatable](payload []byte) ([]byte, error) {
	var settings T
	if err := json.Unmarshal(payload, &settings); err != nil {
		return nil, fmt.Errorf("error decoding validation payload %s: %w", payload, err)
	}
	// A null document unmarshals into a pointer type as a typed nil;
	// calling Validate on it would panic inside the guest.
	if v := reflect.ValueOf(settings); v.Kind() == reflect.Pointer && v.IsNil() {
		return nil, fmt.Errorf("error decoding validation payload %s: settings document is null", payload)
	}

	resp := protocol.SettingsValidationResponse{Valid: true}
	if err := settings.Validate(); err != nil {
		msg := err.Error()
		resp.Valid = false
		resp.Message = &msg
	}

	out, err := json.Marshal(&resp)
	if err != nil {
		return nil, fmt.Errorf("failed to encode settings validation response: %w", err)
	}
	return out, nil
}
