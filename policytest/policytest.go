// Package policytest runs admission policy callbacks against request
// fixtures outside the host sandbox, so policy authors can exercise
// their validate entry points with plain go test.
package policytest

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ppiankov/admitkit"
	"github.com/ppiankov/admitkit/protocol"
)

// Testcase drives one validate invocation: a request fixture on disk,
// the settings to pair it with, and the verdict the policy is expected
// to return.
type Testcase[T any] struct {
	Name        string
	FixtureFile string
	// ExpectedValidationResult is the accepted value the verdict must
	// carry.
	ExpectedValidationResult bool
	Settings                 T
}

// envelope is the inbound validation payload shape. The request
// document stays opaque to the harness.
type envelope struct {
	Request  json.RawMessage `json:"request"`
	Settings any             `json:"settings"`
}

// Eval feeds the fixture through validate and decodes the verdict. It
// returns an error when the payload cannot be built, the callback
// fails, or the verdict disagrees with ExpectedValidationResult. The
// decoded verdict is returned alongside for further assertions.
func (tc Testcase[T]) Eval(validate func(payload []byte) ([]byte, error)) (*protocol.ValidationResponse, error) {
	request, err := os.ReadFile(tc.FixtureFile)
	if err != nil {
		return nil, fmt.Errorf("%s: cannot read fixture %s: %w", tc.Name, tc.FixtureFile, err)
	}

	payload, err := json.Marshal(envelope{Request: request, Settings: tc.Settings})
	if err != nil {
		return nil, fmt.Errorf("%s: cannot build validation payload: %w", tc.Name, err)
	}

	raw, err := validate(payload)
	if err != nil {
		return nil, fmt.Errorf("%s: validation callback failed: %w", tc.Name, err)
	}

	var resp protocol.ValidationResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("%s: cannot decode verdict %s: %w", tc.Name, raw, err)
	}

	if resp.Accepted != tc.ExpectedValidationResult {
		return &resp, fmt.Errorf("%s: expected accepted=%t, got accepted=%t",
			tc.Name, tc.ExpectedValidationResult, resp.Accepted)
	}
	return &resp, nil
}

// EvalSettings encodes settings, runs them through the settings
// validation dispatcher for T and decodes the outcome.
func EvalSettings[T admitkit.Validatable](settings any) (*protocol.SettingsValidationResponse, error) {
	payload, err := json.Marshal(settings)
	if err != nil {
		return nil, fmt.Errorf("cannot encode settings: %w", err)
	}

	raw, err := admitkit.ValidateSettings[T](payload)
	if err != nil {
		return nil, err
	}

	var resp protocol.SettingsValidationResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("cannot decode settings verdict %s: %w", raw, err)
	}
	return &resp, nil
}
