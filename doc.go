// Package admitkit encodes the wire contract between a sandboxed
// admission policy and the host controller that invokes it. It builds
// the three canonical verdicts (accept, accept-with-mutation, reject),
// dispatches settings validation to policy-defined types, and answers
// the host's protocol negotiation probe.
//
// Usage:
//
//	type Settings struct {
//		AllowedRegistry string `json:"allowed_registry"`
//	}
//
//	func (s *Settings) Validate() error {
//		if s.AllowedRegistry == "" {
//			return errors.New("allowed_registry must be set")
//		}
//		return nil
//	}
//
//	func validate(payload []byte) ([]byte, error) {
//		// inspect the request, then either
//		return admitkit.AcceptRequest()
//		// or
//		return admitkit.RejectRequest(
//			admitkit.WithMessage("registry not allowed"),
//			admitkit.WithCode(403),
//		)
//	}
//
//	func main() {
//		admitkit.RegisterEntryPoints[*Settings](validate)
//	}
//
// Every entry point is a pure function over its inbound payload. Nothing
// is retained between invocations: settings are decoded fresh on each
// call and discarded with the verdict.
package admitkit
