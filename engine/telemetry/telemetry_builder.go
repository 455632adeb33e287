package telemetry

import "net/http"

// HubBuilderOption is a functional option for configuring a Hub.
type HubBuilderOption func(h *hub)

// WithOriginCheck restricts which origins may connect. All origins are accepted by default.
//
// Parameters:
//   - check: returns true if the request's origin is allowed
//
// Returns:
//   - HubBuilderOption: option function to apply
func WithOriginCheck(check func(r *http.Request) bool) HubBuilderOption {
	return func(h *hub) {
		if check != nil {
			h.upgrader.CheckOrigin = check
		}
	}
}
