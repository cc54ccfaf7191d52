// Package plan maps subscription tiers to interaction-limit ceilings.
package plan

import "strings"

// Unlimited is the limit value for tiers without a ceiling. Serialized as
// -1; the widget treats any negative limit as unbounded.
const Unlimited int64 = -1

const defaultPlan = "demo"

var limits = map[string]int64{
	"demo":     100,
	"onetime":  500,
	"basic":    1000,
	"standard": 5000,
	"premium":  Unlimited,
}

// LimitFor returns the interaction ceiling for a plan tier. Unknown or
// missing tiers fall back to the demo limit. Case-insensitive, total.
func LimitFor(name string) int64 {
	if v, ok := limits[strings.ToLower(strings.TrimSpace(name))]; ok {
		return v
	}
	return limits[defaultPlan]
}

// Resolver looks up the plan tier for a client. Implementations return
// "demo" when the client is unknown rather than failing.
type Resolver interface {
	PlanFor(clientID string) string
}
