package rider

import (
	"fmt"

	"quickcart/internal/pkg/errs"
)

// Availability is the rider's readiness to take orders.
//
//	offline ──> available ──accept──> busy ──delivered──> available
//	   ^            │                   │
//	   └────────────┘                   └─cancelled─> busy (until changed)
type Availability int

const (
	UnknownAvailability Availability = iota
	Available
	Busy
	Offline
)

func getAvailabilityStrings() map[Availability]string {
	return map[Availability]string{
		Available: "available",
		Busy:      "busy",
		Offline:   "offline",
	}
}

// ParseAvailability converts the external value. Unknown values are a
// validation error.
func ParseAvailability(s string) (Availability, error) {
	for a, str := range getAvailabilityStrings() {
		if str == s {
			return a, nil
		}
	}
	return UnknownAvailability, errs.NewValueIsInvalidErrorWithCause(
		"availability",
		fmt.Errorf("%q is not one of available, busy, offline", s),
	)
}

func (a Availability) Validate() error {
	if _, ok := getAvailabilityStrings()[a]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("availability", fmt.Errorf("%d is not a valid availability", a))
	}
	return nil
}

func (a Availability) String() string {
	if str, ok := getAvailabilityStrings()[a]; ok {
		return str
	}
	return "unknown"
}

func (a Availability) CanAcceptOrders() bool {
	return a == Available
}
