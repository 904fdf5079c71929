// Package weather supplies the current-conditions snapshot captured into a
// diary entry at creation time. The diary core treats the snapshot as opaque
// text; this package only defines the collaborator boundary and two
// implementations.
package weather

import (
	"context"
	"fmt"
)

// Conditions is the weather collaborator's answer.
type Conditions struct {
	Temperature int    // degrees Celsius
	Description string // free text, e.g. "partly cloudy"
}

// String renders the snapshot the way entries store it, e.g. "22°C sunny".
func (c Conditions) String() string {
	return fmt.Sprintf("%d°C %s", c.Temperature, c.Description)
}

// Provider returns the current weather conditions. Implementations must
// honor context cancellation; callers tolerate failures and create the
// entry without a snapshot.
type Provider interface {
	Current(ctx context.Context) (Conditions, error)
}
