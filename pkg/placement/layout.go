package placement

import (
	"errors"
	"fmt"

	"github.com/braunma/rackplanner/pkg/models"
)

// CheckLayout verifies every invariant of a layout: field rules, unique device type
// slugs, resolvable device references, bounds, and the absence of collisions.
// It returns nil for a valid layout, otherwise one joined error listing every violation.
func CheckLayout(l models.Layout) error {
	var errs []error

	if err := models.ValidateLayout(l); err != nil {
		errs = append(errs, err)
	}

	seen := make(map[string]bool, len(l.DeviceTypes))
	for _, dt := range l.DeviceTypes {
		if seen[dt.Slug] {
			errs = append(errs, fmt.Errorf("duplicate device type slug %s", dt.Slug))
		}
		seen[dt.Slug] = true
	}

	resolved := models.ResolveAll(l.DeviceTypes)
	for i, d := range l.Rack.Devices {
		// Each device only needs checking against the devices before it.
		prior := l.Rack
		prior.Devices = l.Rack.Devices[:i]

		out := check(prior, resolved, CandidateFor(d), NoExclude)
		if out.Result != Valid {
			errs = append(errs, fmt.Errorf("device %d (%s) is %s: %s", i, d.Label(), out.Result, out.Reason))
		}
	}

	return errors.Join(errs...)
}
