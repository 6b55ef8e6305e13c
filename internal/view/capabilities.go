package view

import "strings"

// AdminRole is the role allowed to manage rooms.
const AdminRole = "Admin"

// Capabilities is the per-request view model derived from the user's role.
type Capabilities struct {
	CanDelete bool
}

// CapabilitiesFor computes the capabilities of a role.
func CapabilitiesFor(role string) Capabilities {
	return Capabilities{CanDelete: strings.EqualFold(strings.TrimSpace(role), AdminRole)}
}
