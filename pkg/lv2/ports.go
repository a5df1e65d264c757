package lv2

import "fmt"

// Role is the logical function of a port index.
type Role int

const (
	RoleNone Role = iota
	RoleAudioInput
	RoleAudioOutput
	RoleEnabled
	RoleReset
	RoleFreeWheel
	RoleLatency
	RoleControl
)

// String returns the role name.
func (r Role) String() string {
	switch r {
	case RoleAudioInput:
		return "audio-in"
	case RoleAudioOutput:
		return "audio-out"
	case RoleEnabled:
		return "enabled"
	case RoleReset:
		return "reset"
	case RoleFreeWheel:
		return "freewheel"
	case RoleLatency:
		return "latency"
	case RoleControl:
		return "control"
	default:
		return "none"
	}
}

// PortTable is the flat port layout of a plugin. Indices are assigned in this
// order: audio inputs, audio outputs, enabled, reset, freewheel (optional),
// latency (optional), then one control per non-bypass parameter.
type PortTable struct {
	Inputs    int
	Outputs   int
	Controls  int
	FreeWheel bool
	Latency   bool
}

// PortEntry is one resolved slot of a PortTable.
type PortEntry struct {
	Index uint32
	Role  Role
	N     int // position within the role, zero based
}

// String implements fmt.Stringer.
func (e PortEntry) String() string {
	return fmt.Sprintf("%d:%s[%d]", e.Index, e.Role, e.N)
}

// Count returns the total number of ports.
func (t PortTable) Count() int {
	n := t.Inputs + t.Outputs + 2 + t.Controls
	if t.FreeWheel {
		n++
	}
	if t.Latency {
		n++
	}
	return n
}

// Lookup resolves a port index to its role and position within that role.
// Indices past the end resolve to RoleNone.
func (t PortTable) Lookup(index uint32) (Role, int) {
	port := int(index)

	if port < t.Inputs {
		return RoleAudioInput, port
	}
	port -= t.Inputs

	if port < t.Outputs {
		return RoleAudioOutput, port
	}
	port -= t.Outputs

	if port == 0 {
		return RoleEnabled, 0
	}
	port--

	if port == 0 {
		return RoleReset, 0
	}
	port--

	if t.FreeWheel {
		if port == 0 {
			return RoleFreeWheel, 0
		}
		port--
	}

	if t.Latency {
		if port == 0 {
			return RoleLatency, 0
		}
		port--
	}

	if port < t.Controls {
		return RoleControl, port
	}
	return RoleNone, 0
}

// Index returns the port index of the n-th port with the given role.
func (t PortTable) Index(role Role, n int) (uint32, bool) {
	for _, e := range t.Entries() {
		if e.Role == role && e.N == n {
			return e.Index, true
		}
	}
	return 0, false
}

// Entries lists every port in index order.
func (t PortTable) Entries() []PortEntry {
	entries := make([]PortEntry, 0, t.Count())
	for i := 0; i < t.Count(); i++ {
		role, n := t.Lookup(uint32(i))
		entries = append(entries, PortEntry{Index: uint32(i), Role: role, N: n})
	}
	return entries
}
