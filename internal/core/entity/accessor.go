package entity

import (
	"github.com/acasal/smartthings2mqtt/pkg/smartthings"
)

// State is the read surface every entity adapter shares: one (device,
// component) view over the latest normalized status snapshot. The snapshot
// is refreshed in place by the owning actor, so a State built once stays
// current.
type State struct {
	device    *smartthings.FullDevice
	component string
}

func NewState(device *smartthings.FullDevice, component string) State {
	return State{device: device, component: component}
}

func (s State) DeviceID() string {
	return s.device.Info.DeviceID
}

func (s State) Component() string {
	return s.component
}

// SupportsCapability reports whether the component carries the capability in
// the current snapshot.
func (s State) SupportsCapability(cap smartthings.Capability) bool {
	return s.device.Status.HasCapability(s.component, cap)
}

// Value returns the raw attribute status. A missing component, capability or
// attribute yields ok=false, never an error.
func (s State) Value(cap smartthings.Capability, attr smartthings.Attribute) (smartthings.Status, bool) {
	return s.device.Status.Attribute(s.component, cap, attr)
}

func (s State) StringValue(cap smartthings.Capability, attr smartthings.Attribute) (string, bool) {
	st, ok := s.Value(cap, attr)
	if !ok {
		return "", false
	}
	return st.String()
}

func (s State) IntValue(cap smartthings.Capability, attr smartthings.Attribute) (int, bool) {
	st, ok := s.Value(cap, attr)
	if !ok {
		return 0, false
	}
	return st.Int()
}

func (s State) FloatValue(cap smartthings.Capability, attr smartthings.Attribute) (float64, bool) {
	st, ok := s.Value(cap, attr)
	if !ok {
		return 0, false
	}
	return st.Float()
}

func (s State) StringListValue(cap smartthings.Capability, attr smartthings.Attribute) ([]string, bool) {
	st, ok := s.Value(cap, attr)
	if !ok {
		return nil, false
	}
	return st.StringList()
}

func (s State) MapValue(cap smartthings.Capability, attr smartthings.Attribute) (map[string]any, bool) {
	st, ok := s.Value(cap, attr)
	if !ok {
		return nil, false
	}
	return st.Map()
}
