package smartthings

import (
	"encoding/json"
)

// Status is a single attribute value with its optional unit.
type Status struct {
	Value any    `json:"value"`
	Unit  string `json:"unit,omitempty"`
}

// CapabilityStatus maps attribute name to its current status. Keys are kept
// in canonical string form so lookups by Attribute constant and by raw
// string resolve to the same entry.
type CapabilityStatus map[string]Status

// ComponentStatus maps capability id to its attribute statuses.
type ComponentStatus map[string]CapabilityStatus

// DeviceStatus maps component id to its capability statuses.
type DeviceStatus map[string]ComponentStatus

// statusEnvelope matches the /devices/{id}/status response shape.
type statusEnvelope struct {
	Components map[string]map[string]map[string]Status `json:"components"`
}

// ParseDeviceStatus decodes a status document, normalizing every key to its
// canonical string form at ingestion.
func ParseDeviceStatus(data []byte) (DeviceStatus, error) {
	var env statusEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}
	ds := make(DeviceStatus, len(env.Components))
	for comp, caps := range env.Components {
		cs := make(ComponentStatus, len(caps))
		for capID, attrs := range caps {
			as := make(CapabilityStatus, len(attrs))
			for attr, st := range attrs {
				as[attr] = st
			}
			cs[capID] = as
		}
		ds[comp] = cs
	}
	return ds, nil
}

// Attribute returns the status of (component, capability, attribute).
func (ds DeviceStatus) Attribute(component string, cap Capability, attr Attribute) (Status, bool) {
	comp, ok := ds[component]
	if !ok {
		return Status{}, false
	}
	attrs, ok := comp[string(cap)]
	if !ok {
		return Status{}, false
	}
	st, ok := attrs[string(attr)]
	return st, ok
}

// HasCapability reports whether the component carries the capability in the
// current snapshot.
func (ds DeviceStatus) HasCapability(component string, cap Capability) bool {
	comp, ok := ds[component]
	if !ok {
		return false
	}
	_, ok = comp[string(cap)]
	return ok
}

// DeviceEvent is one capability event from the vendor cloud. Apply folds it
// into the snapshot in place.
type DeviceEvent struct {
	DeviceID   string
	Component  string
	Capability Capability
	Attribute  Attribute
	Value      any
	Unit       string
}

// Apply mutates the snapshot with the event's value. Components and
// capabilities unseen so far are created, matching how the cloud reports
// attributes for capabilities the initial status omitted.
func (ds DeviceStatus) Apply(ev DeviceEvent) {
	comp, ok := ds[ev.Component]
	if !ok {
		comp = make(ComponentStatus)
		ds[ev.Component] = comp
	}
	attrs, ok := comp[string(ev.Capability)]
	if !ok {
		attrs = make(CapabilityStatus)
		comp[string(ev.Capability)] = attrs
	}
	attrs[string(ev.Attribute)] = Status{Value: ev.Value, Unit: ev.Unit}
}

// String returns the attribute value as a string, when it is one.
func (s Status) String() (string, bool) {
	v, ok := s.Value.(string)
	return v, ok
}

// Float returns the attribute value as a float64. JSON numbers always decode
// to float64, so this covers every numeric attribute.
func (s Status) Float() (float64, bool) {
	switch v := s.Value.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	}
	return 0, false
}

// Int returns the attribute value truncated to int.
func (s Status) Int() (int, bool) {
	f, ok := s.Float()
	if !ok {
		return 0, false
	}
	return int(f), true
}

// StringList returns the attribute value as a list of strings, tolerating
// both []string and the []any that generic JSON decoding produces.
func (s Status) StringList() ([]string, bool) {
	switch v := s.Value.(type) {
	case []string:
		return v, true
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			str, ok := e.(string)
			if !ok {
				return nil, false
			}
			out = append(out, str)
		}
		return out, true
	}
	return nil, false
}

// Map returns the attribute value as a JSON object.
func (s Status) Map() (map[string]any, bool) {
	v, ok := s.Value.(map[string]any)
	return v, ok
}
