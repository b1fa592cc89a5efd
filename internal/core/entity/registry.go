package entity

import (
	"sort"

	"github.com/acasal/smartthings2mqtt/internal/core/domain"
	"github.com/acasal/smartthings2mqtt/pkg/smartthings"
)

// Registry is the full entity set mapped from the device fleet: every
// (device, component, mapping-table row) tuple that matched. Devices lacking
// a capability are skipped silently.
type Registry struct {
	entities []Entity
	byId     map[string]Entity

	Sensors       []*Sensor
	BinarySensors []*BinarySensor
	Switches      []*Switch
	Lights        []*Light
	Fans          []*Fan
	Numbers       []*Number
	Buttons       []*Button
}

// BuildRegistry enumerates devices × components × mapping tables and
// instantiates an adapter for each eligible tuple.
func BuildRegistry(bridgeID string, devices []*smartthings.FullDevice) *Registry {
	r := &Registry{byId: map[string]Entity{}}
	for _, device := range devices {
		haDevice := HADevice(device.Info, bridgeID)
		for _, component := range componentsOf(device) {
			for _, e := range switchesFor(device, component, haDevice) {
				r.Switches = append(r.Switches, e)
				r.add(e)
			}
			for _, e := range lightsFor(device, component, haDevice) {
				r.Lights = append(r.Lights, e)
				r.add(e)
			}
			for _, e := range fansFor(device, component, haDevice) {
				r.Fans = append(r.Fans, e)
				r.add(e)
			}
			for _, e := range sensorsFor(device, component, haDevice) {
				r.Sensors = append(r.Sensors, e)
				r.add(e)
			}
			for _, e := range binarySensorsFor(device, component, haDevice) {
				r.BinarySensors = append(r.BinarySensors, e)
				r.add(e)
			}
			for _, e := range numbersFor(device, component, haDevice) {
				r.Numbers = append(r.Numbers, e)
				r.add(e)
			}
			for _, e := range buttonsFor(device, component, haDevice) {
				r.Buttons = append(r.Buttons, e)
				r.add(e)
			}
		}
	}
	return r
}

func componentsOf(device *smartthings.FullDevice) []string {
	components := make([]string, 0, len(device.Status))
	for c := range device.Status {
		components = append(components, c)
	}
	sort.Strings(components)
	return components
}

func (r *Registry) add(e Entity) {
	r.entities = append(r.entities, e)
	r.byId[e.UniqueId()] = e
}

func (r *Registry) Entities() []Entity {
	return r.entities
}

func (r *Registry) ById(id string) (Entity, bool) {
	e, ok := r.byId[id]
	return e, ok
}

// Commands routes a parsed entity command to its target entity and returns
// the gated vendor commands, if any.
func (r *Registry) Commands(req domain.EntityCommandRequest) []*smartthings.DeviceCommand {
	e, ok := r.byId[req.TargetEntityId()]
	if !ok {
		return nil
	}
	c, ok := e.(Commandable)
	if !ok {
		return nil
	}
	return c.Commands(req)
}

// Discovery bundles the registry into a discovery publication request.
func (r *Registry) Discovery() domain.PublishDiscoveryRequest {
	req := domain.PublishDiscoveryRequest{}
	for _, e := range r.Sensors {
		req.Sensors = append(req.Sensors, e.Describe())
	}
	for _, e := range r.BinarySensors {
		req.BinarySensors = append(req.BinarySensors, e.Describe())
	}
	for _, e := range r.Switches {
		req.Switches = append(req.Switches, e.Describe())
	}
	for _, e := range r.Lights {
		req.Lights = append(req.Lights, e.Describe())
	}
	for _, e := range r.Fans {
		req.Fans = append(req.Fans, e.Describe())
	}
	for _, e := range r.Numbers {
		req.InputNumbers = append(req.InputNumbers, e.Describe())
	}
	for _, e := range r.Buttons {
		req.Buttons = append(req.Buttons, e.Describe())
	}
	return req
}
