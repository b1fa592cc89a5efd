package smartthings

import (
	"context"
	"fmt"
	"sync"
)

// TestClient is an in-memory Client with canned devices, for tests. Executed
// commands are recorded instead of sent anywhere.
type TestClient struct {
	mu       sync.Mutex
	devices  []DeviceInfo
	statuses map[string]DeviceStatus
	Executed []DeviceCommand
	// CommandErr, when set, is returned by every ExecuteCommand call.
	CommandErr error
}

var _ Client = (*TestClient)(nil)

// NewTestClient returns a client preloaded with a dimmer light, a kitchen
// hood with a named-speed fan, and a fridge with activation switches and a
// disabled component.
func NewTestClient() *TestClient {
	tc := &TestClient{statuses: map[string]DeviceStatus{}}
	tc.AddDevice(TestDimmerDevice(), TestDimmerStatus())
	tc.AddDevice(TestHoodDevice(), TestHoodStatus())
	tc.AddDevice(TestFridgeDevice(), TestFridgeStatus())
	return tc
}

// AddDevice registers a device record with its status snapshot.
func (c *TestClient) AddDevice(info DeviceInfo, status DeviceStatus) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.devices = append(c.devices, info)
	c.statuses[info.DeviceID] = status
}

func (c *TestClient) Devices(ctx context.Context) ([]DeviceInfo, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]DeviceInfo, len(c.devices))
	copy(out, c.devices)
	return out, nil
}

func (c *TestClient) DeviceStatus(ctx context.Context, deviceID string) (DeviceStatus, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	st, ok := c.statuses[deviceID]
	if !ok {
		return nil, fmt.Errorf("unknown device %s", deviceID)
	}
	return st, nil
}

func (c *TestClient) ExecuteCommand(ctx context.Context, cmd DeviceCommand) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.CommandErr != nil {
		return c.CommandErr
	}
	c.Executed = append(c.Executed, cmd)
	return nil
}

// ExecutedCommands returns a copy of the recorded commands.
func (c *TestClient) ExecutedCommands() []DeviceCommand {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]DeviceCommand, len(c.Executed))
	copy(out, c.Executed)
	return out
}

func TestDimmerDevice() DeviceInfo {
	return DeviceInfo{
		DeviceID: "dimmer-1",
		Label:    "Hallway Light",
		Name:     "hue-dimmer",
		Components: []Component{{
			ID: ComponentMain,
			Capabilities: []CapabilityReference{
				{ID: string(CapabilitySwitch), Version: 1},
				{ID: string(CapabilitySwitchLevel), Version: 1},
				{ID: string(CapabilityColorTemperature), Version: 1},
			},
		}},
		OCF: &OCFInfo{ModelNumber: "LWB010", FirmwareVersion: "1.50.2", ManufacturerName: "Signify"},
	}
}

func TestDimmerStatus() DeviceStatus {
	return DeviceStatus{
		ComponentMain: ComponentStatus{
			string(CapabilitySwitch): CapabilityStatus{
				string(AttributeSwitch): {Value: "on"},
			},
			string(CapabilitySwitchLevel): CapabilityStatus{
				string(AttributeLevel): {Value: float64(50), Unit: "%"},
			},
			string(CapabilityColorTemperature): CapabilityStatus{
				string(AttributeColorTemperature): {Value: float64(3000), Unit: "K"},
			},
		},
	}
}

func TestHoodDevice() DeviceInfo {
	return DeviceInfo{
		DeviceID: "hood-1",
		Label:    "Kitchen Hood",
		Name:     "samsung-hood",
		Components: []Component{{
			ID: "hood",
			Capabilities: []CapabilityReference{
				{ID: string(CapabilitySwitch), Version: 1},
				{ID: string(CapabilityHoodFanSpeed), Version: 1},
				{ID: string(CapabilityLamp), Version: 1},
			},
		}},
		OCF: &OCFInfo{ModelNumber: "NK36CB", FirmwareVersion: "02.10.31", ManufacturerName: "Samsung Electronics"},
	}
}

func TestHoodStatus() DeviceStatus {
	return DeviceStatus{
		"hood": ComponentStatus{
			string(CapabilitySwitch): CapabilityStatus{
				string(AttributeSwitch): {Value: "off"},
			},
			string(CapabilityHoodFanSpeed): CapabilityStatus{
				string(AttributeHoodFanSpeed):          {Value: "medium"},
				string(AttributeSupportedHoodFanSpeed): {Value: []any{"off", "low", "medium", "high", "max"}},
			},
			string(CapabilityLamp): CapabilityStatus{
				string(AttributeBrightnessLevel):          {Value: "high"},
				string(AttributeSupportedBrightnessLevel): {Value: []any{"off", "low", "high"}},
			},
		},
	}
}

func TestFridgeDevice() DeviceInfo {
	return DeviceInfo{
		DeviceID: "fridge-1",
		Label:    "Fridge",
		Name:     "samsung-fridge",
		Components: []Component{
			{
				ID: ComponentMain,
				Capabilities: []CapabilityReference{
					{ID: string(CapabilityPowerCool), Version: 1},
					{ID: string(CapabilityPowerFreeze), Version: 1},
					{ID: string(CapabilityWaterFilter), Version: 1},
					{ID: string(CapabilityDisabledComponents), Version: 1},
					{ID: string(CapabilityDisabledCapabilities), Version: 1},
					{ID: string(CapabilityTemperatureMeasurement), Version: 1},
				},
			},
			{
				ID: "icemaker",
				Capabilities: []CapabilityReference{
					{ID: string(CapabilitySwitch), Version: 1},
				},
			},
		},
		OCF: &OCFInfo{ModelNumber: "RF9000", FirmwareVersion: "A-RFWW-1.2", ManufacturerName: "Samsung Electronics"},
	}
}

func TestFridgeStatus() DeviceStatus {
	return DeviceStatus{
		ComponentMain: ComponentStatus{
			string(CapabilityPowerCool): CapabilityStatus{
				string(AttributeActivated): {Value: false},
			},
			string(CapabilityPowerFreeze): CapabilityStatus{
				string(AttributeActivated): {Value: true},
			},
			string(CapabilityWaterFilter): CapabilityStatus{
				string(AttributeWaterFilterStatus): {Value: "normal"},
				string(AttributeWaterFilterUsage):  {Value: float64(42), Unit: "%"},
			},
			string(CapabilityDisabledComponents): CapabilityStatus{
				string(AttributeDisabledComponents): {Value: []any{"icemaker"}},
			},
			string(CapabilityDisabledCapabilities): CapabilityStatus{
				string(AttributeDisabledCapabilities): {Value: []any{}},
			},
			string(CapabilityTemperatureMeasurement): CapabilityStatus{
				string(AttributeTemperature): {Value: float64(3), Unit: "C"},
			},
		},
		"icemaker": ComponentStatus{
			string(CapabilitySwitch): CapabilityStatus{
				string(AttributeSwitch): {Value: "on"},
			},
		},
	}
}
