package smartthings

import "encoding/json"

// DeviceInfo is the registry record of a device as returned by the
// /devices listing.
type DeviceInfo struct {
	DeviceID         string      `json:"deviceId"`
	Label            string      `json:"label"`
	Name             string      `json:"name"`
	ManufacturerName string      `json:"manufacturerName"`
	Components       []Component `json:"components"`
	OCF              *OCFInfo    `json:"ocf,omitempty"`
	Viper            *ViperInfo  `json:"viper,omitempty"`
}

type Component struct {
	ID           string                `json:"id"`
	Capabilities []CapabilityReference `json:"capabilities"`
}

type CapabilityReference struct {
	ID      string `json:"id"`
	Version int    `json:"version"`
}

type OCFInfo struct {
	ModelNumber      string `json:"modelNumber"`
	FirmwareVersion  string `json:"firmwareVersion"`
	HwVersion        string `json:"hwVersion"`
	ManufacturerName string `json:"manufacturerName"`
}

type ViperInfo struct {
	ManufacturerName string `json:"manufacturerName"`
	ModelName        string `json:"modelName"`
	HwVersion        string `json:"hwVersion"`
	SwVersion        string `json:"swVersion"`
}

// Manufacturer resolves the best available manufacturer name.
func (d *DeviceInfo) Manufacturer() string {
	if d.OCF != nil && d.OCF.ManufacturerName != "" {
		return d.OCF.ManufacturerName
	}
	if d.Viper != nil && d.Viper.ManufacturerName != "" {
		return d.Viper.ManufacturerName
	}
	return d.ManufacturerName
}

// Model resolves the best available model identifier.
func (d *DeviceInfo) Model() string {
	if d.OCF != nil && d.OCF.ModelNumber != "" {
		return d.OCF.ModelNumber
	}
	if d.Viper != nil && d.Viper.ModelName != "" {
		return d.Viper.ModelName
	}
	return ""
}

// FirmwareVersion resolves the best available firmware version.
func (d *DeviceInfo) FirmwareVersion() string {
	if d.OCF != nil && d.OCF.FirmwareVersion != "" {
		return d.OCF.FirmwareVersion
	}
	if d.Viper != nil && d.Viper.SwVersion != "" {
		return d.Viper.SwVersion
	}
	return ""
}

// DisplayName prefers the user-assigned label over the product name.
func (d *DeviceInfo) DisplayName() string {
	if d.Label != "" {
		return d.Label
	}
	return d.Name
}

// HasCapability reports whether the given component declares the capability
// in the device registry record.
func (d *DeviceInfo) HasCapability(component string, cap Capability) bool {
	for _, c := range d.Components {
		if c.ID != component {
			continue
		}
		for _, ref := range c.Capabilities {
			if ref.ID == string(cap) {
				return true
			}
		}
	}
	return false
}

// FullDevice bundles a registry record with its latest status snapshot.
// Snapshots are mutated in place by event application, so a FullDevice is
// shared by pointer and must only be touched from its owning actor.
type FullDevice struct {
	Info   DeviceInfo
	Status DeviceStatus
}

// DeviceCommand is one command execution against a device component.
type DeviceCommand struct {
	DeviceID   string
	Component  string
	Capability Capability
	Command    Command
	Arguments  []any
}

type commandRequest struct {
	Commands []commandBody `json:"commands"`
}

type commandBody struct {
	Component  string `json:"component"`
	Capability string `json:"capability"`
	Command    string `json:"command"`
	Arguments  []any  `json:"arguments,omitempty"`
}

func (c DeviceCommand) requestBody() ([]byte, error) {
	return json.Marshal(commandRequest{
		Commands: []commandBody{{
			Component:  c.Component,
			Capability: string(c.Capability),
			Command:    string(c.Command),
			Arguments:  c.Arguments,
		}},
	})
}
