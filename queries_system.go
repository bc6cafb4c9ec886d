package unraid

import (
	"context"
	"encoding/json"
	"fmt"
)

// TestConnection checks whether the server is reachable and answering
// GraphQL queries.
func (c *Client) TestConnection(ctx context.Context) (bool, error) {
	data, err := c.Query(ctx, `query { online }`, nil)
	if err != nil {
		return false, err
	}
	online, _ := data["online"].(bool)
	return online, nil
}

// GetVersion returns the server's Unraid and API version strings.
func (c *Client) GetVersion(ctx context.Context) (Versions, error) {
	const q = `
		query {
			info {
				versions {
					core {
						unraid
						api
					}
				}
			}
		}`
	raw, err := c.Execute(ctx, q, nil)
	if err != nil {
		return Versions{}, err
	}
	var resp struct {
		Info struct {
			Versions struct {
				Core Versions `json:"core"`
			} `json:"versions"`
		} `json:"info"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return Versions{}, fmt.Errorf("unraid: decode versions: %w", err)
	}
	return resp.Info.Versions.Core, nil
}

// GetServerInfo returns the identification data used for device registration:
// hardware identity, OS, CPU, versions, addresses, and license state.
func (c *Client) GetServerInfo(ctx context.Context) (ServerInfo, error) {
	const q = `
		query {
			info {
				system { uuid manufacturer model serial }
				baseboard { manufacturer model serial }
				os { hostname distro release kernel arch }
				cpu { manufacturer brand cores threads }
				versions { core { unraid api } }
			}
			server { lanip localurl remoteurl }
			registration { type state }
		}`
	raw, err := c.Execute(ctx, q, nil)
	if err != nil {
		return ServerInfo{}, err
	}
	var resp struct {
		Info struct {
			System    SystemIdentity `json:"system"`
			Baseboard Baseboard      `json:"baseboard"`
			OS        OSInfo         `json:"os"`
			CPU       CPUInfo        `json:"cpu"`
			Versions  struct {
				Core Versions `json:"core"`
			} `json:"versions"`
		} `json:"info"`
		Server       ServerAddresses `json:"server"`
		Registration Registration    `json:"registration"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return ServerInfo{}, fmt.Errorf("unraid: decode server info: %w", err)
	}
	return ServerInfo{
		System:       resp.Info.System,
		Baseboard:    resp.Info.Baseboard,
		OS:           resp.Info.OS,
		CPU:          resp.Info.CPU,
		Versions:     resp.Info.Versions.Core,
		Server:       resp.Server,
		Registration: resp.Registration,
	}, nil
}

// GetSystemInfo returns the raw "info" object: OS, CPU, memory layout,
// versions, and baseboard details.
func (c *Client) GetSystemInfo(ctx context.Context) (map[string]any, error) {
	const q = `
		query {
			info {
				time
				os { hostname uptime kernel platform distro arch }
				cpu { manufacturer brand cores threads speed }
				memory {
					layout { size bank type clockSpeed manufacturer }
				}
				versions {
					core { unraid api kernel }
					packages { docker openssl node }
				}
				baseboard { manufacturer model memMax memSlots }
			}
		}`
	data, err := c.Query(ctx, q, nil)
	if err != nil {
		return nil, err
	}
	info, _ := data["info"].(map[string]any)
	return info, nil
}

// GetMetrics returns CPU and memory utilization. Integrations typically poll
// this every 30 seconds.
func (c *Client) GetMetrics(ctx context.Context) (Metrics, error) {
	const q = `
		query {
			metrics {
				cpu { percentTotal }
				memory {
					total used free available percentTotal
					swapTotal swapUsed swapFree percentSwapTotal
				}
			}
		}`
	raw, err := c.Execute(ctx, q, nil)
	if err != nil {
		return Metrics{}, err
	}
	var resp struct {
		Metrics Metrics `json:"metrics"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return Metrics{}, fmt.Errorf("unraid: decode metrics: %w", err)
	}
	return resp.Metrics, nil
}

// GetUPSDevices returns the attached UPS devices. Servers without a UPS
// subsystem report an empty list (the API's error for the missing subsystem
// is tolerated as a partial failure).
func (c *Client) GetUPSDevices(ctx context.Context) ([]UPSDevice, error) {
	const q = `
		query {
			upsDevices {
				id
				name
				model
				status
				battery { chargeLevel estimatedRuntime health }
				power { inputVoltage outputVoltage loadPercentage }
			}
		}`
	raw, err := c.Execute(ctx, q, nil)
	if err != nil {
		return nil, err
	}
	var resp struct {
		UPSDevices []UPSDevice `json:"upsDevices"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("unraid: decode UPS devices: %w", err)
	}
	return resp.UPSDevices, nil
}
