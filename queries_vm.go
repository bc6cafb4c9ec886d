package unraid

import (
	"context"
	"encoding/json"
	"fmt"
)

// GetVMs returns all virtual machine domains.
func (c *Client) GetVMs(ctx context.Context) ([]VMDomain, error) {
	const q = `
		query {
			vms {
				domains {
					id
					name
					state
				}
			}
		}`
	raw, err := c.Execute(ctx, q, nil)
	if err != nil {
		return nil, err
	}
	var resp struct {
		VMs struct {
			Domains []VMDomain `json:"domains"`
		} `json:"vms"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("unraid: decode VMs: %w", err)
	}
	return resp.VMs.Domains, nil
}

// StartVM starts a virtual machine.
func (c *Client) StartVM(ctx context.Context, vmID string) (map[string]any, error) {
	const m = `
		mutation StartVM($id: PrefixedID!) {
			vm {
				start(id: $id)
			}
		}`
	return c.Mutate(ctx, m, map[string]any{"id": vmID})
}

// StopVM gracefully shuts down a virtual machine.
func (c *Client) StopVM(ctx context.Context, vmID string) (map[string]any, error) {
	const m = `
		mutation StopVM($id: PrefixedID!) {
			vm {
				stop(id: $id)
			}
		}`
	return c.Mutate(ctx, m, map[string]any{"id": vmID})
}

// ForceStopVM powers a virtual machine off without guest cooperation.
func (c *Client) ForceStopVM(ctx context.Context, vmID string) (map[string]any, error) {
	const m = `
		mutation ForceStopVM($id: PrefixedID!) {
			vm {
				forceStop(id: $id)
			}
		}`
	return c.Mutate(ctx, m, map[string]any{"id": vmID})
}

// PauseVM pauses a running virtual machine.
func (c *Client) PauseVM(ctx context.Context, vmID string) (map[string]any, error) {
	const m = `
		mutation PauseVM($id: PrefixedID!) {
			vm {
				pause(id: $id)
			}
		}`
	return c.Mutate(ctx, m, map[string]any{"id": vmID})
}

// ResumeVM resumes a paused virtual machine.
func (c *Client) ResumeVM(ctx context.Context, vmID string) (map[string]any, error) {
	const m = `
		mutation ResumeVM($id: PrefixedID!) {
			vm {
				resume(id: $id)
			}
		}`
	return c.Mutate(ctx, m, map[string]any{"id": vmID})
}

// RebootVM requests a guest-cooperative reboot.
func (c *Client) RebootVM(ctx context.Context, vmID string) (map[string]any, error) {
	const m = `
		mutation RebootVM($id: PrefixedID!) {
			vm {
				reboot(id: $id)
			}
		}`
	return c.Mutate(ctx, m, map[string]any{"id": vmID})
}

// ResetVM hard-resets a virtual machine.
func (c *Client) ResetVM(ctx context.Context, vmID string) (map[string]any, error) {
	const m = `
		mutation ResetVM($id: PrefixedID!) {
			vm {
				reset(id: $id)
			}
		}`
	return c.Mutate(ctx, m, map[string]any{"id": vmID})
}
