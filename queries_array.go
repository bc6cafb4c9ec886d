package unraid

import (
	"context"
	"encoding/json"
	"fmt"
)

// GetArrayStatus returns the full array state: capacity, parity check status,
// and every disk group. The array endpoint does not wake sleeping disks, so
// this is safe for periodic polling; standby disks report a nil Temp.
func (c *Client) GetArrayStatus(ctx context.Context) (Array, error) {
	const q = `
		query {
			array {
				state
				capacity {
					kilobytes { free used total }
				}
				parityCheckStatus {
					status
					progress
					running
					paused
					errors
					speed
				}
				boot {
					id name device size temp type
					fsSize fsUsed fsFree fsType
				}
				parities {
					id idx name device size status type temp
					isSpinning
				}
				disks {
					id idx name device size status type temp
					fsSize fsFree fsUsed fsType
					isSpinning
				}
				caches {
					id idx name device size status type temp
					fsSize fsFree fsUsed fsType
					isSpinning
				}
			}
		}`
	raw, err := c.Execute(ctx, q, nil)
	if err != nil {
		return Array{}, err
	}
	var resp struct {
		Array Array `json:"array"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return Array{}, fmt.Errorf("unraid: decode array status: %w", err)
	}
	return resp.Array, nil
}

// GetArrayDisks returns disk information without array state or capacity,
// again without waking sleeping disks.
func (c *Client) GetArrayDisks(ctx context.Context) (ArrayDisks, error) {
	const q = `
		query {
			array {
				boot {
					id name device size status type temp
					fsSize fsUsed fsFree fsType
				}
				disks {
					id idx name device size status type temp
					fsSize fsUsed fsFree fsType isSpinning
				}
				parities {
					id idx name device size status type temp isSpinning
				}
				caches {
					id idx name device size status type temp
					fsSize fsUsed fsFree fsType isSpinning
				}
			}
		}`
	raw, err := c.Execute(ctx, q, nil)
	if err != nil {
		return ArrayDisks{}, err
	}
	var resp struct {
		Array ArrayDisks `json:"array"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return ArrayDisks{}, fmt.Errorf("unraid: decode array disks: %w", err)
	}
	return resp.Array, nil
}

// GetPhysicalDisks returns every physical disk attached to the server.
//
// This query wakes sleeping disks. Use GetArrayDisks for periodic polling;
// it reads the same hardware through the array endpoint without forcing a
// spin-up. includeSmart adds the SMART status field, which can itself cause
// a wake on some controllers.
func (c *Client) GetPhysicalDisks(ctx context.Context, includeSmart bool) ([]PhysicalDisk, error) {
	smartField := ""
	if includeSmart {
		smartField = "smartStatus"
	}
	q := fmt.Sprintf(`
		query {
			disks {
				id
				device
				name
				vendor
				size
				type
				interfaceType
				temperature
				isSpinning
				%s
			}
		}`, smartField)
	raw, err := c.Execute(ctx, q, nil)
	if err != nil {
		return nil, err
	}
	var resp struct {
		Disks []PhysicalDisk `json:"disks"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("unraid: decode physical disks: %w", err)
	}
	return resp.Disks, nil
}

// StartArray starts the array. Disruptive: mounts every disk and launches
// autostart containers and VMs.
func (c *Client) StartArray(ctx context.Context) (map[string]any, error) {
	const m = `
		mutation StartArray {
			array {
				setState(input: { desiredState: START }) {
					id
					state
				}
			}
		}`
	return c.Mutate(ctx, m, nil)
}

// StopArray stops the array. Destructive: everything using array storage
// loses it.
func (c *Client) StopArray(ctx context.Context) (map[string]any, error) {
	const m = `
		mutation StopArray {
			array {
				setState(input: { desiredState: STOP }) {
					id
					state
				}
			}
		}`
	return c.Mutate(ctx, m, nil)
}

// StartParityCheck starts a parity check. With correct set, mismatches are
// written back to parity instead of only counted.
func (c *Client) StartParityCheck(ctx context.Context, correct bool) (map[string]any, error) {
	const m = `
		mutation StartParityCheck($correct: Boolean!) {
			parityCheck {
				start(correct: $correct)
			}
		}`
	return c.Mutate(ctx, m, map[string]any{"correct": correct})
}

// PauseParityCheck pauses a running parity check.
func (c *Client) PauseParityCheck(ctx context.Context) (map[string]any, error) {
	const m = `
		mutation PauseParityCheck {
			parityCheck {
				pause
			}
		}`
	return c.Mutate(ctx, m, nil)
}

// ResumeParityCheck resumes a paused parity check.
func (c *Client) ResumeParityCheck(ctx context.Context) (map[string]any, error) {
	const m = `
		mutation ResumeParityCheck {
			parityCheck {
				resume
			}
		}`
	return c.Mutate(ctx, m, nil)
}

// CancelParityCheck cancels a running parity check.
func (c *Client) CancelParityCheck(ctx context.Context) (map[string]any, error) {
	const m = `
		mutation CancelParityCheck {
			parityCheck {
				cancel
			}
		}`
	return c.Mutate(ctx, m, nil)
}

// GetParityHistory returns past parity check runs.
func (c *Client) GetParityHistory(ctx context.Context) ([]ParityCheckRun, error) {
	const q = `
		query {
			parityHistory {
				date
				duration
				speed
				status
				errors
			}
		}`
	raw, err := c.Execute(ctx, q, nil)
	if err != nil {
		return nil, err
	}
	var resp struct {
		ParityHistory []ParityCheckRun `json:"parityHistory"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("unraid: decode parity history: %w", err)
	}
	return resp.ParityHistory, nil
}

// SpinUpDisk spins up (mounts) an array disk, e.g. "disk:1".
func (c *Client) SpinUpDisk(ctx context.Context, diskID string) (map[string]any, error) {
	const m = `
		mutation SpinUpDisk($id: PrefixedID!) {
			array {
				mountArrayDisk(id: $id) {
					id
					isSpinning
				}
			}
		}`
	return c.Mutate(ctx, m, map[string]any{"id": diskID})
}

// SpinDownDisk spins down (unmounts) an array disk.
func (c *Client) SpinDownDisk(ctx context.Context, diskID string) (map[string]any, error) {
	const m = `
		mutation SpinDownDisk($id: PrefixedID!) {
			array {
				unmountArrayDisk(id: $id) {
					id
					isSpinning
				}
			}
		}`
	return c.Mutate(ctx, m, map[string]any{"id": diskID})
}

// AddArrayDisk adds a disk to the array.
func (c *Client) AddArrayDisk(ctx context.Context, diskID string) (map[string]any, error) {
	const m = `
		mutation AddArrayDisk($id: PrefixedID!) {
			array {
				addDisk(id: $id) {
					id
					name
					status
				}
			}
		}`
	return c.Mutate(ctx, m, map[string]any{"id": diskID})
}

// RemoveArrayDisk removes a disk from the array.
func (c *Client) RemoveArrayDisk(ctx context.Context, diskID string) (map[string]any, error) {
	const m = `
		mutation RemoveArrayDisk($id: PrefixedID!) {
			array {
				removeDisk(id: $id) {
					id
					name
					status
				}
			}
		}`
	return c.Mutate(ctx, m, map[string]any{"id": diskID})
}

// ClearDiskStats clears read/write/error counters for an array disk.
func (c *Client) ClearDiskStats(ctx context.Context, diskID string) (map[string]any, error) {
	const m = `
		mutation ClearDiskStats($id: PrefixedID!) {
			array {
				clearStatistics(id: $id) {
					id
					name
				}
			}
		}`
	return c.Mutate(ctx, m, map[string]any{"id": diskID})
}
