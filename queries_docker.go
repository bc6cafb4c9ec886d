package unraid

import (
	"context"
	"encoding/json"
	"fmt"
)

// GetContainers returns all Docker containers. Only fields stable across API
// versions are requested.
func (c *Client) GetContainers(ctx context.Context) ([]DockerContainer, error) {
	const q = `
		query {
			docker {
				containers {
					id
					names
					image
					imageId
					state
					status
					autoStart
					command
					created
					ports { ip privatePort publicPort type }
				}
			}
		}`
	raw, err := c.Execute(ctx, q, nil)
	if err != nil {
		return nil, err
	}
	var resp struct {
		Docker struct {
			Containers []DockerContainer `json:"containers"`
		} `json:"docker"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("unraid: decode containers: %w", err)
	}
	return resp.Docker.Containers, nil
}

// StartContainer starts a Docker container.
func (c *Client) StartContainer(ctx context.Context, containerID string) (map[string]any, error) {
	const m = `
		mutation StartContainer($id: PrefixedID!) {
			docker {
				start(id: $id) {
					id
					state
					status
				}
			}
		}`
	return c.Mutate(ctx, m, map[string]any{"id": containerID})
}

// StopContainer stops a Docker container.
func (c *Client) StopContainer(ctx context.Context, containerID string) (map[string]any, error) {
	const m = `
		mutation StopContainer($id: PrefixedID!) {
			docker {
				stop(id: $id) {
					id
					state
					status
				}
			}
		}`
	return c.Mutate(ctx, m, map[string]any{"id": containerID})
}

// PauseContainer suspends a running container.
func (c *Client) PauseContainer(ctx context.Context, containerID string) (map[string]any, error) {
	const m = `
		mutation PauseContainer($id: PrefixedID!) {
			docker {
				pause(id: $id) {
					id
					state
					status
				}
			}
		}`
	return c.Mutate(ctx, m, map[string]any{"id": containerID})
}

// UnpauseContainer resumes a paused container.
func (c *Client) UnpauseContainer(ctx context.Context, containerID string) (map[string]any, error) {
	const m = `
		mutation UnpauseContainer($id: PrefixedID!) {
			docker {
				unpause(id: $id) {
					id
					state
					status
				}
			}
		}`
	return c.Mutate(ctx, m, map[string]any{"id": containerID})
}

// UpdateContainer pulls the latest image and recreates the container.
func (c *Client) UpdateContainer(ctx context.Context, containerID string) (map[string]any, error) {
	const m = `
		mutation UpdateContainer($id: PrefixedID!) {
			docker {
				updateContainer(id: $id) {
					id
					names
					image
					state
				}
			}
		}`
	return c.Mutate(ctx, m, map[string]any{"id": containerID})
}

// RemoveContainer removes a container, optionally deleting its image too.
func (c *Client) RemoveContainer(ctx context.Context, containerID string, withImage bool) (map[string]any, error) {
	const m = `
		mutation RemoveContainer($id: PrefixedID!, $withImage: Boolean!) {
			docker {
				removeContainer(id: $id, withImage: $withImage)
			}
		}`
	return c.Mutate(ctx, m, map[string]any{"id": containerID, "withImage": withImage})
}

// GetDockerNetworks returns the Docker networks configured on the server.
func (c *Client) GetDockerNetworks(ctx context.Context) ([]DockerNetwork, error) {
	const q = `
		query {
			docker {
				networks {
					id
					name
					created
					scope
					driver
					enableIPv6
					internal
					attachable
					ingress
					configOnly
				}
			}
		}`
	raw, err := c.Execute(ctx, q, nil)
	if err != nil {
		return nil, err
	}
	var resp struct {
		Docker struct {
			Networks []DockerNetwork `json:"networks"`
		} `json:"docker"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("unraid: decode docker networks: %w", err)
	}
	return resp.Docker.Networks, nil
}
