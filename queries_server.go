package unraid

import (
	"context"
	"encoding/json"
	"fmt"
)

// GetRegistration returns the server's license registration.
func (c *Client) GetRegistration(ctx context.Context) (Registration, error) {
	const q = `
		query {
			registration {
				id
				type
				state
				expiration
				updateExpiration
			}
		}`
	raw, err := c.Execute(ctx, q, nil)
	if err != nil {
		return Registration{}, err
	}
	var resp struct {
		Registration Registration `json:"registration"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return Registration{}, fmt.Errorf("unraid: decode registration: %w", err)
	}
	return resp.Registration, nil
}

// GetVars returns the unified system configuration from var.ini: hostname,
// timezone, array state, share counts, and related settings.
func (c *Client) GetVars(ctx context.Context) (Vars, error) {
	const q = `
		query {
			vars {
				id
				version
				name
				timeZone
				comment
				security
				workgroup
				domain
				sysModel
				useSsl
				port
				portssl
				localTld
				deviceCount
				maxArraysz
				spindownDelay
				safeMode
				startArray
				configValid
				configError
				regTy
				regState
				regTo
				flashGuid
				flashProduct
				flashVendor
				mdState
				mdNumDisks
				mdNumDisabled
				mdNumInvalid
				mdNumMissing
				mdResync
				shareCount
				shareSmbCount
				shareNfsCount
				fsState
				fsNumMounted
			}
		}`
	raw, err := c.Execute(ctx, q, nil)
	if err != nil {
		return Vars{}, err
	}
	var resp struct {
		Vars Vars `json:"vars"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return Vars{}, fmt.Errorf("unraid: decode vars: %w", err)
	}
	return resp.Vars, nil
}

// GetServices returns system service status.
func (c *Client) GetServices(ctx context.Context) ([]Service, error) {
	const q = `
		query {
			services {
				id
				name
				online
				uptime { timestamp }
				version
			}
		}`
	raw, err := c.Execute(ctx, q, nil)
	if err != nil {
		return nil, err
	}
	var resp struct {
		Services []Service `json:"services"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("unraid: decode services: %w", err)
	}
	return resp.Services, nil
}

// GetFlash returns the boot flash device.
func (c *Client) GetFlash(ctx context.Context) (Flash, error) {
	const q = `
		query {
			flash {
				id
				vendor
				product
			}
		}`
	raw, err := c.Execute(ctx, q, nil)
	if err != nil {
		return Flash{}, err
	}
	var resp struct {
		Flash Flash `json:"flash"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return Flash{}, fmt.Errorf("unraid: decode flash: %w", err)
	}
	return resp.Flash, nil
}

// GetOwner returns the server owner account. Only the username is requested:
// avatar and url are non-nullable fields the API errors on unless the server
// is signed into Unraid Connect.
func (c *Client) GetOwner(ctx context.Context) (Owner, error) {
	const q = `
		query {
			owner {
				username
			}
		}`
	raw, err := c.Execute(ctx, q, nil)
	if err != nil {
		return Owner{}, err
	}
	var resp struct {
		Owner Owner `json:"owner"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return Owner{}, fmt.Errorf("unraid: decode owner: %w", err)
	}
	return resp.Owner, nil
}

// GetPlugins returns the installed API plugins.
func (c *Client) GetPlugins(ctx context.Context) ([]Plugin, error) {
	const q = `
		query {
			plugins {
				name
				version
				hasApiModule
				hasCliModule
			}
		}`
	raw, err := c.Execute(ctx, q, nil)
	if err != nil {
		return nil, err
	}
	var resp struct {
		Plugins []Plugin `json:"plugins"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("unraid: decode plugins: %w", err)
	}
	return resp.Plugins, nil
}

// GetLogFiles lists the server's log files.
func (c *Client) GetLogFiles(ctx context.Context) ([]LogFile, error) {
	const q = `
		query {
			logFiles {
				name
				path
				size
				modifiedAt
			}
		}`
	raw, err := c.Execute(ctx, q, nil)
	if err != nil {
		return nil, err
	}
	var resp struct {
		LogFiles []LogFile `json:"logFiles"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("unraid: decode log files: %w", err)
	}
	return resp.LogFiles, nil
}

// GetLogFile returns the contents of one log file. lines <= 0 requests the
// server default.
func (c *Client) GetLogFile(ctx context.Context, path string, lines int) (LogFileContent, error) {
	const q = `
		query GetLogFile($path: String!, $lines: Int) {
			logFile(path: $path, lines: $lines) {
				path
				content
				totalLines
				startLine
			}
		}`
	vars := map[string]any{"path": path}
	if lines > 0 {
		vars["lines"] = lines
	}
	raw, err := c.Execute(ctx, q, vars)
	if err != nil {
		return LogFileContent{}, err
	}
	var resp struct {
		LogFile LogFileContent `json:"logFile"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return LogFileContent{}, fmt.Errorf("unraid: decode log file: %w", err)
	}
	return resp.LogFile, nil
}

// GetCloud returns cloud connectivity diagnostics for Unraid Connect.
func (c *Client) GetCloud(ctx context.Context) (map[string]any, error) {
	const q = `
		query {
			cloud {
				error
				apiKey { valid error }
				relay { status timeout error }
				minigraphql { status timeout error }
				cloud { status ip error }
				allowedOrigins
			}
		}`
	data, err := c.Query(ctx, q, nil)
	if err != nil {
		return nil, err
	}
	cloud, _ := data["cloud"].(map[string]any)
	return cloud, nil
}

// GetConnect returns the Unraid Connect state.
func (c *Client) GetConnect(ctx context.Context) (map[string]any, error) {
	const q = `
		query {
			connect {
				id
				dynamicRemoteAccess {
					enabledType
					runningType
					error
				}
			}
		}`
	data, err := c.Query(ctx, q, nil)
	if err != nil {
		return nil, err
	}
	connect, _ := data["connect"].(map[string]any)
	return connect, nil
}

// GetRemoteAccess returns the remote access configuration.
func (c *Client) GetRemoteAccess(ctx context.Context) (map[string]any, error) {
	const q = `
		query {
			remoteAccess {
				accessType
				forwardType
				port
			}
		}`
	data, err := c.Query(ctx, q, nil)
	if err != nil {
		return nil, err
	}
	remote, _ := data["remoteAccess"].(map[string]any)
	return remote, nil
}
