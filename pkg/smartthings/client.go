package smartthings

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const DefaultAPIURL = "https://api.smartthings.com/v1"

// Client is the cloud surface the bridge needs: device enumeration, status
// snapshots and command execution. Event delivery is modeled as repeated
// DeviceStatus refreshes; a push-capable implementation can satisfy the same
// interface.
type Client interface {
	Devices(ctx context.Context) ([]DeviceInfo, error)
	DeviceStatus(ctx context.Context, deviceID string) (DeviceStatus, error)
	ExecuteCommand(ctx context.Context, cmd DeviceCommand) error
}

// RestClient talks to the SmartThings REST API with a bearer token.
type RestClient struct {
	baseURL string
	token   string
	http    *http.Client
	logger  *zap.Logger
}

var _ Client = (*RestClient)(nil)

func NewRestClient(baseURL, token string, timeout time.Duration, logger *zap.Logger) *RestClient {
	if baseURL == "" {
		baseURL = DefaultAPIURL
	}
	return &RestClient{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: timeout},
		logger:  logger.With(zap.String("component", "st_client")),
	}
}

type deviceListPage struct {
	Items []DeviceInfo `json:"items"`
	Links struct {
		Next *struct {
			Href string `json:"href"`
		} `json:"next"`
	} `json:"_links"`
}

func (c *RestClient) Devices(ctx context.Context) ([]DeviceInfo, error) {
	var devices []DeviceInfo
	url := c.baseURL + "/devices"
	for url != "" {
		body, err := c.get(ctx, url)
		if err != nil {
			return nil, fmt.Errorf("list devices: %w", err)
		}
		var page deviceListPage
		if err := json.Unmarshal(body, &page); err != nil {
			return nil, fmt.Errorf("list devices: %w", err)
		}
		devices = append(devices, page.Items...)
		url = ""
		if page.Links.Next != nil {
			url = page.Links.Next.Href
		}
	}
	c.logger.Debug("device list fetched", zap.Int("count", len(devices)))
	return devices, nil
}

func (c *RestClient) DeviceStatus(ctx context.Context, deviceID string) (DeviceStatus, error) {
	body, err := c.get(ctx, fmt.Sprintf("%s/devices/%s/status", c.baseURL, deviceID))
	if err != nil {
		return nil, fmt.Errorf("device status %s: %w", deviceID, err)
	}
	ds, err := ParseDeviceStatus(body)
	if err != nil {
		return nil, fmt.Errorf("device status %s: %w", deviceID, err)
	}
	return ds, nil
}

func (c *RestClient) ExecuteCommand(ctx context.Context, cmd DeviceCommand) error {
	payload, err := cmd.requestBody()
	if err != nil {
		return fmt.Errorf("execute command: %w", err)
	}
	url := fmt.Sprintf("%s/devices/%s/commands", c.baseURL, cmd.DeviceID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("execute command: %w", err)
	}
	c.decorate(req)
	req.Header.Set("Content-Type", "application/json")

	c.logger.Debug("execute command",
		zap.String("device", cmd.DeviceID),
		zap.String("component", cmd.Component),
		zap.String("capability", string(cmd.Capability)),
		zap.String("command", string(cmd.Command)))

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute command: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	return commandErrorFromResponse(resp)
}

func commandErrorFromResponse(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 16*1024))
	var cmdErr CommandError
	if err := json.Unmarshal(body, &cmdErr); err == nil && cmdErr.Detail.Code != "" {
		return &cmdErr
	}
	return &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
}

func (c *RestClient) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	c.decorate(req)
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 16*1024))
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	return io.ReadAll(resp.Body)
}

func (c *RestClient) decorate(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-ST-CORRELATION", uuid.NewString())
}
