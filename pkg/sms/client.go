package sms

import (
	"context"
	"fmt"
	"sort"

	"github.com/arsmn/go-smsir/smsir"

	"github.com/emtaxi/emtaxi_backend/config"
)

// Client provides SMS sending functionality via sms.ir.
type Client struct {
	client     *smsir.Client
	templateID string
	enabled    bool
}

// NewFromConfig creates a new SMS client from the application configuration.
// If SMS is disabled, returns a client that no-ops on all operations.
func NewFromConfig(cfg config.SMSConfig) (*Client, error) {
	if !cfg.Enabled {
		return &Client{enabled: false}, nil
	}

	if cfg.SMSIR.APIKey == "" {
		return nil, fmt.Errorf("sms.ir API key required when SMS enabled")
	}
	if cfg.SMSIR.TemplateID == "" {
		return nil, fmt.Errorf("sms.ir template ID required when SMS enabled")
	}

	client := smsir.NewClient().WithAuthentication(cfg.SMSIR.APIKey, cfg.SMSIR.SecretKey)

	return &Client{
		client:     client,
		templateID: cfg.SMSIR.TemplateID,
		enabled:    true,
	}, nil
}

// SendTemplate sends the configured sms.ir template to mobile, filling the
// template parameters from params. If SMS is disabled, this is a no-op.
//
// Parameter keys must match the placeholders declared in the sms.ir panel,
// e.g. a contact alert template uses "name" and "service".
func (c *Client) SendTemplate(ctx context.Context, mobile string, params map[string]string) error {
	if !c.enabled {
		// No-op when disabled (useful for development)
		return nil
	}

	if mobile == "" {
		return fmt.Errorf("mobile number is required")
	}
	if len(params) == 0 {
		return fmt.Errorf("at least one template parameter is required")
	}

	req := &smsir.UltraFastSendRequest{
		Mobile:     mobile,
		TemplateID: c.templateID,
		Parameters: toParameters(params),
	}

	_, err := c.client.Verification.UltraFastSend(ctx, req)
	if err != nil {
		return fmt.Errorf("sms.ir send failed: %w", err)
	}

	return nil
}

// IsEnabled returns whether SMS sending is enabled.
func (c *Client) IsEnabled() bool {
	return c.enabled
}

func toParameters(params map[string]string) []smsir.UltraFastParameter {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]smsir.UltraFastParameter, 0, len(keys))
	for _, k := range keys {
		out = append(out, smsir.UltraFastParameter{Key: k, Value: params[k]})
	}
	return out
}
