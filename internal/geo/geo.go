package geo

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Client is a thin passthrough to the geolocation provider. The provider's
// JSON body is forwarded untouched; any failure surfaces as an error the
// handler maps to a generic 500.
type Client struct {
	BaseURL string
	APIKey  string
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{BaseURL: baseURL, APIKey: apiKey}
}

func (c *Client) Lookup() ([]byte, error) {
	if c.APIKey == "" {
		return nil, errors.New("geo api key not configured")
	}
	agent := fiber.Get(c.BaseURL + "?apiKey=" + c.APIKey)
	status, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return nil, errs[0]
	}
	if status != fiber.StatusOK {
		return nil, fmt.Errorf("geo provider returned status %d", status)
	}
	return body, nil
}
