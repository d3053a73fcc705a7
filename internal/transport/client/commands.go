package client

import (
	"context"
	"fmt"
	"strings"
)

// Commands provides command-line operations for the client
type Commands struct {
	client *Client
}

// NewCommands creates a new Commands instance
func NewCommands(client *Client) *Commands {
	return &Commands{
		client: client,
	}
}

// Shorten creates a short URL and displays the result
func (c *Commands) Shorten(ctx context.Context, longURL string) error {
	result, err := c.client.Shorten(ctx, longURL)
	if err != nil {
		return err
	}

	fmt.Printf("%s\n", result.Message)
	fmt.Printf("Short Code: %s\n", result.ShortURL)

	return nil
}

// Resolve displays the long URL behind a short code
func (c *Commands) Resolve(ctx context.Context, shortCode string) error {
	longURL, err := c.client.Resolve(ctx, shortCode)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			fmt.Printf("Short code '%s' not found\n", shortCode)
			return nil
		}
		return err
	}

	fmt.Printf("%s -> %s\n", shortCode, longURL)
	return nil
}

// Clicks displays the click count for a short code
func (c *Commands) Clicks(ctx context.Context, shortCode string) error {
	result, err := c.client.Clicks(ctx, shortCode)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			fmt.Printf("Short code '%s' not found\n", shortCode)
			return nil
		}
		return err
	}

	fmt.Printf("Clicks for %s: %d\n", shortCode, result.TotalClicks)
	return nil
}

// TotalClicks displays the click count across all short URLs
func (c *Commands) TotalClicks(ctx context.Context) error {
	result, err := c.client.TotalClicks(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Total clicks: %d\n", result.TotalClicks)
	return nil
}
