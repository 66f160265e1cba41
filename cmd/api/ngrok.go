package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"voice-gpt-skill/pkg/log"
)

const (
	tunnelAttempts = 10
	tunnelInterval = 3 * time.Second
)

var errNoTunnel = errors.New("ngrok has no active tunnels")

// ngrokTunnelsResponse matches the /api/tunnels response from the ngrok local API.
type ngrokTunnelsResponse struct {
	Tunnels []ngrokTunnel `json:"tunnels"`
}

type ngrokTunnel struct {
	PublicURL string `json:"public_url"`
	Proto     string `json:"proto"`
}

// announceEndpoint logs the public HTTPS URL to register as the skill
// endpoint. The platform only calls HTTPS endpoints, so plain HTTP tunnels
// are reported but flagged.
func announceEndpoint(ctx context.Context, l log.Logger, apiBase string) {
	publicURL, proto, err := detectTunnel(ctx, apiBase)
	if err != nil {
		l.Warnf(ctx, "Could not detect ngrok tunnel: %v", err)
		return
	}
	if proto != "https" {
		l.Warnf(ctx, "ngrok tunnel %s is not HTTPS, the skill endpoint must be", publicURL)
	}
	l.Infof(ctx, "Skill endpoint: %s/alexa", publicURL)
}

// detectTunnel polls the ngrok local API until a tunnel shows up, preferring
// HTTPS ones.
func detectTunnel(ctx context.Context, apiBase string) (string, string, error) {
	client := &http.Client{Timeout: 5 * time.Second}

	var lastErr error
	for attempt := 1; attempt <= tunnelAttempts; attempt++ {
		tunnels, err := listTunnels(ctx, client, apiBase+"/api/tunnels")
		switch {
		case err != nil:
			lastErr = err
		case len(tunnels) == 0:
			lastErr = errNoTunnel
		default:
			for _, t := range tunnels {
				if t.Proto == "https" {
					return t.PublicURL, t.Proto, nil
				}
			}
			return tunnels[0].PublicURL, tunnels[0].Proto, nil
		}

		select {
		case <-ctx.Done():
			return "", "", ctx.Err()
		case <-time.After(tunnelInterval):
		}
	}

	return "", "", fmt.Errorf("after %d attempts: %w", tunnelAttempts, lastErr)
}

func listTunnels(ctx context.Context, client *http.Client, url string) ([]ngrokTunnel, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create ngrok API request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ngrok API not reachable: %w", err)
	}
	defer resp.Body.Close()

	var body ngrokTunnelsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode ngrok API response: %w", err)
	}
	return body.Tunnels, nil
}
