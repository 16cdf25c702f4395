package database

import (
	"fmt"

	"github.com/supabase-community/supabase-go"
)

// SupabaseClient wraps the Supabase REST client used for incident reports
type SupabaseClient struct {
	Client *supabase.Client
	url    string
}

// NewSupabaseClient creates a client for the project URL and anon key
func NewSupabaseClient(url, anonKey string) (*SupabaseClient, error) {
	if url == "" {
		return nil, fmt.Errorf("supabase url is not configured")
	}
	if anonKey == "" {
		return nil, fmt.Errorf("supabase anon key is not configured")
	}

	client, err := supabase.NewClient(url, anonKey, &supabase.ClientOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Supabase client: %w", err)
	}

	return &SupabaseClient{
		Client: client,
		url:    url,
	}, nil
}

// GetClient returns the underlying client
func (sc *SupabaseClient) GetClient() *supabase.Client {
	return sc.Client
}

// HealthCheck only confirms the client was initialized
func (sc *SupabaseClient) HealthCheck() error {
	if sc.Client == nil {
		return fmt.Errorf("supabase client is not initialized")
	}
	return nil
}

// URL project URL the client talks to
func (sc *SupabaseClient) URL() string {
	return sc.url
}
