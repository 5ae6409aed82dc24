// Package supabase connects to a Supabase project's PostgREST endpoint
// (<project-url>/rest/v1) through postgrest-go.
package supabase

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/supabase-community/postgrest-go"
)

const (
	restPath = "/rest/v1"
	schema   = "public"
)

// NewRESTClient returns a PostgREST client authenticated with the project API key.
// The key is sent both as apikey and as the bearer token, as Supabase expects.
func NewRESTClient(projectURL, apiKey string) (*postgrest.Client, error) {
	if projectURL == "" {
		return nil, errors.New("supabase: project url is required")
	}
	if apiKey == "" {
		return nil, errors.New("supabase: api key is required")
	}

	restURL, err := RESTURL(projectURL)
	if err != nil {
		return nil, err
	}

	client := postgrest.NewClient(restURL, schema, map[string]string{
		"apikey":        apiKey,
		"Authorization": "Bearer " + apiKey,
	})
	if client.ClientError != nil {
		return nil, fmt.Errorf("supabase: failed to create client: %w", client.ClientError)
	}

	return client, nil
}

// RESTURL derives the PostgREST base URL from a project URL
func RESTURL(projectURL string) (string, error) {
	u, err := url.Parse(strings.TrimRight(projectURL, "/"))
	if err != nil {
		return "", fmt.Errorf("supabase: invalid project url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("supabase: invalid project url %q", projectURL)
	}

	return u.String() + restPath, nil
}
