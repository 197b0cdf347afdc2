// Package openapipkg prepares OpenAPI documents with environment-derived
// server URLs.
package openapipkg

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/finmock/finmock/pkg/configpkg"
)

// Server is one entry of the OpenAPI servers list.
type Server struct {
	URL         string `json:"url"`
	Description string `json:"description"`
}

// Generate parses the raw YAML document and rewrites its servers and info
// blocks from the runtime configuration.
func Generate(raw []byte, config configpkg.Config) (map[string]any, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parsing openapi document: %w", err)
	}

	servers := ServerURLs(config)
	list := make([]any, 0, len(servers))

	for _, s := range servers {
		list = append(list, map[string]any{"url": s.URL, "description": s.Description})
	}

	doc["servers"] = list

	info, _ := doc["info"].(map[string]any)
	if info == nil {
		info = map[string]any{}
	}

	info["x-generated-at"] = time.Now().UTC().Format(time.RFC3339)
	info["x-environment"] = config.Environment
	info["x-api-version"] = config.APIVersion
	doc["info"] = info

	return doc, nil
}

// ServerURLs derives the advertised server list. An explicit base URL wins;
// otherwise the environment decides. Environments other than development
// always get a localhost entry appended for local testing.
func ServerURLs(config configpkg.Config) []Server {
	localURL := fmt.Sprintf("http://localhost:%s/api/%s", config.Port, config.APIVersion)

	var servers []Server

	switch {
	case config.BaseURL != "":
		servers = append(servers, Server{URL: config.BaseURL, Description: "Configured API server"})
	case config.Environment == "production":
		url := config.ProductionAPIURL
		if url == "" {
			url = "https://api.example.com/api/" + config.APIVersion
		}

		servers = append(servers, Server{URL: url, Description: "Production server"})
	case config.Environment == "staging":
		url := config.StagingAPIURL
		if url == "" {
			url = "https://api-staging.example.com/api/" + config.APIVersion
		}

		servers = append(servers, Server{URL: url, Description: "Staging server"})
	default:
		servers = append(servers, Server{URL: localURL, Description: "Development server"})
	}

	if config.Environment != "development" && !containsLocalhost(servers) {
		servers = append(servers, Server{URL: localURL, Description: "Local development server"})
	}

	return servers
}

func containsLocalhost(servers []Server) bool {
	for _, s := range servers {
		if strings.Contains(s.URL, "localhost") {
			return true
		}
	}

	return false
}
