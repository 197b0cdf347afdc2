package openapipkg

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/finmock/finmock/pkg/configpkg"
)

func TestServerURLs(t *testing.T) {
	testCases := []struct {
		name   string
		config configpkg.Config
		want   []Server
	}{
		{
			name:   "ExplicitBaseURLWins",
			config: configpkg.Config{Port: "3000", Environment: "development", APIVersion: "v1", BaseURL: "https://api.example.com/banking/v1"},
			want: []Server{
				{URL: "https://api.example.com/banking/v1", Description: "Configured API server"},
			},
		},
		{
			name:   "Development",
			config: configpkg.Config{Port: "3000", Environment: "development", APIVersion: "v1"},
			want: []Server{
				{URL: "http://localhost:3000/api/v1", Description: "Development server"},
			},
		},
		{
			name:   "ProductionAppendsLocalhost",
			config: configpkg.Config{Port: "3000", Environment: "production", APIVersion: "v1", ProductionAPIURL: "https://api.prod.example.com/v1"},
			want: []Server{
				{URL: "https://api.prod.example.com/v1", Description: "Production server"},
				{URL: "http://localhost:3000/api/v1", Description: "Local development server"},
			},
		},
		{
			name:   "StagingWithDefaultURL",
			config: configpkg.Config{Port: "3001", Environment: "staging", APIVersion: "v2"},
			want: []Server{
				{URL: "https://api-staging.example.com/api/v2", Description: "Staging server"},
				{URL: "http://localhost:3001/api/v2", Description: "Local development server"},
			},
		},
		{
			name:   "BaseURLInProductionStillAppendsLocalhost",
			config: configpkg.Config{Port: "3000", Environment: "production", APIVersion: "v1", BaseURL: "https://api.example.com/v1"},
			want: []Server{
				{URL: "https://api.example.com/v1", Description: "Configured API server"},
				{URL: "http://localhost:3000/api/v1", Description: "Local development server"},
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, ServerURLs(tc.config)); diff != "" {
				t.Errorf("ServerURLs() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGenerate(t *testing.T) {
	raw := []byte("openapi: 3.0.3\ninfo:\n  title: Test API\n  version: 1.0.0\npaths: {}\n")
	config := configpkg.Config{Port: "3000", Environment: "development", APIVersion: "v1"}

	doc, err := Generate(raw, config)
	require.NoError(t, err)

	servers, ok := doc["servers"].([]any)
	require.True(t, ok)
	require.Len(t, servers, 1)

	info, ok := doc["info"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "Test API", info["title"])
	require.Equal(t, "development", info["x-environment"])
	require.Equal(t, "v1", info["x-api-version"])
	require.NotEmpty(t, info["x-generated-at"])
}

func TestGenerateRejectsMalformedDocument(t *testing.T) {
	_, err := Generate([]byte(":\n  - not yaml"), configpkg.Config{})
	require.Error(t, err)
}

func TestUIPage(t *testing.T) {
	page := UIPage("Test API")

	require.True(t, strings.Contains(page, "<title>Test API</title>"))
	require.True(t, strings.Contains(page, `url: "/openapi.json"`))
}
