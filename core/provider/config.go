package provider

// Config holds configuration for the remote provider API.
type Config struct {
	// BaseURL is the root URL of the provider inventory API.
	BaseURL string `mapstructure:"base_url" default:"http://localhost:9400"`
	// ApiKey authenticates against the provider API.
	ApiKey string `mapstructure:"api_key" default:""`
	// PageSize is the number of records requested per page.
	PageSize int `mapstructure:"page_size" default:"100"`
	// TimeoutSeconds is the per-request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
