package models

// StorageProvider describes an object storage backend. Providers are built
// from configuration at startup; the app talks to a single bucket.
type StorageProvider struct {
	Name      string                 `json:"name"`
	Type      string                 `json:"type"`
	Region    string                 `json:"region"`
	Bucket    string                 `json:"bucket"`
	Endpoint  string                 `json:"endpoint,omitempty"`
	AccessKey string                 `json:"-"`
	SecretKey string                 `json:"-"`
	BaseURL   string                 `json:"base_url,omitempty"`
	Settings  map[string]interface{} `json:"settings,omitempty"`
}
