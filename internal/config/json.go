package config

import (
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-json"
)

// StructuredJSONConfig is the layout of the JSON config file.
//
//	{
//	  "upstreamApi": "https://xyz.supabase.co/rest/v1",
//	  "upstreamApiKey": "anon-key",
//	  "sheetsBase": "https://docs.google.com",
//	  "upstreamTimeout": "30s",
//	  "address": ":3001",
//	  "corsAllowedOrigins": ["*"],
//	  "version": "1.0.0"
//	}
type StructuredJSONConfig struct {
	UpstreamAPI        string   `json:"upstreamApi"`
	UpstreamAPIKey     string   `json:"upstreamApiKey"`
	SheetsBase         string   `json:"sheetsBase"`
	UpstreamTimeout    Duration `json:"upstreamTimeout"`
	Address            string   `json:"address"`
	CORSAllowedOrigins []string `json:"corsAllowedOrigins"`
	Version            string   `json:"version"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version: jsonCfg.Version,
		},
		Upstream: Upstream{
			APIBase:        jsonCfg.UpstreamAPI,
			APIKey:         jsonCfg.UpstreamAPIKey,
			SheetsBase:     jsonCfg.SheetsBase,
			RequestTimeout: time.Duration(jsonCfg.UpstreamTimeout),
		},
		Server: Server{
			HTTPAddress:        jsonCfg.Address,
			CORSAllowedOrigins: jsonCfg.CORSAllowedOrigins,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
