// Package conf loads SDK configuration from a TOML file, for callers
// that prefer a config file over wiring options in code.
package conf

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"go.ellipsesearch.dev/ingest-sdk/pkg/auth"
)

// File is the on-disk configuration. All fields are optional; empty
// secrets simply leave verification unconfigured, which the verifier
// reports per request.
type File struct {
	Host           string `toml:"host"`
	BearerToken    string `toml:"bearer_token"`
	SigningKey     string `toml:"signing_key"`
	MaxSkewSeconds int    `toml:"max_skew_seconds"`
}

// Load reads and decodes the TOML file at path.
func Load(path string) (*File, error) {
	var f File
	meta, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown key %q in config %s", undecoded[0].String(), path)
	}
	return &f, nil
}

// Secrets converts the file's secret material into verifier secrets.
func (f *File) Secrets() auth.Secrets {
	return auth.Secrets{
		BearerToken: f.BearerToken,
		SigningKey:  f.SigningKey,
		MaxSkew:     time.Duration(f.MaxSkewSeconds) * time.Second,
	}
}
