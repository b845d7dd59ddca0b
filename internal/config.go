// Package internal holds the HCL configuration layer for celvalidate.
package internal

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

const (
	// ConfigFileName is the name of the configuration file celvalidate
	// looks for in the validated directory and the working directory.
	ConfigFileName = "celvalidate.hcl"
)

// Config represents the top-level configuration for celvalidate.
type Config struct {
	Report    *Report    `hcl:"report,block"`
	Filenames *Filenames `hcl:"filenames,block"`
}

// Report controls how diagnostics are presented.
type Report struct {
	Verbose *bool   `hcl:"verbose,optional"`
	Color   *string `hcl:"color,optional"` // "auto" (default), "always", "never"
}

// Filenames extends the extension sets accepted for filename properties.
// Entries may be given with or without a leading dot; "*" accepts any
// extension.
type Filenames struct {
	MeshExtensions       []string `hcl:"mesh_extensions,optional"`
	TextureExtensions    []string `hcl:"texture_extensions,optional"`
	TrajectoryExtensions []string `hcl:"trajectory_extensions,optional"`
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{}
}

// ParseConfig parses HCL configuration source into a Config struct.
func ParseConfig(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse error: %s", diags.Error())
	}
	var cfg Config
	decodeDiags := gohcl.DecodeBody(file.Body, nil, &cfg)
	if decodeDiags.HasErrors() {
		return nil, fmt.Errorf("decode error: %s", decodeDiags.Error())
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadConfig reads the config file in dir if one exists. A missing file is
// not an error; the default configuration is returned instead.
func LoadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, ConfigFileName)
	src, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}
	cfg, err := ParseConfig(src, path)
	if err != nil {
		return nil, fmt.Errorf("error loading config %s: %w", path, err)
	}
	return cfg, nil
}

// Merge overlays add on top of c: settings present in add win, extension
// lists are appended.
func (c *Config) Merge(add *Config) {
	if add == nil {
		return
	}
	if add.Report != nil {
		if c.Report == nil {
			c.Report = &Report{}
		}
		if add.Report.Verbose != nil {
			c.Report.Verbose = add.Report.Verbose
		}
		if add.Report.Color != nil {
			c.Report.Color = add.Report.Color
		}
	}
	if add.Filenames != nil {
		if c.Filenames == nil {
			c.Filenames = &Filenames{}
		}
		c.Filenames.MeshExtensions = append(c.Filenames.MeshExtensions, add.Filenames.MeshExtensions...)
		c.Filenames.TextureExtensions = append(c.Filenames.TextureExtensions, add.Filenames.TextureExtensions...)
		c.Filenames.TrajectoryExtensions = append(c.Filenames.TrajectoryExtensions, add.Filenames.TrajectoryExtensions...)
	}
}

// Verbose reports whether informational messages should be shown.
func (c *Config) Verbose() bool {
	return c.Report != nil && c.Report.Verbose != nil && *c.Report.Verbose
}

// ColorMode returns the configured color mode, defaulting to "auto".
func (c *Config) ColorMode() string {
	if c.Report == nil || c.Report.Color == nil {
		return "auto"
	}
	return *c.Report.Color
}

func (c *Config) validate() error {
	if c.Report != nil && c.Report.Color != nil {
		switch *c.Report.Color {
		case "auto", "always", "never":
		default:
			return fmt.Errorf("report.color must be one of 'auto', 'always', or 'never' (got %q)", *c.Report.Color)
		}
	}
	return nil
}
