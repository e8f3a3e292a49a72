// Package config loads the rcl settings from an optional YAML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/creasty/defaults"
	"github.com/etnz/reconcile"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultFile is read when no config file is given and it exists.
const DefaultFile = ".rcl.yaml"

// Config holds the settings shared by all rcl commands.
type Config struct {
	Selectors struct {
		Labels   string `yaml:"labels" default:"$.labels" validate:"startswith=$"`
		Values   string `yaml:"values" default:"$.data" validate:"startswith=$"`
		Activity string `yaml:"activity" default:"$.activity" validate:"startswith=$"`
	} `yaml:"selectors"`
	// Dataset is the label of the dataset to compare, the first one if empty.
	Dataset     string `yaml:"dataset"`
	Currency    string `yaml:"currency" validate:"omitempty,iso4217"`
	Format      string `yaml:"format" default:"text" validate:"oneof=text markdown json table"`
	ChangedOnly bool   `yaml:"changedOnly"`
	Model       string `yaml:"model" default:"gemini-2.5-pro" validate:"required"`
}

var validate = validator.New()

// Default returns the configuration used without any file.
func Default() *Config {
	var c Config
	// Only fails on non pointer values.
	if err := defaults.Set(&c); err != nil {
		panic(err)
	}
	return &c
}

// Load reads the YAML file at path. An empty path reads DefaultFile if it
// exists, and returns Default() otherwise.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !explicit {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(b)
}

// Parse decodes a YAML document, fills missing keys with their default and
// validates the result.
func Parse(b []byte) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := defaults.Set(&c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &c, nil
}

// LoadWithEnv is Load followed by the RCL_* environment overrides.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("RCL_DATASET"); v != "" {
		c.Dataset = v
	}
	if v := os.Getenv("RCL_CURRENCY"); v != "" {
		c.Currency = strings.ToUpper(v)
	}
	if v := os.Getenv("RCL_FORMAT"); v != "" {
		c.Format = v
	}
	if v := os.Getenv("RCL_CHANGED_ONLY"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("RCL_CHANGED_ONLY: %w", err)
		}
		c.ChangedOnly = b
	}
	if v := os.Getenv("RCL_MODEL"); v != "" {
		c.Model = v
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return c, nil
}

// Validate checks every field against its constraints.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	errs := make([]error, 0, len(verrs))
	for _, e := range verrs {
		errs = append(errs, fieldError(e))
	}
	return errors.Join(errs...)
}

func fieldError(fe validator.FieldError) error {
	field := strings.TrimPrefix(fe.Namespace(), "Config.")
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%s is required", field)
	case "oneof":
		return fmt.Errorf("%s must be one of: %s, got %q", field, strings.ReplaceAll(fe.Param(), " ", ", "), fe.Value())
	case "iso4217":
		return fmt.Errorf("%s must be an ISO 4217 currency code, got %q", field, fe.Value())
	case "startswith":
		return fmt.Errorf("%s must be a JSONPath starting with %q, got %q", field, fe.Param(), fe.Value())
	default:
		return fmt.Errorf("%s failed validation: %s", field, fe.Tag())
	}
}

// ChartSelectors returns the chart selectors for the configured dataset.
func (c *Config) ChartSelectors() reconcile.Selectors {
	sel := reconcile.DefaultSelectors
	sel.Labels = c.Selectors.Labels
	sel.Values = c.Selectors.Values
	sel.Activity = c.Selectors.Activity
	if c.Dataset != "" {
		sel = sel.ByLabel(c.Dataset)
	}
	return sel
}
