package config

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/kvlog/kvlog/formatter"
	"github.com/kvlog/kvlog/handler"
	"github.com/kvlog/kvlog/handler/consolehandler"
	"github.com/kvlog/kvlog/handler/filehandler"
	"github.com/kvlog/kvlog/logger"
)

// Config describes a logger declaratively. The zero value builds a
// text logger on stdout at the info level.
type Config struct {
	Level  string     `yaml:"level"`
	Format string     `yaml:"format"`
	Output string     `yaml:"output"`
	File   FileConfig `yaml:"file"`
}

// FileConfig holds the file sink settings, used when output is "file".
type FileConfig struct {
	Path       string `yaml:"path"`
	Truncate   bool   `yaml:"truncate"`
	BufferSize int    `yaml:"buffer_size"`
}

// Load reads and parses a YAML config file.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config file %s", path)
	}
	cfg, err := Parse(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "parse config file %s", path)
	}
	return cfg, nil
}

// Parse decodes YAML into a Config. Unknown keys are rejected, so a
// typo fails loudly instead of silently falling back to a default.
// An empty document yields the zero Config.
func Parse(raw []byte) (*Config, error) {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		if err == io.EOF {
			return &Config{}, nil
		}
		return nil, errors.Wrap(err, "decode yaml")
	}
	return &cfg, nil
}

// Validate checks every setting and reports all problems at once.
func (c *Config) Validate() error {
	var err error

	switch strings.ToLower(c.Level) {
	case "", "trace", "debug", "info", "warn", "warning", "error", "critical":
	default:
		err = multierr.Append(err, errors.Errorf("unknown level %q", c.Level))
	}

	switch strings.ToLower(c.Format) {
	case "", "text", "json":
	default:
		err = multierr.Append(err, errors.Errorf("unknown format %q", c.Format))
	}

	switch strings.ToLower(c.Output) {
	case "", "stdout", "stderr":
	case "file":
		if c.File.Path == "" {
			err = multierr.Append(err, errors.New(`output "file" requires file.path`))
		}
	default:
		err = multierr.Append(err, errors.Errorf("unknown output %q", c.Output))
	}

	if c.File.BufferSize < 0 {
		err = multierr.Append(err, errors.Errorf("negative buffer_size %d", c.File.BufferSize))
	}

	return err
}

// Build validates the config and constructs the logger it describes.
// File sink errors propagate; nothing else can fail past validation.
func (c *Config) Build() (*logger.Logger, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	var f formatter.Formatter
	switch strings.ToLower(c.Format) {
	case "json":
		f = formatter.NewJSONFormatter()
	default:
		f = formatter.NewTextFormatter()
	}

	level := logger.ParseLevel(c.Level)

	var h handler.Handler
	switch strings.ToLower(c.Output) {
	case "file":
		fh, err := filehandler.NewFileHandler(filehandler.Config{
			Filename:   c.File.Path,
			Truncate:   c.File.Truncate,
			BufferSize: c.File.BufferSize,
			Formatter:  f,
			Level:      level,
		})
		if err != nil {
			return nil, err
		}
		h = fh
	case "stderr":
		h = consolehandler.NewConsoleHandler(consolehandler.Config{
			UseStderr: true,
			Formatter: f,
			Level:     level,
		})
	default:
		h = consolehandler.NewConsoleHandler(consolehandler.Config{
			Formatter: f,
			Level:     level,
		})
	}

	return logger.New(h), nil
}
