// Package config builds loggers from YAML descriptions.
//
//	level: info          # trace|debug|info|warning|error|critical
//	format: json         # text|json (default text)
//	output: file         # stdout|stderr|file (default stdout)
//	file:
//	  path: /var/log/app.log
//	  truncate: false
//	  buffer_size: 4096
//
// Load reads a file, Parse decodes bytes, Validate reports every
// problem in one error, and Build constructs the described logger:
//
//	cfg, err := config.Load("logging.yaml")
//	if err != nil {
//	    return err
//	}
//	log, err := cfg.Build()
//
// Unknown YAML keys are rejected, so a misspelled setting fails at
// load time instead of being silently ignored.
package config
