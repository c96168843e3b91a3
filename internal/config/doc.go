// Package config manages user-level settings stored at ~/.reactgen/config.yaml.
// Values can be overridden with REACTGEN_* environment variables; the package
// manager and log level used by `reactgen new` are read from here.
package config
