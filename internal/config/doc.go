// Package config manages the user-wide configuration file, which stores the
// preferred registry format and default theme.
package config
