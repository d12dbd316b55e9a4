package config

import (
	"errors"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrLoadConfig    = errors.New("load config failed")
)

// ErrNoSources is returned when a bulk import finds no configured sources.
var ErrNoSources = errors.New("no sources configured")
