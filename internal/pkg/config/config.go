package config

import (
	"io"
	"time"
)

// Config defines the read-side of application configuration.
//
// Implementations handle retrieval and type conversion, returning zero values
// when a key is missing or cannot be converted.
type Config interface {
	io.Closer

	// GetBool retrieves the value for key as a bool.
	GetBool(key string) bool

	// GetString retrieves the value for key as a string.
	GetString(key string) string

	// GetInt retrieves the value for key as an int.
	GetInt(key string) int

	// GetFloat64 retrieves the value for key as a float64.
	GetFloat64(key string) float64

	// GetSecond retrieves the value for key as a duration in seconds.
	GetSecond(key string) time.Duration

	// GetMinute retrieves the value for key as a duration in minutes.
	GetMinute(key string) time.Duration

	// GetArray retrieves the value for key as a string slice.
	// The value is stored with format <element1>,<element2>,...
	GetArray(key string) []string

	// GetMap retrieves the value for key as a string map.
	// The value is stored with format <key1>:<value1>,<key2>:<value2>,...
	GetMap(key string) map[string]string
}
