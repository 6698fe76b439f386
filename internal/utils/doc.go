// Package utils provides small helpers shared across the application:
// a preconfigured resty HTTP client and an identifier generator.
package utils
