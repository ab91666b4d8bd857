// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// The file is optional: when none is found the built-in defaults describe the
// three bundled cities. The resulting AppConfig is passed explicitly to the
// loader and the session.
package config
