// Package config loads comfy-config's layered configuration: embedded
// defaults, an optional comfy-config.toml or comfy-config.yaml in the
// project root, an optional .env file, and finally the process
// environment. Later layers win.
package config
