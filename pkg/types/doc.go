// Package types holds the core types shared across comfy-config:
// the filesystem and subprocess abstractions and the symlink
// plan/result types that the commands operate on.
package types
