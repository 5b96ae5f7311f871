// Package ui handles comfy-config's terminal surface: output format
// detection, interactive prompts, styling, and rendering of command
// results.
package ui
