// Package comfy shells out to the comfy-cli executable: probing and
// installing the CLI itself, resolving and installing workspaces, and
// restoring ComfyUI-Manager snapshots.
package comfy
