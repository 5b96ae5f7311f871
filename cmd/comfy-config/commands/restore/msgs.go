package restore

// Message constants
const (
	MsgShort = "Restore a ComfyUI-Manager extension snapshot"
	MsgLong  = `Restore replays an extension snapshot through comfy-cli. The snapshot
comes from the argument, the SNAPSHOT_PATH variable, or the project
configuration; interactively, the workspace's snapshot files are offered
for selection. A bare file name refers to the workspace snapshots
directory.`
	MsgExample = `  comfy-config restore                      # Pick from available snapshots
  comfy-config restore snapshot.json        # Restore from the workspace
  comfy-config restore ~/backups/snap.json  # Restore from a path`
)
