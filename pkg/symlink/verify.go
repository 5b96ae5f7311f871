package symlink

import (
	"io/fs"
	"os"

	"github.com/drmbt/comfy-config/pkg/types"
)

// LinkState describes what currently occupies a planned target
type LinkState string

const (
	// StateLinked means a symlink to the planned source is in place
	StateLinked LinkState = "linked"
	// StateMissing means nothing exists at the target
	StateMissing LinkState = "missing"
	// StateForeign means a symlink exists but points somewhere else
	StateForeign LinkState = "foreign"
	// StateBlocked means a real file or directory occupies the target
	StateBlocked LinkState = "blocked"
	// StateUnknown means the target could not be inspected
	StateUnknown LinkState = "unknown"
)

// VerifyResult is the observed state of one planned link
type VerifyResult struct {
	Action types.LinkAction
	State  LinkState
	// Dest is the current link destination when State is foreign
	Dest string
}

// Verify inspects the plan's targets without mutating anything
func Verify(fsys types.FS, actions []types.LinkAction) []VerifyResult {
	results := make([]VerifyResult, 0, len(actions))
	for _, action := range actions {
		results = append(results, verifyOne(fsys, action))
	}
	return results
}

func verifyOne(fsys types.FS, action types.LinkAction) VerifyResult {
	info, err := fsys.Lstat(action.Target)
	if err != nil {
		if os.IsNotExist(err) {
			return VerifyResult{Action: action, State: StateMissing}
		}
		return VerifyResult{Action: action, State: StateUnknown}
	}

	if info.Mode()&fs.ModeSymlink == 0 {
		return VerifyResult{Action: action, State: StateBlocked}
	}

	dest, err := fsys.Readlink(action.Target)
	if err != nil {
		return VerifyResult{Action: action, State: StateUnknown}
	}
	if dest != action.Source {
		return VerifyResult{Action: action, State: StateForeign, Dest: dest}
	}
	return VerifyResult{Action: action, State: StateLinked}
}
