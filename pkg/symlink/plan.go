package symlink

import (
	"path/filepath"

	"github.com/drmbt/comfy-config/pkg/errors"
	"github.com/drmbt/comfy-config/pkg/logging"
	"github.com/drmbt/comfy-config/pkg/paths"
	"github.com/drmbt/comfy-config/pkg/types"
)

// Plan resolves the requested links against the workspace layout. Specs
// with an empty source are dropped (the folder was skipped). The plan
// fails if two sources resolve to the same target; nothing is mutated
// at plan time.
func Plan(layout paths.Layout, specs []types.LinkSpec) ([]types.LinkAction, error) {
	logger := logging.GetLogger("symlink.plan")

	actions := make([]types.LinkAction, 0, len(specs))
	targets := make(map[string]string)

	for _, spec := range specs {
		if spec.Source == "" {
			logger.Debug().Str("name", spec.Name).Msg("no source configured, skipping")
			continue
		}

		source, err := paths.ExpandHome(spec.Source)
		if err != nil {
			return nil, err
		}
		source, err = filepath.Abs(source)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInvalidInput, "cannot resolve source path %s", spec.Source)
		}

		var target string
		if spec.Kind == types.LinkFile {
			target = layout.SettingsPath(spec.Name)
		} else {
			target = layout.Target(spec.Name)
		}

		if existing, ok := targets[target]; ok {
			logger.Error().
				Str("target", target).
				Str("source1", existing).
				Str("source2", source).
				Msg("link conflict detected - multiple sources want same target")
			return nil, errors.Newf(errors.ErrLinkConflict,
				"link conflict: both %s and %s want to link to %s", existing, source, target)
		}
		targets[target] = source

		actions = append(actions, types.LinkAction{
			Name:   spec.Name,
			Source: source,
			Target: target,
			Kind:   spec.Kind,
		})

		logger.Trace().
			Str("source", source).
			Str("target", target).
			Msg("planned link")
	}

	logger.Debug().
		Int("spec_count", len(specs)).
		Int("action_count", len(actions)).
		Msg("plan complete")

	return actions, nil
}
