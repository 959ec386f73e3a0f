package hierarchy

import (
	"log/slog"

	"github.com/chazu/regraft/pkg/scene"
)

// Options selects which reconstruction passes Rebuild runs.
type Options struct {
	// GroupSuffixes runs the suffix-convention pass. Enable it when the
	// source format carries instance grouping suffixes (see SuffixAware).
	GroupSuffixes bool

	// ExternalTree is the raw external hierarchy payload, or empty when
	// none was supplied. A payload that fails to parse is logged and
	// ignored; hierarchy applied by earlier passes is kept.
	ExternalTree []byte

	// Logger for informational counts. Nil means slog.Default().
	Logger *slog.Logger
}

// Rebuild runs the reconstruction passes over the registry in place.
// The suffix-convention pass runs first and the external-tree pass
// second, so on conflicting parent assignments the external tree wins.
// Rebuild never fails: every degraded outcome is still a valid,
// exportable forest.
func Rebuild(reg *scene.Registry, opts Options) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if opts.GroupSuffixes {
		ApplySuffixGroups(reg, logger)
	}

	if len(opts.ExternalTree) > 0 {
		roots, err := ParseTree(opts.ExternalTree)
		if err != nil {
			logger.Warn("ignoring external hierarchy payload", "err", err)
			return
		}
		ApplyExternalTree(reg, roots, logger)
	}
}
