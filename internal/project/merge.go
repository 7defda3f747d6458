package project

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoFEDS/GoFEDS/internal/db/controller/usersetting"
)

// MergeUserValues overlays the user's stored per-project values onto the
// assembled default tree. Settings without a stored value keep their
// defaults. A stored value naming a machine name the tree doesn't know is
// stale data from a settings-schema change and is dropped, not an error. A
// stored value the setting rejects is a real error and aborts the merge.
func MergeUserValues(db *gorm.DB, tree *Tree) error {
	stored, err := usersetting.ForProject(db, tree.ID)
	if err != nil {
		return errors.Wrapf(err, "merge user values for project %d", tree.ID)
	}

	for _, row := range stored {
		target, ok := tree.Lookup(row.MachineName)
		if !ok {
			log.Debug().
				Uint64("project", tree.ID).
				Str("machine_name", row.MachineName).
				Msg("dropping stale user setting")
			continue
		}

		if err := target.ApplyValue(row.Value); err != nil {
			return errors.Wrapf(err, "user value for %q", row.MachineName)
		}
	}

	return nil
}
