package cli

import (
	"fmt"

	"github.com/existflow/kerja/internal/store"
	"github.com/existflow/kerja/internal/workspace"
)

// openWorkspace opens the state database and loads the workspace from it.
// The caller owns closing the returned DB.
func openWorkspace() (*store.DB, *workspace.Workspace, error) {
	path := ""
	if activeConfig != nil {
		path = activeConfig.DataPath
	}

	var (
		db  *store.DB
		err error
	)
	if path != "" {
		db, err = store.Open(path)
	} else {
		db, err = store.OpenDefault()
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open workspace: %w", err)
	}

	return db, workspace.New(db), nil
}

// truncate shortens a string to max length with ellipsis
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
