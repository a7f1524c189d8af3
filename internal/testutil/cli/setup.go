// Package cli holds helpers for command tests. It lives apart from testutil so
// service tests can import testutil without pulling in the app.
package cli

import (
	"testing"

	"github.com/thenoetrevino/tablero/internal/app"
	"github.com/thenoetrevino/tablero/internal/database"
	"github.com/thenoetrevino/tablero/internal/testutil"
)

// SetupCLITest creates an in-memory repository and an App over it.
// The App has no event publisher.
func SetupCLITest(t *testing.T) (*database.Repository, *app.App) {
	t.Helper()
	repo := testutil.SetupTestRepo(t)
	return repo, app.New(repo)
}
