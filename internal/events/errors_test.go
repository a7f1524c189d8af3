package events_test

import (
	"context"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/tablero/internal/events"
)

func TestClassifyDaemonError(t *testing.T) {
	assert.Nil(t, events.ClassifyDaemonError(nil))

	tests := []struct {
		name string
		err  error
		code events.ErrorCode
	}{
		{"missing socket", fmt.Errorf("dial: %w", os.ErrNotExist), events.ErrSocketNotFound},
		{"permission", fmt.Errorf("dial: %w", os.ErrPermission), events.ErrSocketPermission},
		{"refused", fmt.Errorf("dial: %w", syscall.ECONNREFUSED), events.ErrConnectionRefused},
		{"other", fmt.Errorf("boom"), events.ErrDaemonNotRunning},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := events.ClassifyDaemonError(tt.err)
			require.NotNil(t, got)
			assert.Equal(t, tt.code, got.Code)
			assert.NotEmpty(t, got.Hint)
			assert.ErrorIs(t, got, tt.err)
		})
	}
}

func TestClassifyDaemonError_RealDial(t *testing.T) {
	client, err := events.NewClient(filepath.Join(t.TempDir(), "absent.sock"))
	require.NoError(t, err)
	defer client.Close()

	err = client.Connect(context.Background())
	require.Error(t, err)

	var opErr *net.OpError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, events.ErrSocketNotFound, events.ClassifyDaemonError(err).Code)
}
