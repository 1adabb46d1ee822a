//go:build !opencv

package opencv

import (
	"context"
	"testing"

	"github.com/bnema/wellbeing-cli/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestStubCameraIsUnavailable(t *testing.T) {
	t.Parallel()

	_, err := NewCamera(DefaultDeviceID).Open(context.Background())
	assert.ErrorIs(t, err, domain.ErrDeviceUnavailable)
	assert.Contains(t, err.Error(), "opencv")
}
