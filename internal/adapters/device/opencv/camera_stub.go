//go:build !opencv

package opencv

import (
	"context"
	"fmt"

	"github.com/bnema/wellbeing-cli/internal/domain"
	"github.com/bnema/wellbeing-cli/internal/ports"
)

func (c *Camera) Open(ctx context.Context) (ports.CameraStream, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return nil, fmt.Errorf("%w: camera %d: built without opencv support", domain.ErrDeviceUnavailable, c.deviceID)
}
