// Package opencv reads still frames from a local camera. Real capture needs
// the opencv build tag and a system OpenCV install.
package opencv

import "github.com/bnema/wellbeing-cli/internal/ports"

const DefaultDeviceID = 0

type Camera struct {
	deviceID int
}

var _ ports.Camera = (*Camera)(nil)

func NewCamera(deviceID int) *Camera {
	return &Camera{deviceID: deviceID}
}

func (c *Camera) DeviceID() int {
	return c.deviceID
}
