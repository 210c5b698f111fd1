package crosshair

import "errors"

// ErrUnknownAction is returned when a handler receives an action name
// outside the crosshair namespace.
var ErrUnknownAction = errors.New("crosshair: unknown action")
