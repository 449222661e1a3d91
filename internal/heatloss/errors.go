package heatloss

import "errors"

var (
	ErrNegativeArea           = errors.New("element area must not be negative")
	ErrNegativeUValue         = errors.New("element u-value must not be negative")
	ErrTemperatureFactorRange = errors.New("temperature factor must be between 0 and 1")
	ErrNegativeVolume         = errors.New("room volume must not be negative")
	ErrNegativeAirChangeRate  = errors.New("air change rate must not be negative")
	ErrNegativeBridgingFactor = errors.New("thermal bridging factor must not be negative")
	ErrMissingRoomName        = errors.New("room name is required")
	ErrDuplicateRoomName      = errors.New("duplicate room name in building")
	ErrUnknownBoundaryRoom    = errors.New("wall boundary references a room not in the building")
	ErrUnknownPostcodeArea    = errors.New("unknown postcode area")
)
