package payload

import (
	"errors"
	"regexp"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jellydator/validation"
)

var txHashRegex = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)

var errNotHexAddress = errors.New("must be a hex address")

var hexAddress = validation.By(func(value any) error {
	var s string
	switch v := value.(type) {
	case string:
		s = v
	case *string:
		if v == nil {
			return nil
		}
		s = *v
	default:
		return errNotHexAddress
	}
	if s == "" {
		return nil
	}
	if !common.IsHexAddress(s) {
		return errNotHexAddress
	}
	return nil
})

// ValidateAddress validates a single address taken from the request path.
func ValidateAddress(address string) error {
	return validation.Validate(address, validation.Required, hexAddress)
}
