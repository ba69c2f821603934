package point

import "errors"

var ErrInvalidCause = errors.New("invalid point cause")

// Cause records why a ledger entry exists.
type Cause string

const (
	CauseWheel       Cause = "WHEEL"
	CauseSpend       Cause = "SPEND"
	CauseAdminAdjust Cause = "ADMIN_ADJUST"
	CauseAdminBonus  Cause = "ADMIN_BONUS"
)

func NewCause(s string) (Cause, error) {
	switch Cause(s) {
	case CauseWheel, CauseSpend, CauseAdminAdjust, CauseAdminBonus:
		return Cause(s), nil
	default:
		return "", ErrInvalidCause
	}
}

func (c Cause) String() string {
	return string(c)
}
