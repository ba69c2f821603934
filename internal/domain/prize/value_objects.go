package prize

import "errors"

var (
	ErrInvalidKind = errors.New("invalid prize kind")
	ErrEmptyTitle  = errors.New("prize title cannot be empty")
)

type Kind string

const (
	KindCash   Kind = "CASH"
	KindCoupon Kind = "COUPON"
	KindPoint  Kind = "POINT"
)

func NewKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindCash, KindCoupon, KindPoint:
		return Kind(s), nil
	default:
		return "", ErrInvalidKind
	}
}

func (k Kind) String() string {
	return string(k)
}

type Title string

func NewTitle(s string) (Title, error) {
	if s == "" {
		return "", ErrEmptyTitle
	}
	return Title(s), nil
}

func (t Title) String() string {
	return string(t)
}
