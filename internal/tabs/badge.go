package tabs

import (
	"fmt"
	"math"
	"strconv"
)

// BadgeKind discriminates the badge variants a tab can carry.
type BadgeKind int

const (
	BadgeNone BadgeKind = iota
	BadgeCount
	BadgeDot
)

// Badge is the closed set of badge values: absent, a count, or a dot
// indicator. The zero value is the absent badge.
type Badge struct {
	Kind  BadgeKind
	Count int
}

// NoBadge returns the absent badge.
func NoBadge() Badge {
	return Badge{Kind: BadgeNone}
}

// CountBadge returns a numeric badge. Negative counts are treated as
// absent.
func CountBadge(n int) Badge {
	if n < 0 {
		return NoBadge()
	}
	return Badge{Kind: BadgeCount, Count: n}
}

// DotBadge returns the dot indicator badge.
func DotBadge() Badge {
	return Badge{Kind: BadgeDot}
}

// IsZero reports whether the badge is absent.
func (b Badge) IsZero() bool {
	return b.Kind == BadgeNone
}

// String returns the display form of the badge: empty for absent, "dot"
// for the dot indicator, the decimal count otherwise.
func (b Badge) String() string {
	switch b.Kind {
	case BadgeCount:
		return strconv.Itoa(b.Count)
	case BadgeDot:
		return "dot"
	default:
		return ""
	}
}

// ParseBadge converts a wire badge value into a Badge. The wire shape is
// integer | "dot" | null; negative integers mean no badge.
func ParseBadge(value any) (Badge, error) {
	switch v := value.(type) {
	case nil:
		return NoBadge(), nil
	case int:
		return CountBadge(v), nil
	case int64:
		if v > math.MaxInt32 || v < math.MinInt32 {
			return Badge{}, fmt.Errorf("%w: count out of range: %d", ErrInvalidBadge, v)
		}
		return CountBadge(int(v)), nil
	case float64:
		if v != math.Trunc(v) {
			return Badge{}, fmt.Errorf("%w: count must be an integer: %v", ErrInvalidBadge, v)
		}
		if v > math.MaxInt32 || v < math.MinInt32 {
			return Badge{}, fmt.Errorf("%w: count out of range: %v", ErrInvalidBadge, v)
		}
		return CountBadge(int(v)), nil
	case string:
		if v == "dot" {
			return DotBadge(), nil
		}
		return Badge{}, fmt.Errorf("%w: unknown badge string: %q", ErrInvalidBadge, v)
	default:
		return Badge{}, fmt.Errorf("%w: unsupported badge type: %T", ErrInvalidBadge, value)
	}
}
