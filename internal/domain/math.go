package domain

import "math/bits"

// CheckedAdd returns a+b or ErrArithmeticOverflow. Both operands must be
// non-negative.
func CheckedAdd(a, b int64) (int64, error) {
	sum := a + b
	if sum < a {
		return 0, ErrArithmeticOverflow
	}
	return sum, nil
}

// CheckedMul returns a*b or ErrArithmeticOverflow. Both operands must be
// non-negative.
func CheckedMul(a, b int64) (int64, error) {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if hi != 0 || lo > 1<<63-1 {
		return 0, ErrArithmeticOverflow
	}
	return int64(lo), nil
}

// MulDiv returns floor(a*b/den) using a 128-bit intermediate product, so the
// multiplication cannot overflow on its own. All operands must be
// non-negative and den must be positive.
func MulDiv(a, b, den int64) (int64, error) {
	if den <= 0 {
		return 0, ErrInvalidAmount
	}
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if hi >= uint64(den) {
		return 0, ErrArithmeticOverflow
	}
	quo, _ := bits.Div64(hi, lo, uint64(den))
	if quo > 1<<63-1 {
		return 0, ErrArithmeticOverflow
	}
	return int64(quo), nil
}

// Payout computes a sponsor's proportional earnings against the live
// revenue-vault balance: floor(claim * revenue / totalSponsorship). Because
// totalSponsorship never shrinks while the revenue vault does, the rate is
// order-dependent: earlier claimants withdraw at a higher per-unit rate.
func Payout(claim, revenue, totalSponsorship int64) (int64, error) {
	if claim == 0 || revenue == 0 {
		return 0, nil
	}
	return MulDiv(claim, revenue, totalSponsorship)
}
