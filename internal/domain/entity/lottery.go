package entity

// LotteryType identifies a supported lottery jurisdiction.
type LotteryType string

const (
	LotteryVietnam LotteryType = "vietnam"
	Lottery4D      LotteryType = "4d"
	LotteryThai    LotteryType = "thai"
	LotteryIndo    LotteryType = "indo"
)

// DefaultLottery is substituted for unknown types.
const DefaultLottery = LotteryVietnam

// ParseLotteryType validates a raw type string.
func ParseLotteryType(raw string) (LotteryType, bool) {
	switch LotteryType(raw) {
	case LotteryVietnam, Lottery4D, LotteryThai, LotteryIndo:
		return LotteryType(raw), true
	}
	return DefaultLottery, false
}
