package natural

// Bit is one binary digit of a Natural.
type Bit uint8

// The two possible digit values.
const (
	ZeroBit Bit = 0
	OneBit  Bit = 1
)

func (b Bit) String() string {
	if b == OneBit {
		return "1"
	}
	return "0"
}
