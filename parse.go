package natural

import (
	"fmt"

	"github.com/npillmayer/natural/result"
)

// Parse reads a binary digit string, most-significant bit first, i.e. the
// format produced by Natural.String. Leading zero digits are accepted and
// collapse away during construction. Anything other than digits '0' and
// '1' is an Err, as is the empty string.
func Parse(s string) result.Result[Natural] {
	if s == "" {
		return result.Err[Natural](fmt.Errorf("natural: cannot parse empty string"))
	}
	n := zeroNode
	for _, r := range s {
		switch r {
		case '0':
			n = makeNode(n, ZeroBit)
		case '1':
			n = makeNode(n, OneBit)
		default:
			return result.Err[Natural](fmt.Errorf("natural: not a binary digit: %q", r))
		}
	}
	return result.Ok(Natural{n: n})
}
