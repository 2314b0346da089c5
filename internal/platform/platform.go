// Package platform models candidate platforms as bit vectors over a fixed
// number of issues.
//
// Bit w of a Platform is the candidate's stance (0 or 1) on issue w. A
// Platform doubles as a dense index into a candidate pool of PoolSize
// entries, so pool-sized tables are plain slices indexed by Platform.
package platform

import (
	"math/bits"
	"strconv"
	"strings"
)

// MaxIssues is the largest issue count a Platform can represent.
const MaxIssues = 63

// Platform is a stance vector; bit w holds the stance on issue w.
type Platform uint64

// Distance returns the number of issues on which a and b disagree, the
// Hamming weight of a XOR b. It is symmetric and zero only when a == b.
func Distance(a, b Platform) int {
	return bits.OnesCount64(uint64(a ^ b))
}

// PoolSize returns the number of distinct platforms over numIssues issues.
func PoolSize(numIssues int) uint64 {
	return 1 << uint(numIssues)
}

// Mask returns the platform with a 1 stance on every one of numIssues issues.
func Mask(numIssues int) Platform {
	return Platform(PoolSize(numIssues) - 1)
}

// Stance returns the stance (0 or 1) on issue w.
func (p Platform) Stance(w int) uint64 {
	return uint64(p>>uint(w)) & 1
}

// Invert returns the platform that disagrees with p on every issue.
func (p Platform) Invert(numIssues int) Platform {
	return ^p & Mask(numIssues)
}

// Binary renders p as numIssues binary digits, issue 0 rightmost.
func (p Platform) Binary(numIssues int) string {
	s := strconv.FormatUint(uint64(p), 2)
	if len(s) >= numIssues {
		return s
	}
	return strings.Repeat("0", numIssues-len(s)) + s
}

// String returns the decimal id of p.
func (p Platform) String() string {
	return strconv.FormatUint(uint64(p), 10)
}
