//go:build elimdebug

package partition

import "fmt"

// assertForward panics if a reclassification would move a vertex backward
// (e.g. ZeroFill regressing to General). Compiled in only under the
// elimdebug build tag; release builds (partition/release.go) trust the
// forward-only invariant silently, gating an expensive consistency check
// behind a build tag rather than paying for it in production builds.
func assertForward(cur, target Kind) {
	if rank(target) < rank(cur) {
		panic(fmt.Sprintf("partition: backward reclassification %v -> %v violates forward-only monotonicity", cur, target))
	}
}
