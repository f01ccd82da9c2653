package sat

// luby returns the x-th value (0-indexed) of the Luby restart sequence
// 1,1,2,1,1,2,4,1,1,2,1,1,2,4,8,... (Luby, Sinclair, Zuckerman 1993):
// find the smallest k with 2^k-1 > x; if x = 2^k-2 return 2^(k-1),
// otherwise recurse on x mod (2^(k-1)-1) with k decremented.
func luby(x int) int {
	size, seq := 1, 0
	for size < x+1 {
		seq++
		size = 2*size + 1
	}
	for size-1 != x {
		size = (size - 1) / 2
		seq--
		x %= size
	}
	return 1 << seq
}
