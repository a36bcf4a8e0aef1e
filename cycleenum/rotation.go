package cycleenum

import "strconv"

// rotationOffset returns the start index of the rotation of ids that begins
// with its numerically smallest element, ties broken by the first such
// index. Deliberately the naive scan: cycle length is bounded by the
// configured maximum (10 by default), where a linear-time minimal-rotation
// algorithm buys nothing. The reversed sequence is NOT considered: the
// wants relation is directed, so a cycle and its reversal are distinct
// trades and must not be collapsed.
func rotationOffset(ids []int64) int {
	best := 0
	for i := 1; i < len(ids); i++ {
		if ids[i] < ids[best] {
			best = i
		}
	}

	return best
}

// minimalIDRotation rotates ids so the minimal element (per rotationOffset)
// is first.
func minimalIDRotation(ids []int64) []int64 {
	return rotateIDs(ids, rotationOffset(ids))
}

func rotateIDs(ids []int64, offset int) []int64 {
	n := len(ids)
	out := make([]int64, n)
	for i := 0; i < n; i++ {
		out[i] = ids[(offset+i)%n]
	}

	return out
}

func rotateIndices(idx []int, offset int) []int {
	n := len(idx)
	out := make([]int, n)
	for i := 0; i < n; i++ {
		out[i] = idx[(offset+i)%n]
	}

	return out
}

// joinIDs builds the comma-joined canonical-key signature for a rotation.
func joinIDs(ids []int64) string {
	out := make([]byte, 0, len(ids)*8)
	for i, id := range ids {
		if i > 0 {
			out = append(out, ',')
		}
		out = strconv.AppendInt(out, id, 10)
	}

	return string(out)
}
