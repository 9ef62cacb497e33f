// SPDX-License-Identifier: EPL-2.0

package audio

// reclaimThreshold is the minimum number of consumed samples before the
// shared buffer is compacted.
const reclaimThreshold = 1024

// teeBuffer replays one source to several independent read cursors.
// Values are pulled from the source only when the leading cursor needs
// them, and dropped once every cursor has moved past them.
type teeBuffer struct {
	src     Producer
	buf     []float64
	base    int   // absolute index of buf[0]
	cursors []int // absolute index of the next value per branch
	done    bool
}

func (b *teeBuffer) next(branch int) (float64, bool) {
	pos := b.cursors[branch]
	for pos-b.base >= len(b.buf) {
		if b.done {
			return 0, false
		}
		v, ok := b.src.Next()
		if !ok {
			b.done = true
			return 0, false
		}
		b.buf = append(b.buf, v)
	}

	v := b.buf[pos-b.base]
	b.cursors[branch] = pos + 1
	b.reclaim()

	return v, true
}

func (b *teeBuffer) reclaim() {
	lowest := b.cursors[0]
	for _, c := range b.cursors[1:] {
		lowest = min(lowest, c)
	}

	drop := lowest - b.base
	if drop < reclaimThreshold || drop*2 < len(b.buf) {
		return
	}

	n := copy(b.buf, b.buf[drop:])
	b.buf = b.buf[:n]
	b.base = lowest
}

// buffered reports how many values are currently retained.
func (b *teeBuffer) buffered() int { return len(b.buf) }

// TeeBranch is one read cursor over a source shared through Tee.
type TeeBranch struct {
	shared *teeBuffer
	index  int
}

func (t *TeeBranch) Next() (float64, bool) { return t.shared.next(t.index) }

// Buffered reports how many source values the shared buffer retains.
func (t *TeeBranch) Buffered() int { return t.shared.buffered() }

// Tee splits src into n independent Producers that each see the full
// remaining stream of src. src must not be read directly afterwards.
// n below 1 is treated as 1.
func Tee(src Producer, n int) []*TeeBranch {
	n = max(n, 1)

	shared := &teeBuffer{
		src:     src,
		cursors: make([]int, n),
	}

	branches := make([]*TeeBranch, n)
	for i := range branches {
		branches[i] = &TeeBranch{shared: shared, index: i}
	}

	return branches
}
