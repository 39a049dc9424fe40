package collision

import "math/bits"

// MaxVelocity bounds the length of any segment fed to the DDA line
// traversal so that the scaled integer products in Line cannot overflow
// 64 bits. UsedMaxVelocity is the clamp target, one unit shorter so the
// clamped segment is strictly inside the bound.
const (
	MaxVelocity     = 450000
	UsedMaxVelocity = MaxVelocity - 1
)

// Entry is one record per (body, cell) pair produced by Add. gx, gy are
// the signed, pre-wrap cell coordinates: they let a query discriminate a
// true occupant of a wrapped cell from an entry that merely wrapped onto
// the same bin index.
type Entry struct {
	body       Body
	denseIndex int
	gx, gy     int64
}

// CollisionIndex is a toroidally-wrapped uniform grid rebuilt each
// simulation tick by counting sort, queried read-only until the next
// Clear. Clear, Add and Finalize form the write phase; Line, Circle,
// Ring and All are the read phase.
type CollisionIndex struct {
	cellSize int64
	cells    int64
	shift    uint
	cellMask int64
	wrapMask int64

	step int64

	pending   []Entry
	all       []Body
	counts    []int64 // len == cells*cells + 2
	sorted    []Entry
	finalized bool

	seen      []uint64
	seenEpoch uint64

	result []Body // reused Circle/Ring output buffer

	logger Logger
}

// New constructs an index spanning cellCount*cellCount cells of
// cellSize world units each, wrapping toroidally beyond that extent.
// Both arguments are rounded down to the nearest power of two. The
// returned index starts in a cleared state equivalent to Clear(0).
func New(cellSize, cellCount int) *CollisionIndex {
	return NewWithLogger(cellSize, cellCount, nil)
}

// NewWithLogger is like New but lets the caller supply the Logger used
// for the one-shot velocity-overflow warning. A nil logger discards it.
func NewWithLogger(cellSize, cellCount int, logger Logger) *CollisionIndex {
	size := roundDownPow2(int64(cellSize))
	count := roundDownPow2(int64(cellCount))

	if logger == nil {
		logger = noopLogger{}
	}

	idx := &CollisionIndex{
		cellSize: size,
		cells:    count,
		shift:    uint(bits.Len64(uint64(size)) - 1),
		cellMask: size - 1,
		wrapMask: count - 1,
		logger:   logger,
	}
	idx.Clear(0)
	return idx
}

// roundDownPow2 rounds n down to the nearest power of two, minimum 1.
func roundDownPow2(n int64) int64 {
	if n <= 1 {
		return 1
	}
	return int64(1) << uint(bits.Len64(uint64(n))-1)
}

// Clear resets all per-tick write state and records the new step. Seen
// markers and the query epoch are per-query, not per-tick, and are left
// untouched.
func (idx *CollisionIndex) Clear(step int64) {
	idx.step = step
	idx.pending = idx.pending[:0]
	idx.all = idx.all[:0]
	idx.sorted = idx.sorted[:0]
	idx.finalized = false

	nBins := idx.cells * idx.cells
	if int64(len(idx.counts)) != nBins+2 {
		idx.counts = make([]int64, nBins+2)
	} else {
		for i := range idx.counts {
			idx.counts[i] = 0
		}
	}
}

// Step returns the tick number recorded by the most recent Clear.
func (idx *CollisionIndex) Step() int64 {
	return idx.step
}

// worldToGrid truncates a world coordinate to an integer and arithmetic
// right-shifts it by SHIFT, i.e. floors it to a grid coordinate.
func (idx *CollisionIndex) worldToGrid(v float64) int64 {
	return int64(v) >> idx.shift
}

func (idx *CollisionIndex) wrap(v int64) int64 {
	return v & idx.wrapMask
}

func (idx *CollisionIndex) bin(gx, gy int64) int64 {
	return idx.wrap(gy)*idx.cells + idx.wrap(gx)
}

// Add records body's grid footprint. Must not be called after Finalize
// without an intervening Clear.
//
// The footprint is the axis-aligned box of the body's bounding radius.
// For a non-circular Mask this over-approximates the silhouette; the
// Mask's Collide and WithinRing calls reject the extra candidates.
func (idx *CollisionIndex) Add(body Body) {
	if idx.finalized {
		panic("collision: Add called after Finalize without an intervening Clear")
	}

	px, py := body.Position()
	r := body.Radius()

	minX := idx.worldToGrid(px - r)
	maxX := idx.worldToGrid(px + r)
	minY := idx.worldToGrid(py - r)
	maxY := idx.worldToGrid(py + r)

	denseIndex := len(idx.all)
	idx.all = append(idx.all, body)

	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			idx.pending = append(idx.pending, Entry{body: body, denseIndex: denseIndex, gx: x, gy: y})
			idx.counts[idx.bin(x, y)+2]++
		}
	}
}

// Finalize sorts the pending entries into the flat bin table via a
// single-pass counting sort, making the index queryable.
func (idx *CollisionIndex) Finalize() {
	for i := 1; i < len(idx.counts); i++ {
		idx.counts[i] += idx.counts[i-1]
	}

	idx.sorted = make([]Entry, len(idx.pending))
	for _, e := range idx.pending {
		i := idx.bin(e.gx, e.gy) + 1
		idx.sorted[idx.counts[i]] = e
		idx.counts[i]++
	}

	if cap(idx.seen) < len(idx.all) {
		idx.seen = make([]uint64, len(idx.all))
		idx.seenEpoch = 0
	} else {
		idx.seen = idx.seen[:len(idx.all)]
		for i := range idx.seen {
			idx.seen[i] = 0
		}
		idx.seenEpoch = 0
	}

	idx.finalized = true
}

// findBin returns the slice of sorted entries belonging to bin b.
func (idx *CollisionIndex) findBin(b int64) []Entry {
	return idx.sorted[idx.counts[b]:idx.counts[b+1]]
}

// nextEpoch advances seenEpoch, re-zeroing the seen vector on wrap.
func (idx *CollisionIndex) nextEpoch() uint64 {
	idx.seenEpoch++
	if idx.seenEpoch == 0 {
		for i := range idx.seen {
			idx.seen[i] = 0
		}
		idx.seenEpoch = 1
	}
	return idx.seenEpoch
}

func (idx *CollisionIndex) markSeen(denseIndex int) bool {
	if idx.seen[denseIndex] == idx.seenEpoch {
		return true
	}
	idx.seen[denseIndex] = idx.seenEpoch
	return false
}

// All returns every body added this tick, each listed once. The
// returned slice is a view; it is invalidated by the next Clear.
func (idx *CollisionIndex) All() []Body {
	return idx.all
}

// friendOrFoe implements the friend/foe predicate used by Line (Ring
// and Circle apply no government filter): skip the candidate unless it is the designated target, OR
// either side has no government, OR the two governments are enemies.
func friendOrFoe(candidate Body, target Body, queryGov Government) bool {
	if candidate == target {
		return true
	}
	gov := candidate.Government()
	if queryGov == nil || gov == nil {
		return true
	}
	return queryGov.IsEnemy(gov)
}
