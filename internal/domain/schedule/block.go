package schedule

import (
	"errors"
	"sort"
	"time"
)

var (
	ErrStartNotBeforeEnd = errors.New("block start must be before block end")
	ErrOverlappingBlocks = errors.New("blocks for the same weekday overlap")
	ErrInvalidWeekday    = errors.New("invalid weekday")
)

// Block is one contiguous working-hours interval on a weekday,
// closed at the start and open at the end.
type Block struct {
	weekday time.Weekday
	start   TimeOfDay
	end     TimeOfDay
}

func NewBlock(weekday time.Weekday, start, end TimeOfDay) (Block, error) {
	if weekday < time.Sunday || weekday > time.Saturday {
		return Block{}, ErrInvalidWeekday
	}
	if !start.IsValid() || !end.IsValid() {
		return Block{}, ErrInvalidTimeOfDay
	}
	if start >= end {
		return Block{}, ErrStartNotBeforeEnd
	}
	return Block{weekday: weekday, start: start, end: end}, nil
}

func (b Block) Weekday() time.Weekday { return b.weekday }
func (b Block) Start() TimeOfDay      { return b.start }
func (b Block) End() TimeOfDay        { return b.end }

// Contains implements the start-only eligibility rule: an instant is
// covered when its time of day falls in [start, end). A booking whose
// duration runs past the block end is still accepted; only the start
// boundary is checked.
func (b Block) Contains(t TimeOfDay) bool {
	return b.start <= t && t < b.end
}

func (b Block) overlaps(other Block) bool {
	return b.start < other.end && other.start < b.end
}

// Week is a tenant's full weekly availability: per weekday, an ordered
// list of non-overlapping blocks. An absent weekday means closed.
type Week struct {
	blocks map[time.Weekday][]Block
}

// NewWeek validates the replace-all payload as a whole before any of it
// is persisted: each block well-formed, and no two blocks on the same
// weekday overlapping.
func NewWeek(blocks []Block) (Week, error) {
	byDay := make(map[time.Weekday][]Block, 7)
	for _, b := range blocks {
		byDay[b.weekday] = append(byDay[b.weekday], b)
	}
	for day, dayBlocks := range byDay {
		sort.Slice(dayBlocks, func(i, j int) bool {
			return dayBlocks[i].start < dayBlocks[j].start
		})
		for i := 1; i < len(dayBlocks); i++ {
			if dayBlocks[i-1].overlaps(dayBlocks[i]) {
				return Week{}, ErrOverlappingBlocks
			}
		}
		byDay[day] = dayBlocks
	}
	return Week{blocks: byDay}, nil
}

func (w Week) BlocksFor(weekday time.Weekday) []Block {
	return w.blocks[weekday]
}

func (w Week) All() []Block {
	var out []Block
	for day := time.Sunday; day <= time.Saturday; day++ {
		out = append(out, w.blocks[day]...)
	}
	return out
}

// Covers reports whether an instant, viewed in the tenant's canonical
// zone, starts inside some working-hours block.
func (w Week) Covers(instant time.Time, loc *time.Location) bool {
	local := instant.In(loc)
	tod := TimeOfDayOf(local)
	for _, b := range w.blocks[local.Weekday()] {
		if b.Contains(tod) {
			return true
		}
	}
	return false
}
