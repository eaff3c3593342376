package game

// frameStats records the last N frame intervals into a ring buffer so the
// panel can show the rate the line is actually stepped at.
type frameStats struct {
	buffer    []float64
	nextIndex int
	count     int
	sum       float64
}

func newFrameStats(ringSize int) *frameStats {
	return &frameStats{buffer: make([]float64, max(ringSize, 1))}
}

// record adds one frame interval in seconds. Non-positive intervals are ignored.
func (f *frameStats) record(dt float64) {
	if dt <= 0 {
		return
	}
	if f.count == len(f.buffer) {
		f.sum -= f.buffer[f.nextIndex]
	} else {
		f.count++
	}
	f.buffer[f.nextIndex] = dt
	f.sum += dt
	f.nextIndex++
	if f.nextIndex >= len(f.buffer) {
		f.nextIndex = 0
	}
}

// fps is the mean frame rate over the buffered intervals, 0 before any frame.
func (f *frameStats) fps() float64 {
	if f.count == 0 || f.sum <= 0 {
		return 0
	}
	return float64(f.count) / f.sum
}
