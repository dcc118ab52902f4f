package flow

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// NumBuckets is the number of colour tiers segments are batched into.
const NumBuckets = 32

// Segment is a line in canvas pixel coordinates.
type Segment struct {
	X1, Y1, X2, Y2 float64
}

// Buckets groups segments by colour tier. The backing slices are kept
// between frames; Reset truncates them without releasing memory.
type Buckets struct {
	lists [NumBuckets][]Segment
	count int
}

// BucketIndex maps a colour key in [-1, 1] to a bucket index in [0, NumBuckets).
// Out-of-range keys clamp to the end buckets; NaN goes to bucket 0.
func BucketIndex(key float64) int {
	switch {
	case math.IsNaN(key), key <= -1:
		return 0
	case key >= 1:
		return NumBuckets - 1
	}
	return min(int(math.Floor(remap(key, -1, 1, 0, NumBuckets))), NumBuckets-1)
}

// BucketColor returns the stroke colour for bucket i: the linear blend of
// c1 and c2 at the bucket's centre.
func BucketColor(i int, c1, c2 colorful.Color) colorful.Color {
	t := (float64(i) + 0.5) / NumBuckets
	return c1.BlendRgb(c2, t)
}

// Reset empties every bucket, keeping capacity.
func (b *Buckets) Reset() {
	for i := range b.lists {
		b.lists[i] = b.lists[i][:0]
	}
	b.count = 0
}

// Add appends seg to the bucket selected by key and returns that index.
func (b *Buckets) Add(seg Segment, key float64) int {
	i := BucketIndex(key)
	b.lists[i] = append(b.lists[i], seg)
	b.count++
	return i
}

// Bucket returns the segments in bucket i in insertion order.
// The slice is only valid until the next Reset.
func (b *Buckets) Bucket(i int) []Segment {
	return b.lists[i]
}

// Len returns the total number of segments across all buckets.
func (b *Buckets) Len() int {
	return b.count
}

// Each calls fn for every non-empty bucket in ascending index order.
func (b *Buckets) Each(fn func(i int, segs []Segment)) {
	for i := range b.lists {
		if len(b.lists[i]) == 0 {
			continue
		}
		fn(i, b.lists[i])
	}
}
