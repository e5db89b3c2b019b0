package video

import (
	"sort"

	"github.com/google/uuid"
)

type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

// OrderChange is one half of a reorder: the video and the sort order it
// should receive.
type OrderChange struct {
	ID        uuid.UUID
	SortOrder int
}

// MovePlan holds the two writes of a swap-based reorder. Videos outside the
// swap keep their sort order untouched.
type MovePlan struct {
	A OrderChange
	B OrderChange
}

// InBucket filters videos down to one category bucket (nil means
// uncategorized) and sorts them by sort order, oldest first on ties. The
// input slice is not modified.
func InBucket(videos []Video, category *string) []Video {
	bucket := make([]Video, 0, len(videos))
	for _, v := range videos {
		if sameBucket(v.Category, category) {
			bucket = append(bucket, v)
		}
	}
	sort.SliceStable(bucket, func(i, j int) bool {
		if bucket[i].SortOrder != bucket[j].SortOrder {
			return bucket[i].SortOrder < bucket[j].SortOrder
		}
		return bucket[i].CreatedAt.Before(bucket[j].CreatedAt)
	})
	return bucket
}

// PlanMove computes the swap that moves the given video one position up or
// down inside its bucket. The bucket must come from InBucket. It returns
// false when the video is not in the bucket or is already at the edge; both
// are no-ops for the caller, not errors.
//
// When the two videos carry the same stored sort order (legacy rows that
// were never seeded), their position index is used as the effective order so
// the move still takes effect.
func PlanMove(bucket []Video, id uuid.UUID, direction Direction) (MovePlan, bool) {
	i := -1
	for pos, v := range bucket {
		if v.ID == id {
			i = pos
			break
		}
	}
	if i < 0 {
		return MovePlan{}, false
	}

	j := i - 1
	if direction == DirectionDown {
		j = i + 1
	}
	if j < 0 || j >= len(bucket) {
		return MovePlan{}, false
	}

	orderAt := func(pos int) int {
		if bucket[i].SortOrder == bucket[j].SortOrder {
			return pos
		}
		return bucket[pos].SortOrder
	}

	return MovePlan{
		A: OrderChange{ID: bucket[i].ID, SortOrder: orderAt(j)},
		B: OrderChange{ID: bucket[j].ID, SortOrder: orderAt(i)},
	}, true
}

// NextSortOrder returns the order value for a video appended to the bucket.
func NextSortOrder(bucket []Video) int {
	if len(bucket) == 0 {
		return 0
	}
	return bucket[len(bucket)-1].SortOrder + 1
}

func sameBucket(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
