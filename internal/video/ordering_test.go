package video_test

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/educahub/educahub-lambda/internal/video"
)

func strPtr(s string) *string { return &s }

func makeVideo(title string, category *string, sortOrder int, createdAt time.Time) video.Video {
	return video.Video{
		ID:        uuid.New(),
		Title:     title,
		URL:       "https://videos.example.com/" + title,
		Category:  category,
		SortOrder: sortOrder,
		CreatedAt: createdAt,
	}
}

func applyPlan(bucket []video.Video, plan video.MovePlan) []video.Video {
	out := make([]video.Video, len(bucket))
	copy(out, bucket)
	for i := range out {
		switch out[i].ID {
		case plan.A.ID:
			out[i].SortOrder = plan.A.SortOrder
		case plan.B.ID:
			out[i].SortOrder = plan.B.SortOrder
		}
	}
	return out
}

func TestInBucket(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	onboarding := strPtr("onboarding")
	safety := strPtr("safety")

	videos := []video.Video{
		makeVideo("c", onboarding, 2, base),
		makeVideo("a", onboarding, 0, base),
		makeVideo("x", safety, 0, base),
		makeVideo("b", onboarding, 1, base),
		makeVideo("solto", nil, 0, base),
	}

	t.Run("FiltersAndSorts", func(t *testing.T) {
		bucket := video.InBucket(videos, onboarding)
		if len(bucket) != 3 {
			t.Fatalf("expected 3 videos in bucket, got %d", len(bucket))
		}
		for i, want := range []string{"a", "b", "c"} {
			if bucket[i].Title != want {
				t.Errorf("position %d: expected %q, got %q", i, want, bucket[i].Title)
			}
		}
	})

	t.Run("UncategorizedBucket", func(t *testing.T) {
		bucket := video.InBucket(videos, nil)
		if len(bucket) != 1 || bucket[0].Title != "solto" {
			t.Fatalf("expected only the uncategorized video, got %v", bucket)
		}
	})

	t.Run("EmptyBucket", func(t *testing.T) {
		if bucket := video.InBucket(videos, strPtr("missing")); len(bucket) != 0 {
			t.Fatalf("expected empty bucket, got %d videos", len(bucket))
		}
	})

	t.Run("TieBrokenByCreationTime", func(t *testing.T) {
		older := makeVideo("older", safety, 5, base)
		newer := makeVideo("newer", safety, 5, base.Add(time.Hour))
		bucket := video.InBucket([]video.Video{newer, older}, safety)
		if bucket[0].Title != "older" || bucket[1].Title != "newer" {
			t.Errorf("tie should be broken by creation time: %q, %q", bucket[0].Title, bucket[1].Title)
		}
	})

	t.Run("InputNotModified", func(t *testing.T) {
		first := videos[0].Title
		video.InBucket(videos, onboarding)
		if videos[0].Title != first {
			t.Error("InBucket must not reorder its input")
		}
	})
}

func TestPlanMove(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	cat := strPtr("onboarding")

	newBucket := func() []video.Video {
		return video.InBucket([]video.Video{
			makeVideo("a", cat, 10, base),
			makeVideo("b", cat, 20, base),
			makeVideo("c", cat, 30, base),
		}, cat)
	}

	t.Run("MoveUpSwapsOrderValues", func(t *testing.T) {
		bucket := newBucket()
		plan, ok := video.PlanMove(bucket, bucket[1].ID, video.DirectionUp)
		if !ok {
			t.Fatal("expected a plan for an interior move")
		}
		if plan.A.ID != bucket[1].ID || plan.A.SortOrder != 10 {
			t.Errorf("moved video should take order 10, got %+v", plan.A)
		}
		if plan.B.ID != bucket[0].ID || plan.B.SortOrder != 20 {
			t.Errorf("displaced video should take order 20, got %+v", plan.B)
		}

		after := video.InBucket(applyPlan(bucket, plan), cat)
		if after[0].Title != "b" || after[1].Title != "a" || after[2].Title != "c" {
			t.Errorf("unexpected order after move: %s %s %s", after[0].Title, after[1].Title, after[2].Title)
		}
	})

	t.Run("MoveDownSwapsOrderValues", func(t *testing.T) {
		bucket := newBucket()
		plan, ok := video.PlanMove(bucket, bucket[1].ID, video.DirectionDown)
		if !ok {
			t.Fatal("expected a plan for an interior move")
		}

		after := video.InBucket(applyPlan(bucket, plan), cat)
		if after[0].Title != "a" || after[1].Title != "c" || after[2].Title != "b" {
			t.Errorf("unexpected order after move: %s %s %s", after[0].Title, after[1].Title, after[2].Title)
		}
	})

	t.Run("UntouchedVideosKeepTheirOrder", func(t *testing.T) {
		bucket := newBucket()
		plan, _ := video.PlanMove(bucket, bucket[0].ID, video.DirectionDown)
		after := applyPlan(bucket, plan)
		if after[2].SortOrder != 30 {
			t.Errorf("video outside the swap changed order: %d", after[2].SortOrder)
		}
	})

	t.Run("FirstItemUpIsNoOp", func(t *testing.T) {
		bucket := newBucket()
		if _, ok := video.PlanMove(bucket, bucket[0].ID, video.DirectionUp); ok {
			t.Error("moving the first video up should be a no-op")
		}
	})

	t.Run("LastItemDownIsNoOp", func(t *testing.T) {
		bucket := newBucket()
		if _, ok := video.PlanMove(bucket, bucket[2].ID, video.DirectionDown); ok {
			t.Error("moving the last video down should be a no-op")
		}
	})

	t.Run("UnknownVideoIsNoOp", func(t *testing.T) {
		bucket := newBucket()
		if _, ok := video.PlanMove(bucket, uuid.New(), video.DirectionUp); ok {
			t.Error("moving a video that is not in the bucket should be a no-op")
		}
	})

	t.Run("UpThenDownRestoresOrder", func(t *testing.T) {
		bucket := newBucket()
		plan, ok := video.PlanMove(bucket, bucket[1].ID, video.DirectionUp)
		if !ok {
			t.Fatal("expected a plan")
		}
		moved := video.InBucket(applyPlan(bucket, plan), cat)

		plan2, ok := video.PlanMove(moved, bucket[1].ID, video.DirectionDown)
		if !ok {
			t.Fatal("expected a plan for the inverse move")
		}
		restored := video.InBucket(applyPlan(moved, plan2), cat)

		for i := range bucket {
			if restored[i].ID != bucket[i].ID {
				t.Fatalf("position %d differs after up+down", i)
			}
		}
	})

	t.Run("DuplicateOrderFallsBackToPosition", func(t *testing.T) {
		// Legacy rows that were never seeded all carry sort order 0; the
		// position index keeps moves possible.
		bucket := video.InBucket([]video.Video{
			makeVideo("a", cat, 0, base),
			makeVideo("b", cat, 0, base.Add(time.Minute)),
			makeVideo("c", cat, 0, base.Add(2*time.Minute)),
		}, cat)

		plan, ok := video.PlanMove(bucket, bucket[1].ID, video.DirectionUp)
		if !ok {
			t.Fatal("expected a plan even with duplicate sort orders")
		}
		if plan.A.SortOrder != 0 || plan.B.SortOrder != 1 {
			t.Errorf("expected positional orders 0 and 1, got %d and %d", plan.A.SortOrder, plan.B.SortOrder)
		}

		after := video.InBucket(applyPlan(bucket, plan), cat)
		if after[0].Title != "b" {
			t.Errorf("expected b first after move, got %q", after[0].Title)
		}
	})
}

func TestNextSortOrder(t *testing.T) {
	if got := video.NextSortOrder(nil); got != 0 {
		t.Errorf("empty bucket should start at 0, got %d", got)
	}

	cat := strPtr("safety")
	bucket := video.InBucket([]video.Video{
		makeVideo("a", cat, 3, time.Now()),
		makeVideo("b", cat, 7, time.Now()),
	}, cat)
	if got := video.NextSortOrder(bucket); got != 8 {
		t.Errorf("expected 8, got %d", got)
	}
}
