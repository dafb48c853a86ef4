package content

import (
	"testing"
)

func newFilterState(t *testing.T) *TweetFilterState {
	t.Helper()
	q := newTestQueries(t, []Tweet{
		{ID: "a", Lang: LangChinese, Topic: TopicGrowth, PostedAt: "2024-03-10", Stats: TweetStats{Likes: 3}},
		{ID: "b", Lang: LangEnglish, Topic: TopicWriting, PostedAt: "2024-03-12", Stats: TweetStats{Likes: 9}},
		{ID: "c", Lang: LangChinese, Topic: TopicWriting, PostedAt: "2023-12-01", Stats: TweetStats{Likes: 5}},
	})
	return NewTweetFilterState(q)
}

func TestFilterStateDefaults(t *testing.T) {
	state := newFilterState(t)

	criteria := state.Criteria()
	if criteria.Lang != "all" || len(criteria.Topics) != 0 || criteria.DateRange != RangeAll || criteria.SortBy != SortRecent {
		t.Fatalf("unexpected defaults: %+v", criteria)
	}

	if got := state.Apply(); len(got) != 3 {
		t.Fatalf("expected all tweets under defaults, got %d", len(got))
	}
}

func TestFilterStateToggleTopic(t *testing.T) {
	state := newFilterState(t)

	state.ToggleTopic(TopicWriting)
	if got := state.Apply(); len(got) != 2 {
		t.Fatalf("expected 2 writing tweets, got %d", len(got))
	}

	// 再次切换同一主题将其移除，其他维度不受影响
	state.ToggleTopic(TopicWriting)
	criteria := state.Criteria()
	if len(criteria.Topics) != 0 {
		t.Fatalf("expected topic removed, got %v", criteria.Topics)
	}
	if criteria.Lang != "all" || criteria.DateRange != RangeAll {
		t.Fatalf("toggle must not touch other dimensions: %+v", criteria)
	}
}

func TestFilterStateDimensionsCombine(t *testing.T) {
	state := newFilterState(t)

	state.SetLang("zh")
	state.ToggleTopic(TopicWriting)
	state.SetDateRange(Range30d)

	got := state.Apply()
	if len(got) != 0 {
		t.Fatalf("expected no zh writing tweets within 30d, got %v", got)
	}

	state.SetDateRange(RangeAll)
	got = state.Apply()
	if len(got) != 1 || got[0].ID != "c" {
		t.Fatalf("expected only tweet c, got %v", got)
	}
}

func TestFilterStateReset(t *testing.T) {
	state := newFilterState(t)

	state.SetLang("en")
	state.ToggleTopic(TopicGrowth)
	state.ToggleTopic(TopicWriting)
	state.SetDateRange(Range7d)
	state.SetSortBy(SortLikes)

	state.Reset()

	criteria := state.Criteria()
	if criteria.Lang != "all" {
		t.Fatalf("expected lang reset to all, got %q", criteria.Lang)
	}
	if len(criteria.Topics) != 0 {
		t.Fatalf("expected topics cleared, got %v", criteria.Topics)
	}
	if criteria.DateRange != RangeAll {
		t.Fatalf("expected date range reset, got %q", criteria.DateRange)
	}
	if criteria.SortBy != SortRecent {
		t.Fatalf("expected sort reset to recent, got %q", criteria.SortBy)
	}
}

func TestFilterStateCriteriaSnapshotIsolated(t *testing.T) {
	state := newFilterState(t)
	state.ToggleTopic(TopicGrowth)

	criteria := state.Criteria()
	criteria.Topics[0] = TopicOther

	if state.Criteria().Topics[0] != TopicGrowth {
		t.Fatalf("mutating a snapshot must not affect controller state")
	}
}
