package content

import "slices"

// TweetFilterState 持有一个推文画廊当前的筛选与排序选择。
// 每个画廊实例独占一份状态，修改任一维度不影响其他维度；
// Apply 同步重算可见结果集，不发起网络请求。
type TweetFilterState struct {
	queries   *Queries
	lang      string
	topics    []TweetTopic
	dateRange DateRange
	sortBy    TweetSort
}

// NewTweetFilterState 以默认条件（全部语言、不限主题、不限时间、最新优先）构造状态。
func NewTweetFilterState(queries *Queries) *TweetFilterState {
	state := &TweetFilterState{queries: queries}
	state.Reset()
	return state
}

// Reset 一次性把所有维度恢复为默认值。
func (s *TweetFilterState) Reset() {
	s.lang = "all"
	s.topics = nil
	s.dateRange = RangeAll
	s.sortBy = SortRecent
}

// SetLang 切换语言维度。
func (s *TweetFilterState) SetLang(lang string) {
	s.lang = lang
}

// ToggleTopic 添加或移除一个主题，恰好只影响该主题。
func (s *TweetFilterState) ToggleTopic(topic TweetTopic) {
	if i := slices.Index(s.topics, topic); i >= 0 {
		s.topics = slices.Delete(s.topics, i, i+1)
		return
	}
	s.topics = append(s.topics, topic)
}

// SetDateRange 切换时间窗口维度。
func (s *TweetFilterState) SetDateRange(r DateRange) {
	s.dateRange = r
}

// SetSortBy 切换排序维度。
func (s *TweetFilterState) SetSortBy(sort TweetSort) {
	s.sortBy = sort
}

// Criteria 返回当前条件的快照。
func (s *TweetFilterState) Criteria() TweetQuery {
	return TweetQuery{
		Lang:      s.lang,
		Topics:    slices.Clone(s.topics),
		DateRange: s.dateRange,
		SortBy:    s.sortBy,
	}
}

// Apply 按当前条件重算可见推文。
func (s *TweetFilterState) Apply() []Tweet {
	return s.queries.QueryTweets(s.Criteria())
}
