package content

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"
)

// DefaultSearchDebounce 是搜索输入静默多久后才发起请求
const DefaultSearchDebounce = 200 * time.Millisecond

// Searcher 执行一次搜索请求，通常指向 /api/search 或本地 Queries.Search。
type Searcher func(ctx context.Context, query string) ([]SearchResult, error)

// SearchState 是搜索会话对外可见的快照。
// Failed 仅在请求真实失败时为真；被新输入取代的请求不会留下失败痕迹。
type SearchState struct {
	Query   string
	Results []SearchResult
	Pending bool
	Failed  bool
}

// SearchSession 管理一个搜索框的防抖与响应去序。
// 每次发起请求都会拿到递增的序号，只有序号等于最新序号的响应才会被应用，
// 被取代的在途请求会被取消，其结果到达后直接丢弃（按发起顺序而非到达顺序取最后写入者）。
type SearchSession struct {
	mu       sync.Mutex
	search   Searcher
	debounce time.Duration
	onUpdate func(SearchState)

	timer  *time.Timer
	cancel context.CancelFunc
	seq    uint64
	closed bool
	state  SearchState
}

// NewSearchSession 构造搜索会话。debounce 非正时使用默认值；
// onUpdate 在每次状态变化时同步回调，可以为 nil。
func NewSearchSession(search Searcher, debounce time.Duration, onUpdate func(SearchState)) *SearchSession {
	if debounce <= 0 {
		debounce = DefaultSearchDebounce
	}
	return &SearchSession{
		search:   search,
		debounce: debounce,
		onUpdate: onUpdate,
	}
}

// SetQuery 记录最新输入并重置防抖计时，输入稳定一个静默期后才真正发起请求。
// 空白输入立即取消在途请求并清空结果。
func (s *SearchSession) SetQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}

	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		s.supersedeLocked()
		s.state = SearchState{Query: query}
		s.notifyLocked()
		return
	}

	s.state.Query = query
	s.state.Pending = true
	s.notifyLocked()

	s.timer = time.AfterFunc(s.debounce, func() {
		s.issue(query)
	})
}

// Flush 跳过防抖立即发起当前输入的请求，测试和回车提交会用到。
func (s *SearchSession) Flush() {
	s.mu.Lock()
	query := s.state.Query
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	closed := s.closed
	s.mu.Unlock()

	if closed || strings.TrimSpace(query) == "" {
		return
	}
	s.issue(query)
}

// State 返回当前状态的快照。
func (s *SearchSession) State() SearchState {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := s.state
	snapshot.Results = append([]SearchResult(nil), s.state.Results...)
	return snapshot
}

// Close 中止在途请求并停止计时器，之后的输入一律忽略。
func (s *SearchSession) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.supersedeLocked()
}

// issue 给请求编号并异步执行，响应回来时只有仍是最新编号才会被应用。
func (s *SearchSession) issue(query string) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.supersedeLocked()
	s.seq++
	seq := s.seq
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.mu.Unlock()

	go func() {
		results, err := s.search(ctx, query)
		s.apply(seq, query, results, err)
	}()
}

func (s *SearchSession) apply(seq uint64, query string, results []SearchResult, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || seq != s.seq {
		// 已有更新的请求发出，这个响应按发起顺序判定为过期
		return
	}
	s.cancel = nil

	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		s.state = SearchState{Query: query, Failed: true}
		s.notifyLocked()
		return
	}

	s.state = SearchState{Query: query, Results: results}
	s.notifyLocked()
}

func (s *SearchSession) supersedeLocked() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.seq++
}

func (s *SearchSession) notifyLocked() {
	if s.onUpdate != nil {
		s.onUpdate(s.state)
	}
}
