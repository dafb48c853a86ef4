package content

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
)

// Store 持有全部静态内容集合，进程启动时构造一次，之后只读。
// 任何访问器都返回拷贝，调用方无法篡改共享数据。
type Store struct {
	tweets       []Tweet
	articles     []Article
	cases        []Case
	photos       []Photo
	kpis         []KPI
	testimonials []Testimonial
	faqs         []FAQ
}

// NewStore 直接从内存集合构造 Store，主要用于测试和后续替换数据来源。
func NewStore(tweets []Tweet, articles []Article, cases []Case, photos []Photo, kpis []KPI, testimonials []Testimonial, faqs []FAQ) *Store {
	return &Store{
		tweets:       cloneTweets(tweets),
		articles:     cloneArticles(articles),
		cases:        cloneCases(cases),
		photos:       clonePhotos(photos),
		kpis:         slices.Clone(kpis),
		testimonials: slices.Clone(testimonials),
		faqs:         slices.Clone(faqs),
	}
}

// Load 从数据目录读取各集合的 JSON 文件。
// 单个集合缺失或损坏时降级为空集合，返回的 Store 始终可用；
// 汇总后的错误交给调用方决定是否告警。
func Load(dir string) (*Store, error) {
	store := &Store{}

	errs := []error{
		loadCollection(dir, "tweets.json", &store.tweets),
		loadCollection(dir, "articles.json", &store.articles),
		loadCollection(dir, "cases.json", &store.cases),
		loadCollection(dir, "photos.json", &store.photos),
		loadCollection(dir, "kpis.json", &store.kpis),
		loadCollection(dir, "testimonials.json", &store.testimonials),
		loadCollection(dir, "faqs.json", &store.faqs),
	}

	return store, errors.Join(errs...)
}

func loadCollection[T any](dir, name string, target *[]T) error {
	raw, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		*target = nil
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

// Tweets 返回推文集合的拷贝，保持加载顺序。
func (s *Store) Tweets() []Tweet {
	return cloneTweets(s.tweets)
}

// Articles 返回文章集合的拷贝，保持加载顺序。
func (s *Store) Articles() []Article {
	return cloneArticles(s.articles)
}

// Cases 返回案例集合的拷贝，保持加载顺序。
func (s *Store) Cases() []Case {
	return cloneCases(s.cases)
}

// Photos 返回照片集合的拷贝，保持加载顺序。
func (s *Store) Photos() []Photo {
	return clonePhotos(s.photos)
}

// KPIs 返回指标集合的拷贝。
func (s *Store) KPIs() []KPI {
	return slices.Clone(s.kpis)
}

// Testimonials 返回成员评价集合的拷贝。
func (s *Store) Testimonials() []Testimonial {
	return slices.Clone(s.testimonials)
}

// FAQs 返回常见问题集合的拷贝。
func (s *Store) FAQs() []FAQ {
	return slices.Clone(s.faqs)
}

func cloneTweets(items []Tweet) []Tweet {
	out := slices.Clone(items)
	return out
}

func cloneArticles(items []Article) []Article {
	out := slices.Clone(items)
	for i := range out {
		out[i].Tags = slices.Clone(out[i].Tags)
	}
	return out
}

func cloneCases(items []Case) []Case {
	out := slices.Clone(items)
	for i := range out {
		out[i].Strategies = slices.Clone(out[i].Strategies)
		out[i].Steps = slices.Clone(out[i].Steps)
		out[i].Pitfalls = slices.Clone(out[i].Pitfalls)
		out[i].Takeaways = slices.Clone(out[i].Takeaways)
		out[i].Tags = slices.Clone(out[i].Tags)
	}
	return out
}

func clonePhotos(items []Photo) []Photo {
	out := slices.Clone(items)
	for i := range out {
		out[i].Tags = slices.Clone(out[i].Tags)
	}
	return out
}
