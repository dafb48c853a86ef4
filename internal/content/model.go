package content

// Lang 标识内容语言
type Lang string

const (
	LangChinese Lang = "zh"
	LangEnglish Lang = "en"
)

// TweetTopic 是推文的固定主题分类
type TweetTopic string

const (
	TopicGrowth  TweetTopic = "growth"
	TopicWriting TweetTopic = "writing"
	TopicCase    TweetTopic = "case"
	TopicTooling TweetTopic = "tooling"
	TopicOther   TweetTopic = "other"
)

// TweetStats 汇总单条推文的互动数据
type TweetStats struct {
	Likes     int `json:"likes"`
	Bookmarks int `json:"bookmarks"`
	Views     int `json:"views"`
	Reposts   int `json:"reposts,omitempty"`
}

// Tweet 表示推文精选库中的一条记录，id 在集合内唯一
type Tweet struct {
	ID           string     `json:"id"`
	AuthorName   string     `json:"authorName"`
	AuthorHandle string     `json:"authorHandle"`
	AuthorAvatar string     `json:"authorAvatar"`
	Lang         Lang       `json:"lang"`
	Topic        TweetTopic `json:"topic"`
	PostedAt     string     `json:"postedAt"`
	Content      string     `json:"content"`
	Stats        TweetStats `json:"stats"`
	URL          string     `json:"url"`
	Recap        string     `json:"recap,omitempty"`
	Featured     bool       `json:"featured,omitempty"`
}

// ArticleCategory 是写作方法库文章的固定分类
type ArticleCategory string

const (
	CategoryTopic     ArticleCategory = "topic"
	CategoryStructure ArticleCategory = "structure"
	CategoryHook      ArticleCategory = "hook"
	CategoryWorkflow  ArticleCategory = "workflow"
	CategoryReview    ArticleCategory = "review"
)

// Article 表示写作方法库中的一篇文章，slug 在集合内唯一
type Article struct {
	Slug           string          `json:"slug"`
	Title          string          `json:"title"`
	Lang           Lang            `json:"lang"`
	Category       ArticleCategory `json:"category"`
	Summary        string          `json:"summary"`
	ReadingMinutes int             `json:"readingMinutes"`
	PublishedAt    string          `json:"publishedAt"`
	Cover          string          `json:"cover,omitempty"`
	Tags           []string        `json:"tags"`
}

// GrowthStage 标识增长案例对应的粉丝规模阶段
type GrowthStage string

const (
	StageSeed   GrowthStage = "0-1k"
	StageEarly  GrowthStage = "1k-10k"
	StageScale  GrowthStage = "10k-100k"
	StageMature GrowthStage = "100k+"
)

// CaseImpact 记录案例的关键结果数字
type CaseImpact struct {
	FollowersDelta int `json:"followersDelta"`
	Views          int `json:"views"`
	Revenue        int `json:"revenue,omitempty"`
}

// Case 表示一个增长案例拆解，slug 在集合内唯一
type Case struct {
	Slug       string      `json:"slug"`
	Title      string      `json:"title"`
	Stage      GrowthStage `json:"stage"`
	Strategies []string    `json:"strategies"`
	Timeline   string      `json:"timeline"`
	Impact     CaseImpact  `json:"impact"`
	Steps      []string    `json:"steps"`
	Pitfalls   []string    `json:"pitfalls"`
	Takeaways  []string    `json:"takeaways"`
	Tags       []string    `json:"tags"`
}

// Photo 表示照片墙中的一张照片
type Photo struct {
	ID      string   `json:"id"`
	Src     string   `json:"src"`
	W       int      `json:"w"`
	H       int      `json:"h"`
	Tags    []string `json:"tags"`
	Caption string   `json:"caption,omitempty"`
	TakenAt string   `json:"takenAt,omitempty"`
}

// KPI 是首页展示的关键指标，仅用于展示
type KPI struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Value       string `json:"value"`
	Description string `json:"description,omitempty"`
}

// Testimonial 是成员评价，仅用于展示
type Testimonial struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Avatar string `json:"avatar"`
	Quote  string `json:"quote"`
	Lang   Lang   `json:"lang"`
}

// FAQ 是常见问题条目，仅用于展示
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Lang     Lang   `json:"lang"`
}

// SearchResultType 标识搜索结果来自哪个集合
type SearchResultType string

const (
	ResultTweet   SearchResultType = "tweet"
	ResultArticle SearchResultType = "article"
	ResultCase    SearchResultType = "case"
	ResultPhoto   SearchResultType = "photo"
)

// SearchResult 是跨集合搜索的派生结果，不做持久化
type SearchResult struct {
	Type        SearchResultType `json:"type"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Href        string           `json:"href"`
	Tags        []string         `json:"tags,omitempty"`
}
