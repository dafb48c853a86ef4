package locale

import "strings"

const (
	LanguageChinese = "zh"
	LanguageEnglish = "en"

	// FilterAll 表示语言维度不做过滤
	FilterAll = "all"
)

// Preference 是站点接口返回给前端的语言环境信息
type Preference struct {
	Language string
	Locale   string
	HTMLLang string
}

// NormalizeLanguage 把各种语言写法归一到 zh/en，无法识别时返回空串。
func NormalizeLanguage(raw string) string {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	if trimmed == "" {
		return ""
	}
	if strings.HasPrefix(trimmed, "zh") || trimmed == "cn" {
		return LanguageChinese
	}
	if strings.HasPrefix(trimmed, "en") {
		return LanguageEnglish
	}
	return ""
}

// LanguageFromAcceptLanguage 从 Accept-Language 头里猜测语言。
func LanguageFromAcceptLanguage(header string) string {
	trimmed := strings.ToLower(strings.TrimSpace(header))
	if trimmed == "" {
		return ""
	}
	if strings.Contains(trimmed, "zh") {
		return LanguageChinese
	}
	if strings.Contains(trimmed, "en") {
		return LanguageEnglish
	}
	return ""
}

// ResolveFilter 把语言筛选参数归一为 all/zh/en。
// 显式传 all 或无法识别的值都视为不过滤。
func ResolveFilter(raw string) string {
	if strings.EqualFold(strings.TrimSpace(raw), FilterAll) {
		return FilterAll
	}
	if normalized := NormalizeLanguage(raw); normalized != "" {
		return normalized
	}
	return FilterAll
}

// PreferenceForLanguage 返回指定语言的完整语言环境，中文为默认。
func PreferenceForLanguage(language string) Preference {
	normalized := NormalizeLanguage(language)
	if normalized == LanguageEnglish {
		return Preference{Language: LanguageEnglish, Locale: "en_US", HTMLLang: "en-US"}
	}
	return Preference{Language: LanguageChinese, Locale: "zh_CN", HTMLLang: "zh-CN"}
}
