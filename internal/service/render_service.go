package service

import (
	"bytes"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify, extension.Table),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
	)
	sanitizer = bluemonday.UGCPolicy()
)

// RenderService 把成员投稿的 Markdown 正文渲染成净化后的 HTML。
// 渲染结果对调用方是不透明的展示内容。
type RenderService struct{}

// NewRenderService 构造 RenderService 实例。
func NewRenderService() *RenderService {
	return &RenderService{}
}

// Render 渲染并净化 Markdown，输出可直接嵌入页面的 HTML 字符串。
func (s *RenderService) Render(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return sanitizer.Sanitize(buf.String()), nil
}
