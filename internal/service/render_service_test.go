package service

import (
	"strings"
	"testing"
)

func TestRenderMarkdownToHTML(t *testing.T) {
	svc := NewRenderService()

	html, err := svc.Render("## 冲突\n先抛出**反直觉**结论")
	if err != nil {
		t.Fatalf("failed to render: %v", err)
	}
	if !strings.Contains(html, "<h2") || !strings.Contains(html, "<strong>反直觉</strong>") {
		t.Fatalf("unexpected html: %q", html)
	}
}

func TestRenderStripsScriptTags(t *testing.T) {
	svc := NewRenderService()

	html, err := svc.Render("正文<script>alert('x')</script>继续")
	if err != nil {
		t.Fatalf("failed to render: %v", err)
	}
	if strings.Contains(html, "<script") || strings.Contains(html, "alert(") {
		t.Fatalf("script must be sanitized, got %q", html)
	}
}
