package services

import (
	"GrowthGo/models"
	"strings"
	"testing"
)

func TestAnalyzeEmptyWindow(t *testing.T) {
	db := newTestDB(t)
	uid := createTestUser(t, db, "alice")
	// 窗口期之外的记录不参与分析
	insertAt(t, db, &models.Task{UserID: uid, Title: "old rust work", Status: "completed", CreatedAt: daysAgo(40)})

	resp, err := NewAnalysisService(db, AnalysisOptions{}).Analyze(ctx, uid)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if len(resp.Suggestions) != 1 || !strings.Contains(resp.Suggestions[0], "30天") {
		t.Fatalf("expected a single starter suggestion, got %v", resp.Suggestions)
	}
	if resp.Recommendations == nil || len(resp.Recommendations) != 0 {
		t.Fatalf("expected empty recommendations, got %#v", resp.Recommendations)
	}
}

func TestAnalyzeMetrics(t *testing.T) {
	db := newTestDB(t)
	uid := createTestUser(t, db, "alice")
	other := createTestUser(t, db, "bob")

	for i, status := range []string{"completed", "completed", "completed", "pending"} {
		insertAt(t, db, &models.Task{UserID: uid, Title: "kubernetes upgrade", Status: status, CreatedAt: daysAgo(i + 1)})
	}
	insertAt(t, db, &models.Goal{UserID: uid, Title: "done", Progress: 100, CreatedAt: daysAgo(2)})
	insertAt(t, db, &models.Goal{UserID: uid, Title: "half", Progress: 40, CreatedAt: daysAgo(2)})
	insertAt(t, db, &models.Goal{UserID: uid, Title: "start", Progress: 20, CreatedAt: daysAgo(2)})
	insertAt(t, db, &models.Task{UserID: other, Title: "bob", Status: "pending", CreatedAt: daysAgo(1)})

	resp, err := NewAnalysisService(db, AnalysisOptions{}).Analyze(ctx, uid)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}

	joined := strings.Join(resp.Suggestions, "\n")
	for _, want := range []string{"kubernetes", "任务完成率为 75%", "2 个进行中的目标，平均进度 30%", "每周固定时间"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("expected suggestions to mention %q, got:\n%s", want, joined)
		}
	}
	if strings.Contains(joined, "灵感") {
		t.Fatalf("no inspirations recorded, got:\n%s", joined)
	}
	if len(resp.Recommendations) == 0 || resp.Recommendations[0].Title != "「kubernetes」相关文章推荐" {
		t.Fatalf("unexpected recommendations %+v", resp.Recommendations)
	}
}

func TestAnalyzeLowCompletionRate(t *testing.T) {
	db := newTestDB(t)
	uid := createTestUser(t, db, "alice")
	insertAt(t, db, &models.Task{UserID: uid, Title: "a", Status: "completed", CreatedAt: daysAgo(1)})
	insertAt(t, db, &models.Task{UserID: uid, Title: "b", Status: "pending", CreatedAt: daysAgo(1)})
	insertAt(t, db, &models.Task{UserID: uid, Title: "c", Status: "in_progress", CreatedAt: daysAgo(1)})

	resp, err := NewAnalysisService(db, AnalysisOptions{}).Analyze(ctx, uid)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	joined := strings.Join(resp.Suggestions, "\n")
	if !strings.Contains(joined, "任务完成率为 33%") || !strings.Contains(joined, "拆成更小的步骤") {
		t.Fatalf("expected low completion advice, got:\n%s", joined)
	}
	if !strings.Contains(joined, "没有进行中的目标") {
		t.Fatalf("expected goal prompt, got:\n%s", joined)
	}
}

func TestAnalyzeRecommendationURLEscaped(t *testing.T) {
	db := newTestDB(t)
	uid := createTestUser(t, db, "alice")
	insertAt(t, db, &models.Inspiration{UserID: uid, Content: "并发 并发 rust", CreatedAt: daysAgo(3)})

	svc := NewAnalysisService(db, AnalysisOptions{KeywordLimit: 1, SearchEngineURL: "https://example.com/s?q="})
	resp, err := svc.Analyze(ctx, uid)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if len(resp.Recommendations) != 1 {
		t.Fatalf("expected 1 recommendation, got %+v", resp.Recommendations)
	}
	if got := resp.Recommendations[0].URL; got != "https://example.com/s?q=%E5%B9%B6%E5%8F%91" {
		t.Fatalf("unexpected url %q", got)
	}
	if !strings.Contains(strings.Join(resp.Suggestions, "\n"), "1 条灵感") {
		t.Fatalf("expected inspiration suggestion, got %v", resp.Suggestions)
	}
}
