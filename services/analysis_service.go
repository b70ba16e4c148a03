package services

import (
	"GrowthGo/models"
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const completionRateThreshold = 70

// AnalysisOptions 成长分析参数
type AnalysisOptions struct {
	WindowDays      int
	KeywordLimit    int
	SearchEngineURL string
}

// AnalysisService 基于规则的近期记录分析：提取关键词，统计完成率，套用固定模板生成建议
type AnalysisService struct {
	db   *gorm.DB
	opts AnalysisOptions
	now  func() time.Time
}

func NewAnalysisService(db *gorm.DB, opts AnalysisOptions) *AnalysisService {
	if opts.WindowDays <= 0 {
		opts.WindowDays = 30
	}
	if opts.KeywordLimit <= 0 {
		opts.KeywordLimit = 5
	}
	if opts.SearchEngineURL == "" {
		opts.SearchEngineURL = "https://www.google.com/search?q="
	}
	return &AnalysisService{db: db, opts: opts, now: time.Now}
}

type recentRecords struct {
	inspirations []models.Inspiration
	knowledge    []models.Knowledge
	tasks        []models.Task
	goals        []models.Goal
}

type analysisMetrics struct {
	records        int
	inspirations   int
	tasks          int
	completedTasks int
	completionRate int
	activeGoals    int
	activeProgress int
	keywords       []string
}

func (s *AnalysisService) Analyze(ctx context.Context, userID uint) (*models.AnalysisResponse, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}

	records, err := s.loadRecent(ctx, userID)
	if err != nil {
		return nil, err
	}

	metrics := s.computeMetrics(records)
	return &models.AnalysisResponse{
		Suggestions:     buildSuggestions(metrics, s.opts.WindowDays),
		Recommendations: s.buildRecommendations(metrics.keywords),
	}, nil
}

// loadRecent 并发读取窗口期内的四类记录
func (s *AnalysisService) loadRecent(ctx context.Context, userID uint) (*recentRecords, error) {
	since := s.now().AddDate(0, 0, -s.opts.WindowDays)
	recent := func(ctx context.Context) *gorm.DB {
		return s.db.WithContext(ctx).Scopes(ownedBy(userID)).Where("created_at >= ?", since).Order("created_at ASC")
	}

	var r recentRecords
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return recent(gctx).Find(&r.inspirations).Error })
	g.Go(func() error { return recent(gctx).Find(&r.knowledge).Error })
	g.Go(func() error { return recent(gctx).Find(&r.tasks).Error })
	g.Go(func() error { return recent(gctx).Find(&r.goals).Error })
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *AnalysisService) computeMetrics(r *recentRecords) analysisMetrics {
	var text strings.Builder
	write := func(parts ...string) {
		for _, p := range parts {
			text.WriteString(p)
			text.WriteByte(' ')
		}
	}
	for _, i := range r.inspirations {
		write(i.Content, i.Tags)
	}
	for _, k := range r.knowledge {
		write(k.Title, k.Content, k.Category)
	}
	for _, t := range r.tasks {
		write(t.Title, t.Description)
	}
	for _, g := range r.goals {
		write(g.Title, g.Description)
	}

	m := analysisMetrics{
		records:      len(r.inspirations) + len(r.knowledge) + len(r.tasks) + len(r.goals),
		inspirations: len(r.inspirations),
		tasks:        len(r.tasks),
		keywords:     ExtractKeywords(text.String(), s.opts.KeywordLimit),
	}

	for _, t := range r.tasks {
		if t.Status == models.TaskStatusCompleted {
			m.completedTasks++
		}
	}
	m.completionRate = percentage(int64(m.completedTasks), int64(m.tasks))

	progressSum := 0
	for _, g := range r.goals {
		if g.Progress < 100 {
			m.activeGoals++
			progressSum += g.Progress
		}
	}
	if m.activeGoals > 0 {
		m.activeProgress = roundHalfUp(float64(progressSum) / float64(m.activeGoals))
	}
	return m
}

func buildSuggestions(m analysisMetrics, windowDays int) []string {
	if m.records == 0 {
		return []string{
			fmt.Sprintf("最近%d天还没有任何记录，从写下一条灵感开始吧。", windowDays),
		}
	}

	suggestions := make([]string, 0, 4)
	if len(m.keywords) > 0 {
		suggestions = append(suggestions,
			fmt.Sprintf("你最近关注的主题集中在：%s。", strings.Join(m.keywords, "、")))
	}

	switch {
	case m.tasks == 0:
		suggestions = append(suggestions, "最近没有新建任务，可以为目标拆分出几个可执行的任务。")
	case m.completionRate >= completionRateThreshold:
		suggestions = append(suggestions,
			fmt.Sprintf("任务完成率为 %d%%，执行力很棒，继续保持！", m.completionRate))
	default:
		suggestions = append(suggestions,
			fmt.Sprintf("任务完成率为 %d%%，建议把大任务拆成更小的步骤，并优先处理高优先级任务。", m.completionRate))
	}

	if m.activeGoals > 0 {
		s := fmt.Sprintf("你有 %d 个进行中的目标，平均进度 %d%%。", m.activeGoals, m.activeProgress)
		if m.activeProgress < 50 {
			s += "建议每周固定时间回顾一次目标进度。"
		}
		suggestions = append(suggestions, s)
	} else {
		suggestions = append(suggestions, "目前没有进行中的目标，试着设定一个本周目标吧。")
	}

	if m.inspirations > 0 {
		suggestions = append(suggestions,
			fmt.Sprintf("最近记录了 %d 条灵感，挑一条转化为具体任务吧。", m.inspirations))
	}
	return suggestions
}

func (s *AnalysisService) buildRecommendations(keywords []string) []models.Recommendation {
	recs := make([]models.Recommendation, 0, len(keywords))
	for _, kw := range keywords {
		recs = append(recs, models.Recommendation{
			Title: fmt.Sprintf("「%s」相关文章推荐", kw),
			URL:   s.opts.SearchEngineURL + url.QueryEscape(kw),
		})
	}
	return recs
}
