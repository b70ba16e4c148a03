package services

import (
	"GrowthGo/config"
	"GrowthGo/models"
	"context"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// likeEscaper 让 % 和 _ 按字面匹配，转义符统一使用 '!'，三种数据库都支持
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// SearchService 对四种记录分别做不区分大小写的子串匹配，合并后按创建时间倒序
type SearchService struct {
	db *gorm.DB
}

func NewSearchService(db *gorm.DB) *SearchService {
	return &SearchService{db: db}
}

// Search 四个子查询并发执行，任一失败则整个搜索失败，不返回部分结果
func (s *SearchService) Search(ctx context.Context, userID uint, q string) ([]models.SearchResult, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	if q == "" {
		return []models.SearchResult{}, nil
	}
	pattern := "%" + likeEscaper.Replace(strings.ToLower(q)) + "%"

	branches := []func(context.Context, uint, string) ([]models.SearchResult, error){
		s.searchInspirations,
		s.searchKnowledge,
		s.searchTasks,
		s.searchGoals,
	}
	parts := make([][]models.SearchResult, len(branches))

	g, gctx := errgroup.WithContext(ctx)
	for i, branch := range branches {
		i, branch := i, branch
		g.Go(func() error {
			rows, err := branch(gctx, userID, pattern)
			if err != nil {
				return err
			}
			parts[i] = rows
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	results := make([]models.SearchResult, 0)
	for _, part := range parts {
		results = append(results, part...)
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].CreatedAt.After(results[j].CreatedAt)
	})
	return results, nil
}

func (s *SearchService) matching(ctx context.Context, userID uint, pattern string, columns ...string) *gorm.DB {
	conds := make([]string, len(columns))
	args := make([]interface{}, len(columns))
	for i, col := range columns {
		conds[i] = s.likeCondition(col)
		args[i] = pattern
	}
	return s.db.WithContext(ctx).
		Scopes(ownedBy(userID)).
		Where("("+strings.Join(conds, " OR ")+")", args...)
}

// likeCondition 列和模式必须用同样的规则折叠大小写，模式已在 Go 里按 Unicode 转小写
func (s *SearchService) likeCondition(col string) string {
	switch s.db.Dialector.Name() {
	case "sqlite":
		return config.SQLiteLowerFunc + "(" + col + ") LIKE ? ESCAPE '!'"
	case "postgres":
		return col + " ILIKE ? ESCAPE '!'"
	default:
		return "LOWER(" + col + ") LIKE ? ESCAPE '!'"
	}
}

func (s *SearchService) searchInspirations(ctx context.Context, userID uint, pattern string) ([]models.SearchResult, error) {
	var rows []models.Inspiration
	if err := s.matching(ctx, userID, pattern, "content", "tags").Find(&rows).Error; err != nil {
		return nil, err
	}
	results := make([]models.SearchResult, 0, len(rows))
	for _, r := range rows {
		results = append(results, models.SearchResult{
			Type:      models.SearchTypeInspiration,
			ID:        r.ID,
			Title:     r.Content,
			Content:   r.Content,
			CreatedAt: r.CreatedAt,
			Tags:      r.Tags,
		})
	}
	return results, nil
}

func (s *SearchService) searchKnowledge(ctx context.Context, userID uint, pattern string) ([]models.SearchResult, error) {
	var rows []models.Knowledge
	if err := s.matching(ctx, userID, pattern, "title", "content", "category").Find(&rows).Error; err != nil {
		return nil, err
	}
	results := make([]models.SearchResult, 0, len(rows))
	for _, r := range rows {
		results = append(results, models.SearchResult{
			Type:      models.SearchTypeKnowledge,
			ID:        r.ID,
			Title:     r.Title,
			Content:   r.Content,
			CreatedAt: r.CreatedAt,
			Category:  r.Category,
			Source:    r.Source,
		})
	}
	return results, nil
}

func (s *SearchService) searchTasks(ctx context.Context, userID uint, pattern string) ([]models.SearchResult, error) {
	var rows []models.Task
	if err := s.matching(ctx, userID, pattern, "title", "description").Find(&rows).Error; err != nil {
		return nil, err
	}
	results := make([]models.SearchResult, 0, len(rows))
	for _, r := range rows {
		results = append(results, models.SearchResult{
			Type:      models.SearchTypeTask,
			ID:        r.ID,
			Title:     r.Title,
			Content:   r.Description,
			CreatedAt: r.CreatedAt,
			Status:    r.Status,
			Priority:  r.Priority,
		})
	}
	return results, nil
}

func (s *SearchService) searchGoals(ctx context.Context, userID uint, pattern string) ([]models.SearchResult, error) {
	var rows []models.Goal
	if err := s.matching(ctx, userID, pattern, "title", "description").Find(&rows).Error; err != nil {
		return nil, err
	}
	results := make([]models.SearchResult, 0, len(rows))
	for _, r := range rows {
		progress := r.Progress
		results = append(results, models.SearchResult{
			Type:      models.SearchTypeGoal,
			ID:        r.ID,
			Title:     r.Title,
			Content:   r.Description,
			CreatedAt: r.CreatedAt,
			GoalType:  r.Type,
			Progress:  &progress,
		})
	}
	return results, nil
}
