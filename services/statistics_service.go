package services

import (
	"GrowthGo/models"
	"context"
	"math"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// StatisticsService 按用户汇总各类记录的数量和完成情况
type StatisticsService struct {
	db *gorm.DB
}

func NewStatisticsService(db *gorm.DB) *StatisticsService {
	return &StatisticsService{db: db}
}

// Get 四个汇总互不依赖，并发查询后合并成一个结果
func (s *StatisticsService) Get(ctx context.Context, userID uint) (*models.StatisticsResponse, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}

	var stats models.StatisticsResponse
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.count(gctx, &models.Inspiration{}, userID, &stats.Inspirations)
	})
	g.Go(func() error {
		return s.count(gctx, &models.Knowledge{}, userID, &stats.Knowledge)
	})
	g.Go(func() error {
		tasks, err := s.taskStatistics(gctx, userID)
		stats.Tasks = tasks
		return err
	})
	g.Go(func() error {
		goals, err := s.goalStatistics(gctx, userID)
		stats.Goals = goals
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (s *StatisticsService) count(ctx context.Context, model interface{}, userID uint, out *int64) error {
	return s.db.WithContext(ctx).Model(model).Scopes(ownedBy(userID)).Count(out).Error
}

func (s *StatisticsService) taskStatistics(ctx context.Context, userID uint) (models.TaskStatistics, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	err := s.db.WithContext(ctx).
		Model(&models.Task{}).
		Select("status, COUNT(*) AS count").
		Scopes(ownedBy(userID)).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return models.TaskStatistics{}, err
	}

	var stats models.TaskStatistics
	for _, row := range rows {
		switch row.Status {
		case models.TaskStatusPending:
			stats.Pending = row.Count
		case models.TaskStatusInProgress:
			stats.InProgress = row.Count
		case models.TaskStatusCompleted:
			stats.Completed = row.Count
		}
	}
	// 只有三种已知状态计入总数
	stats.Total = stats.Pending + stats.InProgress + stats.Completed
	stats.Percentage = percentage(stats.Completed, stats.Total)
	return stats, nil
}

func (s *StatisticsService) goalStatistics(ctx context.Context, userID uint) (models.GoalStatistics, error) {
	var agg struct {
		Total       int64
		ProgressSum int64
	}
	err := s.db.WithContext(ctx).
		Model(&models.Goal{}).
		Select("COUNT(*) AS total, COALESCE(SUM(progress), 0) AS progress_sum").
		Scopes(ownedBy(userID)).
		Scan(&agg).Error
	if err != nil {
		return models.GoalStatistics{}, err
	}

	stats := models.GoalStatistics{Total: agg.Total}
	if agg.Total > 0 {
		stats.AverageProgress = roundHalfUp(float64(agg.ProgressSum) / float64(agg.Total))
	}
	return stats, nil
}

// percentage 返回 round(part/total*100)，total 为0时返回0
func percentage(part, total int64) int {
	if total <= 0 {
		return 0
	}
	return roundHalfUp(float64(part) / float64(total) * 100)
}

func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
