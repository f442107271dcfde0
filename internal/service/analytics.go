package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"feedback-admin/internal/database"
	"feedback-admin/internal/model"
	"feedback-admin/internal/store"
)

// TopTopicsLimit 為報表中熱門議題的筆數
const TopTopicsLimit = 5

// TrendDays 為每週趨勢涵蓋的天數 (含今天)
const TrendDays = 7

var (
	countTopics           = store.CountTopics
	topTopics             = store.TopTopics
	countTopicsByCategory = store.CountTopicsByCategory
	topicCreationTimes    = store.TopicCreationTimes
)

// DailyCount 單日的議題數
type DailyCount struct {
	Date  string `json:"date"`
	Year  int    `json:"year"`
	Month int    `json:"month"`
	Day   int    `json:"day"`
	Count int64  `json:"count"`
}

// AnalyticsReport 管理後台分析報表
type AnalyticsReport struct {
	TotalSubmissions     int64                 `json:"totalSubmissions"`
	TopTopics            []model.Topic         `json:"topTopics"`
	CategoryDistribution []model.CategoryCount `json:"categoryDistribution"`
	WeeklyTrends         []DailyCount          `json:"weeklyTrends"`
	SelectedCategory     string                `json:"selectedCategory"`
}

// BuildAnalytics 依分類篩選產生報表；category 為空代表全部。
// 任一查詢失敗即整份報表失敗。
func BuildAnalytics(ctx context.Context, db database.DB, category model.Category, now time.Time) (*AnalyticsReport, error) {
	total, err := countTopics(ctx, db, category)
	if err != nil {
		return nil, fmt.Errorf("BuildAnalytics: %w", err)
	}

	top, err := topTopics(ctx, db, category, TopTopicsLimit)
	if err != nil {
		return nil, fmt.Errorf("BuildAnalytics: %w", err)
	}

	distribution, err := countTopicsByCategory(ctx, db, category)
	if err != nil {
		return nil, fmt.Errorf("BuildAnalytics: %w", err)
	}

	start := TrendWindowStart(now)
	times, err := topicCreationTimes(ctx, db, category, start, now)
	if err != nil {
		return nil, fmt.Errorf("BuildAnalytics: %w", err)
	}

	return &AnalyticsReport{
		TotalSubmissions:     total,
		TopTopics:            top,
		CategoryDistribution: distribution,
		WeeklyTrends:         WeeklyTrend(times, now),
		SelectedCategory:     category.Label(),
	}, nil
}

// TrendWindowStart 回傳 now 所在時區、六天前的 00:00
func TrendWindowStart(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day()-(TrendDays-1), 0, 0, 0, 0, now.Location())
}

// WeeklyTrend 將 [TrendWindowStart(now), now] 內的時間依 now 時區的日曆日分組，
// 依日期遞增排序；沒有資料的日期不會出現。
func WeeklyTrend(times []time.Time, now time.Time) []DailyCount {
	loc := now.Location()
	start := TrendWindowStart(now)

	type day struct {
		y int
		m time.Month
		d int
	}
	counts := map[day]int64{}
	for _, ts := range times {
		if ts.Before(start) || ts.After(now) {
			continue
		}
		local := ts.In(loc)
		counts[day{local.Year(), local.Month(), local.Day()}]++
	}

	trend := make([]DailyCount, 0, len(counts))
	for k, n := range counts {
		trend = append(trend, DailyCount{
			Date:  fmt.Sprintf("%04d-%02d-%02d", k.y, int(k.m), k.d),
			Year:  k.y,
			Month: int(k.m),
			Day:   k.d,
			Count: n,
		})
	}
	sort.Slice(trend, func(i, j int) bool { return trend[i].Date < trend[j].Date })
	return trend
}
