// File: internal/store/topic.go
package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"feedback-admin/internal/database"
	"feedback-admin/internal/model"

	"github.com/jackc/pgx/v5"
)

const topicColumns = `id::text, title, description, category, votes, created_at, updated_at`

// categoryFilter 空分類代表不篩選
const categoryFilter = `($1 = '' OR category = $1)`

func scanTopic(row pgx.Row) (*model.Topic, error) {
	t := &model.Topic{}
	var category string
	if err := row.Scan(
		&t.ID,
		&t.Title,
		&t.Description,
		&category,
		&t.Votes,
		&t.CreatedAt,
		&t.UpdatedAt,
	); err != nil {
		return nil, err
	}
	t.Category = model.Category(category)
	return t, nil
}

func collectTopics(rows pgx.Rows) ([]model.Topic, error) {
	defer rows.Close()
	topics := []model.Topic{}
	for rows.Next() {
		t, err := scanTopic(rows)
		if err != nil {
			return nil, err
		}
		topics = append(topics, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return topics, nil
}

func ListTopics(ctx context.Context, db database.DB) ([]model.Topic, error) {
	rows, err := db.Query(ctx,
		`SELECT `+topicColumns+`
		 FROM topics ORDER BY created_at DESC, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListTopics: %w", err)
	}
	topics, err := collectTopics(rows)
	if err != nil {
		return nil, fmt.Errorf("ListTopics: %w", err)
	}
	return topics, nil
}

func CreateTopic(ctx context.Context, db database.DB, t *model.Topic) (*model.Topic, error) {
	if t.ID == "" {
		t.ID = newID()
	}
	row := db.QueryRow(ctx,
		`INSERT INTO topics (id, title, description, category, votes)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at, updated_at`,
		t.ID,
		t.Title,
		t.Description,
		string(t.Category),
		t.Votes,
	)
	if err := row.Scan(&t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, fmt.Errorf("CreateTopic: %w", translate(err))
	}
	return t, nil
}

// UpdateTopic 只更新非 nil 欄位，找不到議題時回傳 ErrNotFound
func UpdateTopic(ctx context.Context, db database.DB, topicID string, upd model.TopicUpdate) error {
	var (
		sets []string
		args []any
	)
	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if upd.Title != nil {
		add("title", *upd.Title)
	}
	if upd.Description != nil {
		add("description", *upd.Description)
	}
	if upd.Category != nil {
		add("category", string(*upd.Category))
	}
	if upd.Votes != nil {
		add("votes", *upd.Votes)
	}
	sets = append(sets, "updated_at = NOW()")
	args = append(args, topicID)

	tag, err := db.Exec(ctx,
		fmt.Sprintf(`UPDATE topics SET %s WHERE id = $%d`, strings.Join(sets, ", "), len(args)),
		args...,
	)
	if err != nil {
		return fmt.Errorf("UpdateTopic: %w", translate(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("UpdateTopic: %w", ErrNotFound)
	}
	return nil
}

// DeleteTopic 刪除不存在的 ID 不視為錯誤
func DeleteTopic(ctx context.Context, db database.DB, topicID string) error {
	_, err := db.Exec(ctx,
		`DELETE FROM topics WHERE id = $1`,
		topicID,
	)
	if err != nil {
		return fmt.Errorf("DeleteTopic: %w", err)
	}
	return nil
}

func CountTopics(ctx context.Context, db database.DB, category model.Category) (int64, error) {
	var n int64
	if err := db.QueryRow(ctx,
		`SELECT COUNT(*) FROM topics WHERE `+categoryFilter,
		string(category),
	).Scan(&n); err != nil {
		return 0, fmt.Errorf("CountTopics: %w", err)
	}
	return n, nil
}

// TopTopics 依票數排序，同票以建立時間 (即寫入順序) 再以 id 排序
func TopTopics(ctx context.Context, db database.DB, category model.Category, limit int) ([]model.Topic, error) {
	rows, err := db.Query(ctx,
		`SELECT `+topicColumns+`
		 FROM topics WHERE `+categoryFilter+`
		 ORDER BY votes DESC, created_at ASC, id ASC
		 LIMIT $2`,
		string(category),
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("TopTopics: %w", err)
	}
	topics, err := collectTopics(rows)
	if err != nil {
		return nil, fmt.Errorf("TopTopics: %w", err)
	}
	return topics, nil
}

// CountTopicsByCategory 依資料庫中原始的 category 值分組
func CountTopicsByCategory(ctx context.Context, db database.DB, category model.Category) ([]model.CategoryCount, error) {
	rows, err := db.Query(ctx,
		`SELECT category, COUNT(*)
		 FROM topics WHERE `+categoryFilter+`
		 GROUP BY category
		 ORDER BY category`,
		string(category),
	)
	if err != nil {
		return nil, fmt.Errorf("CountTopicsByCategory: %w", err)
	}
	defer rows.Close()

	counts := []model.CategoryCount{}
	for rows.Next() {
		var c model.CategoryCount
		if err := rows.Scan(&c.Category, &c.Count); err != nil {
			return nil, fmt.Errorf("CountTopicsByCategory: %w", err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("CountTopicsByCategory: %w", err)
	}
	return counts, nil
}

// TopicCreationTimes 回傳 [from, to] 區間內建立的議題時間
func TopicCreationTimes(ctx context.Context, db database.DB, category model.Category, from, to time.Time) ([]time.Time, error) {
	rows, err := db.Query(ctx,
		`SELECT created_at
		 FROM topics WHERE `+categoryFilter+`
		   AND created_at >= $2 AND created_at <= $3
		 ORDER BY created_at`,
		string(category),
		from,
		to,
	)
	if err != nil {
		return nil, fmt.Errorf("TopicCreationTimes: %w", err)
	}
	defer rows.Close()

	var times []time.Time
	for rows.Next() {
		var ts time.Time
		if err := rows.Scan(&ts); err != nil {
			return nil, fmt.Errorf("TopicCreationTimes: %w", err)
		}
		times = append(times, ts)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("TopicCreationTimes: %w", err)
	}
	return times, nil
}
