package store

import (
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

// uniqueViolation 為 Postgres unique_violation 錯誤碼
const uniqueViolation = "23505"

// newID 產生新紀錄的主鍵，測試可覆寫
var newID = uuid.NewString

// IsUniqueViolation 判斷是否為唯一鍵衝突
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// translate 將 driver 錯誤轉為 store 的哨兵錯誤，其餘原樣回傳
func translate(err error) error {
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return ErrNotFound
	case IsUniqueViolation(err):
		return errors.Join(ErrDuplicate, err)
	}
	return err
}
