package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	ErrValidation   = errors.New("参数校验失败")
	ErrUnauthorized = errors.New("认证失败")
	ErrNotFound     = errors.New("记录不存在或无权访问")
	ErrConflict     = errors.New("记录已存在")
)

// translateError 把 gorm 的错误归入服务层错误类型，其余原样返回
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", ErrConflict, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: 关联的记录不存在", ErrValidation)
	default:
		return err
	}
}

func validationError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
