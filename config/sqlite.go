package config

import (
	"database/sql/driver"
	"strings"

	gosqlite "github.com/glebarez/go-sqlite"
)

// SQLiteLowerFunc SQLite 内置 LOWER 只转换 ASCII，按 Unicode 折叠大小写时使用这个函数
const SQLiteLowerFunc = "unicode_lower"

// 必须在打开任何连接之前注册，只对之后新建的连接生效
func init() {
	gosqlite.MustRegisterDeterministicScalarFunction(SQLiteLowerFunc, 1, unicodeLower)
}

func unicodeLower(_ *gosqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	switch v := args[0].(type) {
	case string:
		return strings.ToLower(v), nil
	case []byte:
		return strings.ToLower(string(v)), nil
	default:
		return v, nil
	}
}
