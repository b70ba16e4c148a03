package commands

import (
	"GrowthGo/config"
	"fmt"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "执行数据库表结构迁移",
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := setup()
		if err != nil {
			return err
		}
		defer config.Logger.Sync()

		db, err := config.OpenDB(conf)
		if err != nil {
			return fmt.Errorf("无法初始化数据库: %w", err)
		}
		defer config.CloseDB(db)

		if err := config.MigrateDB(db); err != nil {
			return err
		}
		config.Logger.Infow("数据库迁移完成", "driver", conf.DBDriver)
		return nil
	},
}
