package commands

import (
	"GrowthGo/config"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var configPath string

var rootCmd = &cobra.Command{
	Use:   "growth",
	Short: "GrowthGo - 个人成长记录服务",
	Long: `GrowthGo 记录灵感、知识笔记、任务和目标，
提供全局搜索、统计汇总和基于规则的成长分析接口。`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", ".", "包含 .env 配置文件的目录")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup 加载配置并初始化日志和数据库，serve 和 migrate 共用
func setup() (config.Config, error) {
	conf, err := config.LoadConfig(configPath)
	if err != nil {
		return conf, fmt.Errorf("无法加载配置: %w", err)
	}
	if err := config.InitLogger(conf.LogDir); err != nil {
		return conf, fmt.Errorf("无法初始化日志: %w", err)
	}
	return conf, nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "显示版本号",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("growth %s\n", version)
	},
}
