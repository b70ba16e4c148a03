package commands

import (
	"GrowthGo/config"
	"GrowthGo/routes"
	"GrowthGo/utils"
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "启动 HTTP 服务",
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := setup()
		if err != nil {
			return err
		}
		defer config.Logger.Sync()

		if servePort != "" {
			conf.ServerPort = servePort
		}
		if conf.JWTSecretGenerated {
			config.Logger.Warnw("未配置 JWT_SECRET，已生成临时密钥，重启后所有令牌失效", "environment", conf.Environment)
		}
		utils.InitJWT(conf.JWTSecret, time.Duration(conf.JWTExpireHours)*time.Hour)

		// 初始化数据库
		if err := config.InitDB(conf); err != nil {
			return fmt.Errorf("无法初始化数据库: %w", err)
		}
		defer config.CloseDB(config.DB)

		// 初始化Redis
		if err := config.InitRedis(conf); err != nil {
			return fmt.Errorf("无法初始化Redis: %w", err)
		}
		if config.RedisClient != nil {
			defer config.RedisClient.Close()
		}

		// 设置Gin模式
		if conf.IsProduction() {
			gin.SetMode(gin.ReleaseMode)
		}

		r := routes.NewRouter(conf, config.DB, config.RedisClient)

		// 创建HTTP服务器
		srv := &http.Server{
			Addr:    ":" + conf.ServerPort,
			Handler: r,
		}

		// 在goroutine中启动服务器
		errCh := make(chan error, 1)
		go func() {
			config.Logger.Infow("启动服务器", "port", conf.ServerPort, "driver", conf.DBDriver)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				errCh <- err
			}
		}()

		// 等待中断信号以实现优雅关闭
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		select {
		case err := <-errCh:
			return fmt.Errorf("服务器启动失败: %w", err)
		case <-quit:
		}
		config.Logger.Infow("正在关闭服务器...")

		// 创建超时上下文
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("服务器关闭失败: %w", err)
		}
		config.Logger.Infow("服务器已关闭")
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "监听端口，覆盖 SERVER_PORT")
}
