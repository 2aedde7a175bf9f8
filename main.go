package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/fachebot/container-tooltips/internal/config"
	"github.com/fachebot/container-tooltips/internal/logger"
	"github.com/fachebot/container-tooltips/internal/notify"
	"github.com/fachebot/container-tooltips/internal/scene"
	"github.com/fachebot/container-tooltips/internal/scheduler"
	"github.com/fachebot/container-tooltips/internal/svc"

	"github.com/spf13/cobra"
)

var (
	configFile string
	tooltip    bool
)

var rootCmd = &cobra.Command{
	Use:           "container-tooltips",
	Short:         "Summarize storage contents and filter settings as status text",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var contentsCmd = &cobra.Command{
	Use:   "contents <scene.yaml>",
	Short: "Print the contents status text of every storage object",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svcCtx, sc, err := setup(args[0])
		if err != nil {
			return err
		}
		return printObjects(cmd, svcCtx, sc, sc.Storages(), tooltip)
	},
}

var filtersCmd = &cobra.Command{
	Use:   "filters <scene.yaml>",
	Short: "Print the filter summary of every filterable object",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svcCtx, sc, err := setup(args[0])
		if err != nil {
			return err
		}
		return printObjects(cmd, svcCtx, sc, sc.Filtered(), tooltip)
	},
}

var watchCmd = &cobra.Command{
	Use:   "watch <scene.yaml>",
	Short: "Reload the scene on the configured schedule and print its status text",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadConfig()
		if err != nil {
			return err
		}
		svcCtx := svc.NewServiceContext(c)

		// 创建通知器并启动调度器
		notifierInstance := notify.NewNotifier(cmd.OutOrStdout(), &c.Watch)
		schedulerInstance := scheduler.NewScheduler(svcCtx, notifierInstance, args[0], &c.Watch)
		if err := schedulerInstance.Start(); err != nil {
			return fmt.Errorf("[Scheduler] 启动调度器失败: %w", err)
		}

		// 等待程序退出
		ch := make(chan os.Signal, 2)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
		<-ch

		logger.Infof("正在关闭服务...")
		schedulerInstance.Stop()
		logger.Infof("服务已停止")
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "f", "etc/config.yaml", "the config file")
	contentsCmd.Flags().BoolVar(&tooltip, "tooltip", false, "print tooltip text instead of status text")
	filtersCmd.Flags().BoolVar(&tooltip, "tooltip", false, "print tooltip text instead of status text")
	rootCmd.AddCommand(contentsCmd, filtersCmd, watchCmd)
}

// loadConfig 读取配置文件并初始化日志，默认路径的配置文件不存在时使用默认配置
func loadConfig() (*config.Config, error) {
	c, err := config.LoadFromFile(configFile)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) || rootCmd.PersistentFlags().Changed("config") {
			return nil, fmt.Errorf("读取配置文件失败, %w", err)
		}
		logger.Infof("配置文件 %s 不存在，使用默认配置", configFile)
		c = config.Default()
	}

	for _, adjusted := range c.Normalize() {
		logger.Warnf("配置项超出范围，已调整 %s", adjusted)
	}

	if err := logger.Setup(c.Log); err != nil {
		return nil, fmt.Errorf("初始化日志失败, %w", err)
	}
	return c, nil
}

func setup(scenePath string) (*svc.ServiceContext, *scene.Scene, error) {
	c, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	sc, err := scene.Load(scenePath)
	if err != nil {
		return nil, nil, err
	}
	return svc.NewServiceContext(c), sc, nil
}

func printObjects(cmd *cobra.Command, svcCtx *svc.ServiceContext, sc *scene.Scene, objects []*scene.Object, tooltip bool) error {
	hooks := svcCtx.Attach(sc)
	defer svcCtx.Detach(sc, hooks)

	mode := notify.ModeStatus
	if tooltip {
		mode = notify.ModeTooltip
	}
	notifier := notify.NewNotifier(cmd.OutOrStdout(), &config.Watch{Mode: mode})
	for _, obj := range objects {
		if err := notifier.Notify(context.Background(), obj); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Fatalf("%s", err)
	}
}
