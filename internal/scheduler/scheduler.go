package scheduler

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fachebot/container-tooltips/internal/config"
	"github.com/fachebot/container-tooltips/internal/logger"
	"github.com/fachebot/container-tooltips/internal/notify"
	"github.com/fachebot/container-tooltips/internal/scene"
	"github.com/fachebot/container-tooltips/internal/svc"

	"github.com/fsnotify/fsnotify"
	"github.com/robfig/cron/v3"
)

// Scheduler 按 cron 表达式重新加载场景并输出所有对象的状态文本
type Scheduler struct {
	cron      *cron.Cron
	svcCtx    *svc.ServiceContext
	notifier  *notify.Notifier
	scenePath string
	config    *config.Watch
	load      func(path string) (*scene.Scene, error)
	watcher   *fsnotify.Watcher
	started   time.Time
	ctx       context.Context
	cancel    context.CancelFunc
	mu        sync.Mutex
	wg        sync.WaitGroup
}

// locUTC UTC 标准时间（UTC）
var locUTC = time.UTC

func NewScheduler(
	svcCtx *svc.ServiceContext,
	notifier *notify.Notifier,
	scenePath string,
	cfg *config.Watch,
) *Scheduler {
	return &Scheduler{
		cron:      cron.New(cron.WithLocation(locUTC)),
		svcCtx:    svcCtx,
		notifier:  notifier,
		scenePath: scenePath,
		config:    cfg,
		load:      scene.Load,
	}
}

// Start 启动调度器，并立即执行一次刷新
func (s *Scheduler) Start() error {
	s.mu.Lock()
	s.ctx, s.cancel = context.WithCancel(context.Background())
	s.started = time.Now()
	s.mu.Unlock()

	// 注册刷新任务
	_, err := s.cron.AddFunc(s.config.Cron, s.runRefresh)
	if err != nil {
		return fmt.Errorf("注册刷新任务失败: %w", err)
	}

	// 监听场景文件变化
	if s.config.Reload {
		if err := s.watchScene(); err != nil {
			return fmt.Errorf("监听场景文件失败: %w", err)
		}
	}

	s.cron.Start()
	logger.Infof("[Scheduler] 调度器已启动，刷新任务: %s, 场景: %s", s.config.Cron, s.scenePath)

	go s.runRefresh()

	return nil
}

// watchScene 监听场景文件所在目录，编辑器通常以替换文件的方式保存
func (s *Scheduler) watchScene() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(s.scenePath)); err != nil {
		_ = watcher.Close()
		return err
	}

	s.mu.Lock()
	s.watcher = watcher
	ctx := s.ctx
	s.mu.Unlock()

	s.wg.Add(1)
	go s.eventLoop(ctx, watcher)
	return nil
}

func (s *Scheduler) eventLoop(ctx context.Context, watcher *fsnotify.Watcher) {
	defer s.wg.Done()

	target := filepath.Clean(s.scenePath)
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			logger.Debugf("[Scheduler] 场景文件已变化: %s", event)
			s.runRefresh()

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Warnf("[Scheduler] 监听场景文件出错: %v", err)

		case <-ctx.Done():
			return
		}
	}
}

// Stop 停止调度器
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	watcher := s.watcher
	s.watcher = nil
	s.mu.Unlock()

	if watcher != nil {
		_ = watcher.Close()
	}
	s.wg.Wait()

	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Infof("[Scheduler] 调度器已停止")
}

// runRefresh 执行一次刷新（cron 触发）
func (s *Scheduler) runRefresh() {
	s.mu.Lock()
	ctx := s.ctx
	elapsed := time.Since(s.started).Seconds()
	s.mu.Unlock()

	select {
	case <-ctx.Done():
		logger.Infof("[Scheduler] 任务已取消，退出")
		return
	default:
	}

	if err := s.refresh(ctx, elapsed); err != nil {
		logger.Errorf("[Scheduler] 刷新失败: %v", err)
	}
}

// refresh 加载场景，把游戏时间推进 elapsed 秒后挂载状态条目并输出
func (s *Scheduler) refresh(ctx context.Context, elapsed float64) error {
	sc, err := s.load(s.scenePath)
	if err != nil {
		return fmt.Errorf("加载场景失败: %w", err)
	}
	sc.Advance(elapsed)

	// 串行执行，避免多个刷新同时切换时钟
	s.mu.Lock()
	defer s.mu.Unlock()

	hooks := s.svcCtx.Attach(sc)
	defer s.svcCtx.Detach(sc, hooks)

	count := 0
	for _, obj := range sc.Objects() {
		select {
		case <-ctx.Done():
			return fmt.Errorf("任务已取消")
		default:
		}
		if err := s.notifier.Notify(ctx, obj); err != nil {
			logger.Errorf("[Scheduler] 输出对象 %d 失败: %v", obj.InstanceID(), err)
			continue
		}
		count++
	}

	logger.Debugf("[Scheduler] 刷新完成，处理 %d 个对象, 游戏时间 %.1f", count, sc.Time())
	return nil
}
