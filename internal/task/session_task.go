package task

import (
	"log"

	"github.com/robfig/cron/v3"

	"novarix_studio_v1/internal/middleware"
)

// ==================== SessionPruneTask 会话清理任务 ====================

// SessionPruneTask 定时清理过期会话
type SessionPruneTask struct {
	store *middleware.SessionStore
	cron  *cron.Cron
}

// NewSessionPruneTask 创建会话清理任务
func NewSessionPruneTask(store *middleware.SessionStore) *SessionPruneTask {
	return &SessionPruneTask{
		store: store,
		cron:  cron.New(),
	}
}

// Start 启动定时任务，每小时清理一次
func (t *SessionPruneTask) Start() error {
	_, err := t.cron.AddFunc("@hourly", func() {
		if pruned := t.store.Prune(); pruned > 0 {
			log.Printf("[Task] 清理过期会话 %d 个", pruned)
		}
	})
	if err != nil {
		return err
	}

	t.cron.Start()
	log.Println("[Task] 会话清理任务已启动")
	return nil
}

// Stop 停止定时任务
func (t *SessionPruneTask) Stop() {
	t.cron.Stop()
}
