package middleware

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// ==================== SessionStore 会话存储 ====================

// SessionStore 内存会话存储
// sync.Map 保证并发安全；过期条目懒删除 + 定时清理
type SessionStore struct {
	sessions sync.Map // sid -> sessionItem
	ttl      time.Duration
}

// sessionItem 内部结构，包含用户 ID 和过期时间
type sessionItem struct {
	userID     int64
	expiration int64
}

// NewSessionStore 创建会话存储
func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{ttl: ttl}
}

// TTL 会话有效期
func (s *SessionStore) TTL() time.Duration {
	return s.ttl
}

// Create 为用户创建新会话，返回会话 ID
func (s *SessionStore) Create(userID int64) string {
	sid := uuid.NewString()
	s.sessions.Store(sid, sessionItem{
		userID:     userID,
		expiration: time.Now().Add(s.ttl).Unix(),
	})
	return sid
}

// Get 解析会话 ID，过期则懒删除
func (s *SessionStore) Get(sid string) (int64, bool) {
	val, ok := s.sessions.Load(sid)
	if !ok {
		return 0, false
	}

	item := val.(sessionItem)
	if time.Now().Unix() > item.expiration {
		s.sessions.Delete(sid)
		return 0, false
	}

	return item.userID, true
}

// Destroy 销毁会话 (登出 / 拉黑强制下线)，幂等
func (s *SessionStore) Destroy(sid string) {
	s.sessions.Delete(sid)
}

// Prune 清理过期会话，返回清理数量
func (s *SessionStore) Prune() int {
	now := time.Now().Unix()
	pruned := 0
	s.sessions.Range(func(key, value interface{}) bool {
		if value.(sessionItem).expiration < now {
			s.sessions.Delete(key)
			pruned++
		}
		return true
	})
	return pruned
}
