package history

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// sessionKey Session 中存放搜索历史的键
const sessionKey = "search_history"

// SessionStore 基于 Cookie Session 的搜索历史存储
type SessionStore struct {
	session sessions.Session
}

// NewSessionStore 从当前请求创建 Session 存储
func NewSessionStore(c *gin.Context) *SessionStore {
	return &SessionStore{session: sessions.Default(c)}
}

// Load 读取历史，损坏的数据当作没有历史处理
func (s *SessionStore) Load() ([]string, error) {
	v := s.session.Get(sessionKey)
	if v == nil {
		return []string{}, nil
	}
	terms, ok := v.([]string)
	if !ok {
		// 旧版本或损坏的数据，直接丢弃
		return []string{}, nil
	}
	return terms, nil
}

// Save 写回历史
func (s *SessionStore) Save(terms []string) error {
	s.session.Set(sessionKey, terms)
	return s.session.Save()
}
