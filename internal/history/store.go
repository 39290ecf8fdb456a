package history

import (
	"log"
	"strings"
)

// MaxEntries 搜索历史最多保留条数
const MaxEntries = 6

// Store 搜索历史持久化接口
// 核心逻辑不关心历史存在哪里（Session、数据库、内存），便于单独测试。
type Store interface {
	Load() ([]string, error)
	Save(terms []string) error
}

// Record 记录一次搜索
// 空白关键词不记录；已存在的关键词移到最前而不是重复插入；
// 超过上限截断最旧的。读写失败只记日志，本次会话历史不可用，不向调用方抛错。
func Record(s Store, term string) []string {
	term = strings.TrimSpace(term)
	if term == "" {
		return Terms(s)
	}

	terms := Terms(s)
	updated := make([]string, 0, len(terms)+1)
	updated = append(updated, term)
	for _, t := range terms {
		if t == term {
			continue
		}
		updated = append(updated, t)
	}
	if len(updated) > MaxEntries {
		updated = updated[:MaxEntries]
	}

	if err := s.Save(updated); err != nil {
		log.Printf("[history] 保存搜索历史失败: %v", err)
	}
	return updated
}

// Terms 读取搜索历史，任何异常都返回空列表
func Terms(s Store) []string {
	terms, err := s.Load()
	if err != nil {
		log.Printf("[history] 读取搜索历史失败: %v", err)
		return []string{}
	}
	if terms == nil {
		return []string{}
	}
	return terms
}
