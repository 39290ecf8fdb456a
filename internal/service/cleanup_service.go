package service

import (
	"log"
	"time"

	"github.com/user/screenbox/internal/repository"
)

// CleanupService 清理服务
type CleanupService struct {
	repos *repository.Repositories
}

// NewCleanupService 创建清理服务
func NewCleanupService(repos *repository.Repositories) *CleanupService {
	return &CleanupService{repos: repos}
}

// Start 启动定时清理任务
func (s *CleanupService) Start() {
	ticker := time.NewTicker(24 * time.Hour)

	// 启动时先运行一次
	go s.runCleanup()

	go func() {
		for range ticker.C {
			s.runCleanup()
		}
	}()
}

func (s *CleanupService) runCleanup() {
	log.Println("[CleanupService] 开始清理过期数据...")

	// 1. 清理超过 30 天的原始搜索日志
	cleanedLogs, err := s.repos.SearchLog.DeleteOldLogs(30)
	if err != nil {
		log.Printf("[CleanupService] 清理旧搜索日志失败: %v", err)
	} else if cleanedLogs > 0 {
		log.Printf("[CleanupService] 已清理 %d 条超过 30 天的搜索日志", cleanedLogs)
	}

	// 2. 清理超过 30 天未搜索的热搜关键词
	cleanedKeywords, err := s.repos.SearchLog.DeleteOldKeywords(30)
	if err != nil {
		log.Printf("[CleanupService] 清理旧热搜关键词失败: %v", err)
	} else if cleanedKeywords > 0 {
		log.Printf("[CleanupService] 已清理 %d 条超过 30 天未搜索的热搜关键词", cleanedKeywords)
	}
}
