package service

import "time"

// ChatCounter is implemented by the chat store.
type ChatCounter interface {
	CountSince(t time.Time) (int64, error)
}

type ReportService struct {
	chats ChatCounter
}

func NewReportService(chats ChatCounter) *ReportService {
	return &ReportService{chats: chats}
}

// DailyUsage logs how many pages were generated in the last 24 hours. Runs
// from the cron schedule in main.
func (s *ReportService) DailyUsage() {
	logger.Infof("[%s] Start scheduled task DailyUsage", "scheduled task")
	since := time.Now().Add(-24 * time.Hour)
	count, err := s.chats.CountSince(since)
	if err != nil {
		logger.Warnf("[%s] count chats error, %s", "scheduled task", err)
		return
	}
	logger.Infof("[%s] %d pages generated since %s", "scheduled task", count, since.Format("2006-01-02 15:04:05"))
}
