package mail

import (
	"context"
	"sync"

	"github.com/ubvoting/election/internal/candidacy/domain"
)

// SentMail 一封已记录的邮件
type SentMail struct {
	To      string
	Subject string
	Body    string
}

// MockSender 测试与本地环境使用的内存实现
type MockSender struct {
	mu   sync.Mutex
	Sent []SentMail
	Err  error
}

// NewMockSender 创建 MockSender 实例
func NewMockSender() *MockSender {
	return &MockSender{}
}

// Send 实现 domain.EmailSender.Send
func (s *MockSender) Send(_ context.Context, to, subject, body string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.Sent = append(s.Sent, SentMail{To: to, Subject: subject, Body: body})
	return nil
}

var _ domain.EmailSender = (*MockSender)(nil)
