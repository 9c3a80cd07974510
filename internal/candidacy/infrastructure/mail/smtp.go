// Package mail 生命周期邮件的 SMTP 实现与模板
package mail

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/ubvoting/election/internal/candidacy/domain"
	"github.com/ubvoting/election/pkg/config"
	"github.com/ubvoting/election/pkg/logger"
	"github.com/ubvoting/election/pkg/metrics"
)

// SMTPSender 基于 net/smtp 的 STARTTLS 发送实现。
// 凭证未配置时跳过发送并返回 nil，使邮件在无凭证环境下静默禁用。
type SMTPSender struct {
	cfg     config.SMTPConfig
	metrics *metrics.Metrics
}

// NewSMTPSender 创建 SMTP 发送器，cfg 应已通过 Resolve 应用环境变量回退
func NewSMTPSender(cfg config.SMTPConfig, m *metrics.Metrics) domain.EmailSender {
	return &SMTPSender{cfg: cfg, metrics: m}
}

// Send 实现 domain.EmailSender.Send
func (s *SMTPSender) Send(ctx context.Context, to, subject, htmlBody string) error {
	if !s.cfg.Enabled() {
		logger.Warn(ctx, "Email credentials not configured, skipping email send", "to", to, "subject", subject)
		return nil
	}

	msg := []byte("From: " + s.cfg.From + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/html; charset=\"UTF-8\"\r\n" +
		"\r\n" +
		htmlBody + "\r\n")

	auth := smtp.PlainAuth("", s.cfg.From, s.cfg.Password, s.cfg.Server)
	addr := fmt.Sprintf("%s:%d", s.cfg.Server, s.cfg.Port)

	// smtp.SendMail 在服务器通告 STARTTLS 时自动升级连接
	if err := smtp.SendMail(addr, auth, s.cfg.From, []string{to}, msg); err != nil {
		if s.metrics != nil {
			s.metrics.EmailsFailedTotal.Inc()
		}
		logger.Error(ctx, "Email sending failed", "to", to, "subject", subject, "error", err)
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}

	if s.metrics != nil {
		s.metrics.EmailsSentTotal.Inc()
	}
	logger.Info(ctx, "Email sent successfully", "to", to, "subject", subject)
	return nil
}
