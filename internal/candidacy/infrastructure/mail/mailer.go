package mail

import (
	"context"
	"fmt"

	"github.com/ubvoting/election/internal/candidacy/domain"
)

// 拒绝原因代码到说明文本的映射
var rejectionReasons = map[string]string{
	"insufficient_qualifications": "Your qualifications and experience do not meet the requirements for this position.",
	"position_filled":             "This position has already been filled by other qualified candidates.",
	"incomplete_application":      "Your application was incomplete or missing required information.",
	"academic_standing":           "Your current academic standing does not meet the eligibility criteria.",
	"disciplinary_issues":         "There are disciplinary concerns that prevent approval at this time.",
}

const genericRejectionText = "The election committee was unable to approve your application at this time."

// RejectionReasonText 将原因代码转换为邮件文本。
// 未知代码原样返回；"other" 或空值落到通用说明。
func RejectionReasonText(code string) string {
	if text, ok := rejectionReasons[code]; ok {
		return text
	}
	if code == "other" || code == "" {
		return genericRejectionText
	}
	return code
}

// Mailer 组装生命周期邮件并通过 EmailSender 发出
type Mailer struct {
	sender domain.EmailSender
}

// NewMailer 创建 Mailer 实例
func NewMailer(sender domain.EmailSender) *Mailer {
	return &Mailer{sender: sender}
}

// SendSubmissionConfirmation 实现 domain.Mailer.SendSubmissionConfirmation
func (m *Mailer) SendSubmissionConfirmation(ctx context.Context, app *domain.Application) error {
	subject := "Candidate Application Received - UB Voting System"
	body := fmt.Sprintf(`
        <h3>Dear %s,</h3>
        <p>Your application for <strong>%s</strong> has been successfully submitted.</p>
        <p><strong>Party Affiliation:</strong> %s</p>
        <p>Your application is now under review by the election committee. You will be notified once a decision is made.</p>
        <p>Best regards,<br>UB Voting System Team</p>
        `, app.StudentName, app.Position, app.PartyName)
	return m.sender.Send(ctx, app.Email, subject, body)
}

// SendApprovalEmail 实现 domain.Mailer.SendApprovalEmail
func (m *Mailer) SendApprovalEmail(ctx context.Context, app *domain.Application) error {
	subject := "Candidate Application Approved - UB Voting System"
	body := fmt.Sprintf(`
        <h3>Congratulations %s!</h3>
        <p>Your application for <strong>%s</strong> has been <strong>APPROVED</strong>.</p>
        <p>You are now an official candidate in the upcoming elections. Please prepare your campaign materials.</p>
        <p><strong>Party:</strong> %s</p>
        <p>Best of luck with your campaign!<br>UB Voting System Team</p>
        `, app.StudentName, app.Position, app.PartyName)
	return m.sender.Send(ctx, app.Email, subject, body)
}

// SendRejectionEmail 实现 domain.Mailer.SendRejectionEmail
func (m *Mailer) SendRejectionEmail(ctx context.Context, app *domain.Application, reasonCode string) error {
	subject := "Candidate Application Update - UB Voting System"
	body := fmt.Sprintf(`
        <h3>Application Update</h3>
        <p>Dear %s,</p>
        <p>After careful review, your application for <strong>%s</strong> has not been approved.</p>
        <p><strong>Reason:</strong> %s</p>
        <p>We encourage you to gain more experience and consider applying again in future elections.</p>
        <p>Thank you for your interest in student leadership.<br>UB Voting System Team</p>
        `, app.StudentName, app.Position, RejectionReasonText(reasonCode))
	return m.sender.Send(ctx, app.Email, subject, body)
}
