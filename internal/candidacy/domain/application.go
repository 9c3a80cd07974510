// Package domain 候选人申请的领域模型
package domain

import (
	"time"

	"gorm.io/gorm"
)

// ApplicationStatus 申请状态
type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "pending"
	StatusApproved ApplicationStatus = "approved"
	StatusRejected ApplicationStatus = "rejected"
)

// Application 候选人申请实体
type Application struct {
	gorm.Model
	// ApplicationID 申请 ID
	ApplicationID string `gorm:"column:application_id;type:varchar(64);uniqueIndex;not null" json:"application_id"`
	// StudentID 学号
	StudentID string `gorm:"column:student_id;type:varchar(32);index;not null" json:"student_id"`
	// StudentName 学生姓名
	StudentName string `gorm:"column:student_name;type:varchar(100);not null" json:"student_name"`
	// Email 联系邮箱
	Email string `gorm:"column:email;type:varchar(100);not null" json:"email"`
	// Position 竞选职位
	Position string `gorm:"column:position;type:varchar(100);not null" json:"position"`
	// Party 政党标识
	Party string `gorm:"column:party;type:varchar(100)" json:"party"`
	// PartyName 政党名称
	PartyName string `gorm:"column:party_name;type:varchar(100)" json:"party_name"`
	// Manifesto 竞选宣言
	Manifesto string `gorm:"column:manifesto;type:text" json:"manifesto"`
	// Qualifications 资历说明
	Qualifications string `gorm:"column:qualifications;type:text" json:"qualifications"`
	// Achievements 成就说明
	Achievements string `gorm:"column:achievements;type:text" json:"achievements"`
	// CampaignPromise 竞选承诺
	CampaignPromise string `gorm:"column:campaign_promise;type:text" json:"campaign_promise"`
	// YearOfStudy 在读年级
	YearOfStudy string `gorm:"column:year_of_study;type:varchar(20)" json:"year_of_study"`
	// Faculty 所属学院
	Faculty string `gorm:"column:faculty;type:varchar(100)" json:"faculty"`
	// Status 审核状态
	Status ApplicationStatus `gorm:"column:status;type:varchar(20);index;not null;default:'pending'" json:"status"`
	// ReviewedAt 审核时间
	ReviewedAt *time.Time `gorm:"column:reviewed_at;type:datetime" json:"reviewed_at"`
	// ReviewedBy 审核人
	ReviewedBy string `gorm:"column:reviewed_by;type:varchar(64)" json:"reviewed_by"`
	// RejectionReason 拒绝原因代码或文本
	RejectionReason string `gorm:"column:rejection_reason;type:text" json:"rejection_reason"`
}

func (Application) TableName() string { return "candidate_applications" }

// Review 应用一次审核决定。不限制重复审核，后一次决定覆盖前一次。
func (a *Application) Review(status ApplicationStatus, reviewedBy, rejectionReason string, at time.Time) {
	a.Status = status
	a.ReviewedBy = reviewedBy
	a.ReviewedAt = &at
	if rejectionReason != "" {
		a.RejectionReason = rejectionReason
	}
}
