package domain

import (
	"time"

	"gorm.io/gorm"
)

// User 学生用户，审批通过后携带候选人档案
type User struct {
	gorm.Model
	// StudentID 学号
	StudentID string `gorm:"column:student_id;type:varchar(32);uniqueIndex;not null" json:"student_id"`
	// Name 姓名
	Name string `gorm:"column:name;type:varchar(100)" json:"name"`
	// Email 邮箱
	Email string `gorm:"column:email;type:varchar(100)" json:"email"`
	// IsCandidate 是否为候选人
	IsCandidate bool `gorm:"column:is_candidate;not null;default:false" json:"is_candidate"`
	// CandidateStatus 候选申请状态
	CandidateStatus string `gorm:"column:candidate_status;type:varchar(20)" json:"candidate_status"`
	// AppliedPosition 申请的职位
	AppliedPosition string `gorm:"column:applied_position;type:varchar(100)" json:"applied_position"`
	// ApprovedPosition 批准的职位
	ApprovedPosition string `gorm:"column:approved_position;type:varchar(100)" json:"approved_position"`
	// Manifesto 竞选宣言
	Manifesto string `gorm:"column:manifesto;type:text" json:"manifesto"`
	// Party 政党标识
	Party string `gorm:"column:party;type:varchar(100)" json:"party"`
	// PartyName 政党名称
	PartyName string `gorm:"column:party_name;type:varchar(100)" json:"party_name"`
	// ApprovedAt 批准时间
	ApprovedAt *time.Time `gorm:"column:approved_at;type:datetime" json:"approved_at"`
	// CandidateActive 候选资格是否生效
	CandidateActive bool `gorm:"column:candidate_active;not null;default:false" json:"candidate_active"`
}

func (User) TableName() string { return "users" }

// PromoteToCandidate 审批通过时填充候选人档案
func (u *User) PromoteToCandidate(app *Application, at time.Time) {
	u.IsCandidate = true
	u.CandidateStatus = string(StatusApproved)
	u.AppliedPosition = app.Position
	u.ApprovedPosition = app.Position
	u.Manifesto = app.Manifesto
	u.Party = app.Party
	u.PartyName = app.PartyName
	u.ApprovedAt = &at
	u.CandidateActive = true
}
