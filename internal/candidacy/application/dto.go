package application

// SubmitApplicationCommand 提交候选人申请
type SubmitApplicationCommand struct {
	StudentID       string
	StudentName     string
	Email           string
	Position        string
	Party           string
	PartyName       string
	Manifesto       string
	Qualifications  string
	Achievements    string
	CampaignPromise string
	YearOfStudy     string
	Faculty         string
}

// ReviewApplicationCommand 审核候选人申请
type ReviewApplicationCommand struct {
	ApplicationID   string
	Status          string
	ReviewedBy      string
	RejectionReason string
}
