package application

// CreateNotificationCommand 写入一条站内通知
type CreateNotificationCommand struct {
	UserID               string
	UserType             string
	Title                string
	Message              string
	Type                 string
	RelatedApplicationID string
}
