package domain

const (
	NotificationTypeCommentReply     = "CommentReply"
	NotificationTypeCommentModerated = "CommentModerated"

	NotificationTypeFlaggedCommentsReminder = "FlaggedCommentsReminder"
)

type NotificationMessages struct {
	CommentReply     string `mapstructure:"comment_reply"`
	CommentModerated string `mapstructure:"comment_moderated"`

	FlaggedCommentsReminder string `mapstructure:"flagged_comments_reminder"`
}

type NotificationMessage struct {
	Type      string
	Variables map[string]interface{}
}

type Notification struct {
	User    string
	Labels  map[string]string
	Message NotificationMessage
}
