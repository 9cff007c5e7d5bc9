package models

// ChatSettings is the per-chat configuration row, keyed by the chat id.
type ChatSettings struct {
	ChatID      int64  `gorm:"column:chat_id;primaryKey;autoIncrement:false"`
	NotesFolder string `gorm:"column:notes_folder;not null;default:''"`
	AllAsTasks  bool   `gorm:"column:all_as_tasks;not null;default:0"` // forced task mode
}

func (ChatSettings) TableName() string {
	return "chat_settings"
}
