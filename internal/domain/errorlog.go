package domain

// Error log levels.
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
	LogLevelFatal = "fatal"
)

// ErrorLog is one client- or server-reported error event.
type ErrorLog struct {
	BaseModel
	Level     string `gorm:"size:16;index" json:"level,omitempty"`
	Message   string `gorm:"size:2000;not null" json:"message,omitempty"`
	Source    string `gorm:"size:255" json:"source,omitempty"`
	RequestID string `gorm:"column:request_id;size:64" json:"request_id,omitempty"`
	Stack     string `gorm:"size:8000" json:"stack,omitempty"`
}

// TableName overrides the default table name.
func (ErrorLog) TableName() string { return "error_logs" }
