package model

// GuestbookEntry is one stored submission. Name and Message are already
// HTML-escaped; Timestamp is milliseconds since epoch from the server clock.
type GuestbookEntry struct {
	ID        string `json:"id" gorm:"primaryKey;type:text;not null"`
	Name      string `json:"name" gorm:"type:text;not null"`
	Message   string `json:"message" gorm:"type:text;not null"`
	Timestamp int64  `json:"timestamp" gorm:"not null;index:idx_guestbook_entries_timestamp"`
}

func (GuestbookEntry) TableName() string {
	return "guestbook_entries"
}
