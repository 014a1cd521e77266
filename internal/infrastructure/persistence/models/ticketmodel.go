package models

type TicketModel struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"size:200;not null"`
	Description string `gorm:"type:text;not null"`
	Status      string `gorm:"size:20;not null;index"`
	CreatorID   uint   `gorm:"not null;index"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64  `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}

type ReportModel struct {
	ID            uint    `gorm:"primaryKey"`
	TicketID      uint    `gorm:"not null;index"`
	AuthorID      uint    `gorm:"not null;index"`
	Comment       string  `gorm:"type:text;not null"`
	AttachmentKey *string `gorm:"size:512"`
	CreatedAt     int64   `gorm:"autoCreateTime:milli;not null;index"`
}

func (ReportModel) TableName() string {
	return "reports"
}
