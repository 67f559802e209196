package entity

import "time"

// PatientDocument is document metadata only; the file itself lives in
// external storage addressed by StorageKey.
type PatientDocument struct {
	DocumentID        uint       `gorm:"primaryKey;autoIncrement" json:"document_id"`
	PatientID         uint       `gorm:"not null;index" json:"patient_id"`
	DocumentName      string     `gorm:"type:varchar(255);not null" json:"document_name"`
	DocumentType      string     `gorm:"type:varchar(100)" json:"document_type,omitempty"`
	StorageKey        string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"storage_key"`
	Notes             string     `gorm:"type:text" json:"notes,omitempty"`
	UploadedByStaffID *uint      `gorm:"index" json:"uploaded_by_staff_id,omitempty"`
	UploadDate        time.Time  `gorm:"not null" json:"upload_date"`
	IsDeleted         bool       `gorm:"not null;default:false;index" json:"is_deleted"`
	CreatedAt         time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         *time.Time `json:"updated_at,omitempty"`

	// Relationships
	Patient         Patient      `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	UploadedByStaff *StaffDetail `gorm:"foreignKey:UploadedByStaffID" json:"uploaded_by_staff,omitempty"`
}

func (PatientDocument) TableName() string {
	return "patient_documents"
}
