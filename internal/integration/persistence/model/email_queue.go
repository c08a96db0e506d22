package model

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/expense-tracker/gateway/internal/domain/entity"
)

// EmailQueueModel is a row of the gateway-owned alert queue. DedupeKey holds
// the budget alert key and is NULL for jobs that may repeat.
type EmailQueueModel struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey"`
	DedupeKey      sql.NullString `gorm:"type:varchar(255);uniqueIndex"`
	TemplateType   string         `gorm:"type:varchar(50);not null"`
	RecipientEmail string         `gorm:"type:varchar(255);not null"`
	RecipientName  string         `gorm:"type:varchar(255)"`
	Subject        string         `gorm:"type:varchar(500);not null"`
	Payload        string         `gorm:"column:template_data;type:text;not null;default:'{}'"`
	Status         string         `gorm:"type:varchar(20);not null;default:'pending';index:idx_email_queue_due,priority:1"`
	Attempts       int            `gorm:"not null;default:0"`
	MaxAttempts    int            `gorm:"not null;default:3"`
	LastError      string         `gorm:"type:text"`
	ResendID       string         `gorm:"type:varchar(100)"`
	CreatedAt      time.Time      `gorm:"not null"`
	ScheduledAt    time.Time      `gorm:"not null;index:idx_email_queue_due,priority:2"`
	ProcessedAt    sql.NullTime   `gorm:"index"`
}

func (EmailQueueModel) TableName() string {
	return "email_queue"
}

// ToEntity converts the row to an EmailJob. A payload that fails to decode
// yields an empty template map.
func (m *EmailQueueModel) ToEntity() *entity.EmailJob {
	data := make(map[string]interface{})
	if m.Payload != "" {
		if err := json.Unmarshal([]byte(m.Payload), &data); err != nil {
			slog.Warn("Failed to decode alert payload", "error", err, "id", m.ID)
			data = make(map[string]interface{})
		}
	}

	job := &entity.EmailJob{
		ID:             m.ID,
		DedupeKey:      m.DedupeKey.String,
		TemplateType:   entity.EmailTemplateType(m.TemplateType),
		RecipientEmail: m.RecipientEmail,
		RecipientName:  m.RecipientName,
		Subject:        m.Subject,
		TemplateData:   data,
		Status:         entity.EmailStatus(m.Status),
		Attempts:       m.Attempts,
		MaxAttempts:    m.MaxAttempts,
		LastError:      m.LastError,
		ResendID:       m.ResendID,
		CreatedAt:      m.CreatedAt,
		ScheduledAt:    m.ScheduledAt,
	}
	if m.ProcessedAt.Valid {
		processed := m.ProcessedAt.Time
		job.ProcessedAt = &processed
	}
	return job
}

// EmailQueueModelFromEntity converts an EmailJob to its row.
func EmailQueueModelFromEntity(job *entity.EmailJob) *EmailQueueModel {
	payload, err := json.Marshal(job.TemplateData)
	if err != nil {
		slog.Error("Failed to encode alert payload", "error", err, "job_id", job.ID)
		payload = []byte("{}")
	}

	m := &EmailQueueModel{
		ID:             job.ID,
		DedupeKey:      sql.NullString{String: job.DedupeKey, Valid: job.DedupeKey != ""},
		TemplateType:   string(job.TemplateType),
		RecipientEmail: job.RecipientEmail,
		RecipientName:  job.RecipientName,
		Subject:        job.Subject,
		Payload:        string(payload),
		Status:         string(job.Status),
		Attempts:       job.Attempts,
		MaxAttempts:    job.MaxAttempts,
		LastError:      job.LastError,
		ResendID:       job.ResendID,
		CreatedAt:      job.CreatedAt,
		ScheduledAt:    job.ScheduledAt,
	}
	if job.ProcessedAt != nil {
		m.ProcessedAt = sql.NullTime{Time: *job.ProcessedAt, Valid: true}
	}
	return m
}
