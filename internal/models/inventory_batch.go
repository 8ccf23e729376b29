package models

import (
	"time"

	"gorm.io/gorm"
)

// BatchStage names a step in the brick production line. Batches move
// forward through stages and never skip backwards.
type BatchStage string

const (
	StageMolding  BatchStage = "Molding"
	StageDrying   BatchStage = "Drying"
	StageKiln     BatchStage = "Kiln"
	StageFinished BatchStage = "Finished"
)

// BatchStages returns the production stages in line order.
func BatchStages() []BatchStage {
	return []BatchStage{StageMolding, StageDrying, StageKiln, StageFinished}
}

// NextStage returns the stage after s, or "" when s is terminal.
func NextStage(s BatchStage) BatchStage {
	stages := BatchStages()
	for i, stage := range stages[:len(stages)-1] {
		if stage == s {
			return stages[i+1]
		}
	}
	return ""
}

type InventoryBatch struct {
	ID          uint64         `gorm:"primarykey" json:"id"`
	BatchID     string         `gorm:"type:varchar(40);uniqueIndex;not null" json:"batch_id"`
	Stage       BatchStage     `gorm:"type:varchar(20);not null" json:"stage"`
	ProductID   *uint64        `json:"product_id"`
	Units       int            `gorm:"not null" json:"units"`
	ReservedFor string         `gorm:"type:varchar(255)" json:"reserved_for"`
	Notes       string         `gorm:"type:text" json:"notes"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}
