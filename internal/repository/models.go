package repository

import "time"

// Transfer statuses as persisted, mirroring the on-chain lifecycle.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusFailed    = "failed"
)

type Transfer struct {
	ID              string    `gorm:"primaryKey;autoIncrement:false"`
	TransactionHash string    `gorm:"size:66;uniqueIndex;not null"` // 0x + 64 hex chars
	ContractAddress string    `gorm:"size:42;not null;index"`       // Ethereum address (0x + 40 hex)
	FromAddress     string    `gorm:"size:42;not null"`
	ToAddress       string    `gorm:"size:42;not null"`
	Amount          string    `gorm:"size:100;not null"` // decimal string, large values
	Nonce           uint64    `gorm:"not null"`
	Status          string    `gorm:"size:16;not null;index"`
	CreatedAt       time.Time `gorm:"not null"`
}

type Deployment struct {
	ID              string    `gorm:"primaryKey;autoIncrement:false"`
	TransactionHash string    `gorm:"size:66;uniqueIndex;not null"`
	ContractAddress string    `gorm:"size:42;not null"`
	Name            string    `gorm:"type:varchar(255);not null"`
	Symbol          string    `gorm:"type:varchar(32);not null"`
	Decimals        uint8     `gorm:"not null"`
	InitialSupply   string    `gorm:"size:100;not null"`
	CreatedAt       time.Time `gorm:"not null"`
}

type User struct {
	ID           string `gorm:"primaryKey;autoIncrement:false"`
	Username     string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
}
