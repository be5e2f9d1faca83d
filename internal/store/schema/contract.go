package schema

import "time"

// Contract represents one NFT collection contract, keyed by its on-chain address
type Contract struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Address   string    `gorm:"column:address;not null;uniqueIndex;type:text"`
	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime"`
}

// TableName specifies the table name for the Contract model
func (Contract) TableName() string {
	return "contracts"
}
