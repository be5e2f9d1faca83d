package schema

import "time"

// Token represents one item within a contract, identified by the
// (contract, token_identifier) pair.
type Token struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// ContractID references the owning contract
	ContractID int64 `gorm:"column:contract_id;not null;uniqueIndex:idx_tokens_contract_identifier,priority:1"`
	// TokenIdentifier is the token ID within the contract (string to support very large numbers)
	TokenIdentifier string `gorm:"column:token_identifier;not null;type:text;uniqueIndex:idx_tokens_contract_identifier,priority:2"`
	// CreatorID references the creator's wallet. Set lazily, at most once, the
	// first time a like action supplies creator metadata.
	CreatorID *int64 `gorm:"column:creator_id;index"`
	// CreatedAt is the timestamp when this record was first created
	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime"`

	// Associations
	Contract *Contract `gorm:"foreignKey:ContractID"`
	Creator  *Wallet   `gorm:"foreignKey:CreatorID"`
}

// TableName specifies the table name for the Token model
func (Token) TableName() string {
	return "tokens"
}
