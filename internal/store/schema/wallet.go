package schema

import "time"

// Wallet represents a blockchain address, globally unique. A wallet is
// optionally linked to exactly one Profile; a wallet without a profile is its
// own anonymous identity.
type Wallet struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Address is the on-chain address, unique across all wallets
	Address string `gorm:"column:address;not null;uniqueIndex;type:text"`
	// Email is the optional contact address captured at registration
	Email *string `gorm:"column:email;type:text"`
	// ProfileID links the wallet to its display identity (nil for anonymous wallets)
	ProfileID *int64 `gorm:"column:profile_id;index"`
	// LastAuthenticated records the most recent identity-verified request
	LastAuthenticated *time.Time `gorm:"column:last_authenticated"`
	// CreatedAt is the timestamp when this record was first created
	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime"`

	// Associations
	Profile *Profile `gorm:"foreignKey:ProfileID"`
}

// TableName specifies the table name for the Wallet model
func (Wallet) TableName() string {
	return "wallets"
}
