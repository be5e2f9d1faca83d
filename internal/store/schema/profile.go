package schema

import "time"

// Profile represents a display identity. A profile may aggregate multiple
// wallet addresses under one display identity; it is created implicitly the
// first time a wallet needs one and is never deleted in normal operation.
type Profile struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Name is the optional display name
	Name *string `gorm:"column:name;type:text"`
	// Twitter is the optional social handle
	Twitter *string `gorm:"column:twitter;type:text"`
	// ImgURL is the optional profile image URL
	ImgURL *string `gorm:"column:img_url;type:text"`
	// CreatedAt is the timestamp when this record was first created
	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime"`

	// Associations
	Wallets []Wallet `gorm:"foreignKey:ProfileID"`
}

// TableName specifies the table name for the Profile model
func (Profile) TableName() string {
	return "profiles"
}
