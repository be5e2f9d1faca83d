package schema

import "time"

// LikeHistory is one immutable ledger entry recording a signed vote.
// Rows are only ever appended; the net like count for a token is the sum of
// Value across all of its rows.
type LikeHistory struct {
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Added is the insertion timestamp; ordering by it (then by ID) yields
	// the ledger's append order
	Added time.Time `gorm:"column:added;not null;autoCreateTime;index:idx_like_history_profile_token,priority:3"`
	// TokenID references the voted-on token
	TokenID int64 `gorm:"column:token_id;not null;index:idx_like_history_profile_token,priority:2"`
	// ProfileID references the voting profile
	ProfileID int64 `gorm:"column:profile_id;not null;index:idx_like_history_profile_token,priority:1"`
	// Value is +1 for a like, -1 for an unlike
	Value int `gorm:"column:value;not null"`

	// Associations
	Token   *Token   `gorm:"foreignKey:TokenID"`
	Profile *Profile `gorm:"foreignKey:ProfileID"`
}

// TableName specifies the table name for the LikeHistory model
func (LikeHistory) TableName() string {
	return "like_history"
}
