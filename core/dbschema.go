package core

import (
	"time"

	"github.com/lib/pq"
)

// ContentRecord is a stored text sample
// immutable, never deleted
type ContentRecord struct {
	Address string    `json:"address" gorm:"primaryKey;type:text"` // CID from the pinning service, or local Qm+hex pseudo-address
	Payload string    `json:"payload" gorm:"type:text"`
	Digest  string    `json:"digest" gorm:"type:char(64)"` // sha3-256 of payload
	CDate   time.Time `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
}

// UserAccount is a per-wallet ledger head
// mutable, lazily created, never deleted
type UserAccount struct {
	ID                string            `json:"identity" gorm:"primaryKey;type:text"` // free-form wallet address, no format validation
	VerificationCount int               `json:"verificationCount" gorm:"type:integer;default:0"`
	Submissions       []SubmissionEntry `json:"submissions,omitempty" gorm:"foreignKey:Owner;references:ID"`
	CDate             time.Time         `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
	MDate             time.Time         `json:"mdate" gorm:"autoUpdateTime"`
}

// SubmissionEntry is one submitted text per owning account.
// The secret stored here is the capability token for the address.
// Verdict columns stay null until a verify call succeeds.
type SubmissionEntry struct {
	ID              string    `json:"id" gorm:"primaryKey;type:char(20)"` // xid
	Owner           string    `json:"owner" gorm:"type:text;uniqueIndex:uniq_submission"`
	Address         string    `json:"address" gorm:"type:text;uniqueIndex:uniq_submission"`
	Secret          string    `json:"secret" gorm:"type:char(32)"`
	IsHumanWritten  *bool     `json:"isHumanWritten,omitempty" gorm:"type:boolean;default:null"`
	ConfidenceScore *float64  `json:"confidenceScore,omitempty" gorm:"type:double precision;default:null"`
	ProviderID      *string   `json:"providerId,omitempty" gorm:"type:text;default:null"`
	Chain           *string   `json:"chain,omitempty" gorm:"type:text;default:null"`
	ExternalTxRef   *string   `json:"externalTxRef,omitempty" gorm:"type:text;default:null"`
	NftTokenID      *string   `json:"nftTokenId,omitempty" gorm:"type:text;default:null"`
	CDate           time.Time `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
	MDate           time.Time `json:"mdate" gorm:"autoUpdateTime"`
}

// Provider is a named, priced verification strategy slot
// seed data, not mutated at runtime
type Provider struct {
	ID              string         `json:"id" gorm:"primaryKey;type:text"`
	DisplayName     string         `json:"displayName" gorm:"type:text"`
	PriceAmount     float64        `json:"priceAmount" gorm:"type:double precision"`
	PriceCurrency   string         `json:"priceCurrency" gorm:"type:text"`
	ClaimedAccuracy float64        `json:"claimedAccuracy" gorm:"type:double precision"`
	Specialty       string         `json:"specialty" gorm:"type:text"`
	Chains          pq.StringArray `json:"chains" gorm:"type:text[]"`
	CDate           time.Time      `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
	MDate           time.Time      `json:"mdate" gorm:"autoUpdateTime"`
}
