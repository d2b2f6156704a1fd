package domain

import "time"

// User represents a registered account. Emails are stored lowercased so
// uniqueness and login lookups are case-insensitive.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never expose this via JSON
	Username     string    `json:"username"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Sex is the biological sex recorded in user biometrics.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// Build describes the overall body type recorded in user biometrics.
type Build string

const (
	BuildSlim     Build = "slim"
	BuildAverage  Build = "average"
	BuildAthletic Build = "athletic"
	BuildMuscular Build = "muscular"
	BuildHeavy    Build = "heavy"
)

// UserBiometrics is a one-to-one extension of User holding body measurements.
type UserBiometrics struct {
	UserID    string    `json:"userId"`
	Weight    float64   `json:"weight"`
	Sex       Sex       `json:"sex"`
	Height    float64   `json:"height"`
	Build     Build     `json:"build"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
