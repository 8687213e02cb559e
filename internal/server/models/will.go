// Package models defines the server-side domain entities.
package models

import (
	"fmt"
	"regexp"
	"time"

	"github.com/lasttx/willkeeper/internal/common"
)

// WillStatus is the lifecycle state of a will.
type WillStatus string

const (
	StatusActive  WillStatus = "active"
	StatusExpired WillStatus = "expired"
	StatusClaimed WillStatus = "claimed"
	StatusDeleted WillStatus = "deleted"
)

// Terminal reports whether no further lifecycle transitions are possible.
func (s WillStatus) Terminal() bool {
	return s == StatusClaimed || s == StatusDeleted
}

// Beneficiary is a single entitlement entry on a will.
type Beneficiary struct {
	Address    string  `json:"address"`
	Percentage float64 `json:"percentage"`
	Name       string  `json:"name,omitempty"`
	Email      string  `json:"email,omitempty"`
}

// Will is the central entity: a conditional transfer armed against owner
// inactivity.
type Will struct {
	ID                 string
	Owner              string
	Beneficiaries      []Beneficiary
	InactivityDuration time.Duration
	LastActivity       time.Time
	PersonalMessage    string
	Status             WillStatus
	ScheduleToken      string
	ReminderToken      string
	AttachmentKey      string
	ClaimedBy          string
	ClaimedAt          time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Deadline is the absolute time at which the will becomes eligible to expire.
func (w *Will) Deadline() time.Time {
	return w.LastActivity.Add(w.InactivityDuration)
}

// FindBeneficiary returns the entry matching address, or nil.
func (w *Will) FindBeneficiary(address string) *Beneficiary {
	for i := range w.Beneficiaries {
		if w.Beneficiaries[i].Address == address {
			return &w.Beneficiaries[i]
		}
	}
	return nil
}

// Clone returns a deep copy safe for mutation outside the store.
func (w *Will) Clone() *Will {
	c := *w
	c.Beneficiaries = make([]Beneficiary, len(w.Beneficiaries))
	copy(c.Beneficiaries, w.Beneficiaries)
	return &c
}

var addressRe = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

// ValidAddress reports whether s is a well-formed wallet address.
func ValidAddress(s string) bool {
	return addressRe.MatchString(s)
}

// ValidateWillParams checks the caller-supplied parameters shared by create
// and update. All violations wrap common.ErrValidation.
func ValidateWillParams(owner string, beneficiaries []Beneficiary, inactivityDuration time.Duration) error {
	if !ValidAddress(owner) {
		return fmt.Errorf("%w: malformed owner address %q", common.ErrValidation, owner)
	}
	if inactivityDuration <= 0 {
		return fmt.Errorf("%w: inactivity duration must be positive", common.ErrValidation)
	}
	if len(beneficiaries) == 0 {
		return fmt.Errorf("%w: at least one beneficiary required", common.ErrValidation)
	}

	var sum float64
	for _, b := range beneficiaries {
		if !ValidAddress(b.Address) {
			return fmt.Errorf("%w: malformed beneficiary address %q", common.ErrValidation, b.Address)
		}
		if b.Address == owner {
			return fmt.Errorf("%w: owner cannot be their own beneficiary", common.ErrValidation)
		}
		if b.Percentage <= 0 || b.Percentage > 100 {
			return fmt.Errorf("%w: percentage %v out of range (0,100]", common.ErrValidation, b.Percentage)
		}
		sum += b.Percentage
	}
	if sum > 100 {
		return fmt.Errorf("%w: beneficiary percentages sum to %v, exceeding 100", common.ErrValidation, sum)
	}
	return nil
}
