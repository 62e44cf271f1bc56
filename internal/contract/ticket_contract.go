package contract

import (
	"errors"
	"strings"
)

// EvidenceRequirement names one piece of proof a ticket must produce.
type EvidenceRequirement struct {
	Kind        EvidenceKind `json:"kind" yaml:"kind" validate:"required,oneof=tests docs ci benchmark manual"`
	Description string       `json:"description" yaml:"description" validate:"required,max=10000"`
	Command     string       `json:"command,omitempty" yaml:"command,omitempty" validate:"max=10000"`
}

// EmergencyBypass lets a ticket skip enforcement, but only with a recorded
// justification and a follow-up ticket.
type EmergencyBypass struct {
	Enabled          bool   `json:"enabled" yaml:"enabled"`
	Justification    string `json:"justification,omitempty" yaml:"justification,omitempty" validate:"max=10000"`
	FollowUpTicketID string `json:"follow_up_ticket_id,omitempty" yaml:"follow_up_ticket_id,omitempty" validate:"max=50"`
}

// Validate enforces that an enabled bypass carries a non-blank justification
// and follow-up ticket ID.
func (b *EmergencyBypass) Validate() error {
	if !b.Enabled {
		return nil
	}
	if strings.TrimSpace(b.Justification) == "" {
		return errors.New("justification is required when bypass is enabled")
	}
	if strings.TrimSpace(b.FollowUpTicketID) == "" {
		return errors.New("follow_up_ticket_id is required when bypass is enabled")
	}
	return nil
}

// TicketContract is the machine-checkable acceptance criteria for a single
// ticket. Treat values as immutable after a successful Validate: contracts
// are shared across readers and compared by content.
type TicketContract struct {
	SchemaVersion        string                `json:"schema_version" yaml:"schema_version" validate:"required,max=20,semver"`
	TicketID             string                `json:"ticket_id" yaml:"ticket_id" validate:"required,max=50"`
	Summary              string                `json:"summary" yaml:"summary" validate:"required,max=10000"`
	IsSeamTicket         bool                  `json:"is_seam_ticket" yaml:"is_seam_ticket"`
	InterfaceChange      bool                  `json:"interface_change" yaml:"interface_change"`
	InterfacesTouched    []InterfaceSurface    `json:"interfaces_touched" yaml:"interfaces_touched" validate:"max=1000,dive,oneof=events topics protocols envelopes public_api"`
	EvidenceRequirements []EvidenceRequirement `json:"evidence_requirements" yaml:"evidence_requirements" validate:"max=1000,dive"`
	EmergencyBypass      EmergencyBypass       `json:"emergency_bypass" yaml:"emergency_bypass"`
}

// Validate checks field constraints plus the cross-field rules: touched
// surfaces must be empty when interface_change is false, and an enabled
// bypass must be fully configured. interface_change=true with an empty
// surface list is allowed as a temporary pre-categorization state; see
// IsComplete.
func (t *TicketContract) Validate() error {
	if err := validate.Struct(t); err != nil {
		return formatValidationError(err)
	}
	if !t.InterfaceChange && len(t.InterfacesTouched) > 0 {
		return errors.New(
			"interfaces_touched must be empty when interface_change is false; " +
				"if no interfaces are touched, set interfaces_touched to []")
	}
	return t.EmergencyBypass.Validate()
}

// IsComplete reports whether the contract is in its steady, fully
// categorized state: an interface change must name the surfaces it touches.
func (t *TicketContract) IsComplete() bool {
	return !t.InterfaceChange || len(t.InterfacesTouched) > 0
}
