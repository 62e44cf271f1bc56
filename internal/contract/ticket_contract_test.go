package contract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTicketContract() *TicketContract {
	return &TicketContract{
		SchemaVersion:   "1.0.0",
		TicketID:        "TICKET-100",
		Summary:         "Add the manifest verifier",
		IsSeamTicket:    false,
		InterfaceChange: false,
		EvidenceRequirements: []EvidenceRequirement{
			{Kind: EvidenceTests, Description: "Unit tests for hash mismatch", Command: "sg manifest verify"},
		},
	}
}

func TestTicketContractValid(t *testing.T) {
	require.NoError(t, validTicketContract().Validate())
}

func TestTicketContractRequiresTicketID(t *testing.T) {
	c := validTicketContract()
	c.TicketID = ""

	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ticket_id")
}

func TestTicketContractTicketIDLength(t *testing.T) {
	c := validTicketContract()
	c.TicketID = strings.Repeat("X", 51)

	assert.Error(t, c.Validate())
}

func TestInterfacesTouchedRequiresInterfaceChange(t *testing.T) {
	c := validTicketContract()
	c.InterfaceChange = false
	c.InterfacesTouched = []InterfaceSurface{SurfaceEvents}

	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interfaces_touched must be empty")
}

func TestInterfaceChangeWithSurfaces(t *testing.T) {
	c := validTicketContract()
	c.InterfaceChange = true
	c.InterfacesTouched = []InterfaceSurface{SurfaceTopics, SurfacePublicAPI}

	require.NoError(t, c.Validate())
	assert.True(t, c.IsComplete())
}

func TestInterfaceChangePendingCategorization(t *testing.T) {
	c := validTicketContract()
	c.InterfaceChange = true
	c.InterfacesTouched = nil

	// Valid but not yet complete: surfaces still need to be named.
	require.NoError(t, c.Validate())
	assert.False(t, c.IsComplete())
}

func TestInvalidSurfaceRejected(t *testing.T) {
	c := validTicketContract()
	c.InterfaceChange = true
	c.InterfacesTouched = []InterfaceSurface{"database"}

	assert.Error(t, c.Validate())
}

func TestBypassRequiresJustification(t *testing.T) {
	c := validTicketContract()
	c.EmergencyBypass = EmergencyBypass{Enabled: true, FollowUpTicketID: "TICKET-101"}

	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "justification")
}

func TestBypassRequiresFollowUp(t *testing.T) {
	c := validTicketContract()
	c.EmergencyBypass = EmergencyBypass{Enabled: true, Justification: "prod incident"}

	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "follow_up_ticket_id")
}

func TestBypassBlankJustificationRejected(t *testing.T) {
	b := EmergencyBypass{Enabled: true, Justification: "   ", FollowUpTicketID: "TICKET-101"}
	assert.Error(t, b.Validate())
}

func TestBypassDisabledNeedsNothing(t *testing.T) {
	b := EmergencyBypass{Enabled: false}
	assert.NoError(t, b.Validate())
}

func TestEvidenceKindEnum(t *testing.T) {
	c := validTicketContract()
	c.EvidenceRequirements = []EvidenceRequirement{{Kind: "vibes", Description: "trust me"}}

	assert.Error(t, c.Validate())
}
