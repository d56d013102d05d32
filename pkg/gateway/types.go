package gateway

import "time"

// Target addresses invitations by recipient rather than by id.
type Target struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// EmailTarget builds a Target for an email address.
func EmailTarget(value string) Target {
	return Target{Type: "email", Value: value}
}

// PhoneTarget builds a Target for a phone number.
func PhoneTarget(value string) Target {
	return Target{Type: "phone", Value: value}
}

// Group is a group reference as persisted by the invitation service.
type Group struct {
	Type string `json:"type,omitempty"`
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

// Acceptance records one acceptance of an invitation.
type Acceptance struct {
	UserID     string     `json:"userId,omitempty"`
	Target     *Target    `json:"target,omitempty"`
	AcceptedAt *time.Time `json:"acceptedAt,omitempty"`
}

// Invitation is a remote-owned record. The SDK never constructs or validates
// one; it is a pass-through payload between the service and the caller, so
// every field is optional and the free-form maps are left untyped.
type Invitation struct {
	ID            string         `json:"id,omitempty"`
	AccountID     string         `json:"accountId,omitempty"`
	Identifier    string         `json:"identifier,omitempty"`
	Status        string         `json:"status,omitempty"`
	Target        *Target        `json:"target,omitempty"`
	Clicks        int            `json:"clicks,omitempty"`
	Config        map[string]any `json:"config,omitempty"`
	Attributes    map[string]any `json:"attributes,omitempty"`
	Deactivated   bool           `json:"deactivated,omitempty"`
	Deliveries    int            `json:"deliveries,omitempty"`
	Channels      []string       `json:"channels,omitempty"`
	Groups        []Group        `json:"groups,omitempty"`
	Acceptances   []Acceptance   `json:"acceptances,omitempty"`
	CreatedAt     *time.Time     `json:"createdAt,omitempty"`
	UpdatedAt     *time.Time     `json:"updatedAt,omitempty"`
	ExpiresAt     *time.Time     `json:"expiresAt,omitempty"`
	DeactivatedAt *time.Time     `json:"deactivatedAt,omitempty"`
}

// AcceptResult is the service's response to a batch accept call. Partial
// acceptance semantics, if any, are owned by the service; the SDK passes the
// result through untouched.
type AcceptResult struct {
	Invitations []Invitation `json:"invitations,omitempty"`
}

// acceptRequest is the wire body for the batch accept endpoint.
type acceptRequest struct {
	InvitationIDs []string `json:"invitationIds"`
	Target        Target   `json:"target"`
}

// invitationList unwraps the envelope the list endpoints respond with.
type invitationList struct {
	Invitations []Invitation `json:"invitations"`
}
