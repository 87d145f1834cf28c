package domain

// Group is a named collection of users within an account namespace.
// It owns its memberships, keyed by member name in insertion order.
type Group struct {
	ARN         string
	GroupName   string
	Description string
	AccountID   string
	Namespace   string
	Region      string

	members *OrderedMap[*Membership]
}

// NewGroup creates a group and computes its ARN from the creation inputs.
func NewGroup(region, groupName, description, accountID, namespace string) *Group {
	return &Group{
		ARN:         ResourceARN(region, accountID, "group/default/"+groupName),
		GroupName:   groupName,
		Description: description,
		AccountID:   accountID,
		Namespace:   namespace,
		Region:      region,
		members:     NewOrderedMap[*Membership](),
	}
}

// AddMember records a membership for the named user, overwriting any
// existing one. The member is referenced by name only; it does not have to
// correspond to a registered user.
func (g *Group) AddMember(memberName string) *Membership {
	m := NewMembership(g.AccountID, g.Region, g.GroupName, memberName)
	g.members.Set(memberName, m)
	return m
}

// DeleteMember removes the named member; absent members are a no-op.
func (g *Group) DeleteMember(memberName string) {
	g.members.Delete(memberName)
}

// GetMember returns the membership for the named user, or nil.
func (g *Group) GetMember(memberName string) *Membership {
	m, _ := g.members.Get(memberName)
	return m
}

// ListMembers returns all memberships in insertion order.
func (g *Group) ListMembers() []*Membership {
	return g.members.Values()
}

// GroupResponse is the wire projection of a Group.
type GroupResponse struct {
	Arn         string `json:"Arn"`
	GroupName   string `json:"GroupName"`
	Description string `json:"Description,omitempty"`
	PrincipalID string `json:"PrincipalId"`
	Namespace   string `json:"Namespace"`
}

// Response renders the group for the wire.
func (g *Group) Response() GroupResponse {
	return GroupResponse{
		Arn:         g.ARN,
		GroupName:   g.GroupName,
		Description: g.Description,
		PrincipalID: g.AccountID,
		Namespace:   g.Namespace,
	}
}

// Membership links a group to a member by name. It stores the member name
// rather than a user reference, so it survives deletion of the user record.
type Membership struct {
	ARN        string
	GroupName  string
	MemberName string
}

// NewMembership creates a membership and computes its ARN.
func NewMembership(accountID, region, groupName, memberName string) *Membership {
	return &Membership{
		ARN:        ResourceARN(region, accountID, "group/default/"+groupName+"/"+memberName),
		GroupName:  groupName,
		MemberName: memberName,
	}
}

// MembershipResponse is the wire projection of a Membership.
type MembershipResponse struct {
	Arn        string `json:"Arn"`
	MemberName string `json:"MemberName"`
}

// Response renders the membership for the wire.
func (m *Membership) Response() MembershipResponse {
	return MembershipResponse{Arn: m.ARN, MemberName: m.MemberName}
}
