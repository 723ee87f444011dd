package dto

import "go-controls/pkg/security"

// ChildrenInput asks for the groups below a group
type ChildrenInput struct {
	security.AuthHeaders
	Body struct {
		security.GrantOptions
		Guid                     string   `json:"guid,omitempty"`
		RootGroupGuid            string   `json:"rootGroupGuid,omitempty"`
		IncludedGroupTypeGuids   []string `json:"includedGroupTypeGuids,omitempty" doc:"Only groups of these types are shown"`
		IncludeInactiveGroups    bool     `json:"includeInactiveGroups,omitempty"`
		LimitToSchedulingEnabled bool     `json:"limitToSchedulingEnabled,omitempty"`
		LimitToRSVPEnabled       bool     `json:"limitToRSVPEnabled,omitempty"`
	}
}

// GroupMembersInput lists the members of a group
type GroupMembersInput struct {
	security.AuthHeaders
	Body struct {
		security.GrantOptions
		GroupGuid string `json:"groupGuid" minLength:"1"`
	}
}

// GroupRolesInput lists the roles of a group type
type GroupRolesInput struct {
	security.AuthHeaders
	Body struct {
		security.GrantOptions
		GroupTypeGuid         string   `json:"groupTypeGuid" minLength:"1"`
		ExcludeGroupRoleGuids []string `json:"excludeGroupRoleGuids,omitempty"`
	}
}

// GroupTypesInput lists group types
type GroupTypesInput struct {
	security.AuthHeaders
	Body struct {
		security.GrantOptions
		GroupTypeGuids []string `json:"groupTypeGuids,omitempty" doc:"Restrict the list to these types"`
		IsSortedByName bool     `json:"isSortedByName,omitempty" doc:"Sort by name instead of configured order"`
	}
}
