package services

// Property is one field of an entity schema. Target names the schema of a
// navigation property and is empty for plain values.
type Property struct {
	Name         string
	FriendlyName string
	Target       string
}

// Schema describes the merge fields an entity exposes
type Schema struct {
	Name       string
	Properties []Property
}

// Root is a top-level entry of the picker. Schema is empty for plain fields.
type Root struct {
	Name         string
	FriendlyName string
	Schema       string
	Expression   string // overrides the default {{ Name }} form
}

// Registry holds the schemas and roots the picker can browse
type Registry struct {
	schemas      map[string]Schema
	roots        map[string]Root
	defaultRoots []string
}

// NewRegistry builds a registry; defaultRoots are listed when no additional fields are asked for
func NewRegistry(schemas []Schema, roots []Root, defaultRoots []string) *Registry {
	r := &Registry{
		schemas:      make(map[string]Schema, len(schemas)),
		roots:        make(map[string]Root, len(roots)),
		defaultRoots: defaultRoots,
	}
	for _, s := range schemas {
		r.schemas[s.Name] = s
	}
	for _, root := range roots {
		r.roots[root.Name] = root
	}
	return r
}

// Property returns a property of a schema
func (r *Registry) Property(schema, name string) (Property, bool) {
	for _, p := range r.schemas[schema].Properties {
		if p.Name == name {
			return p, true
		}
	}
	return Property{}, false
}

// DefaultRegistry is the set of merge fields offered to templates
func DefaultRegistry() *Registry {
	schemas := []Schema{
		{Name: "Person", Properties: []Property{
			{Name: "FirstName", FriendlyName: "First Name"},
			{Name: "NickName", FriendlyName: "Nick Name"},
			{Name: "LastName", FriendlyName: "Last Name"},
			{Name: "FullName", FriendlyName: "Full Name"},
			{Name: "Email", FriendlyName: "Email"},
			{Name: "BirthDate", FriendlyName: "Birth Date"},
			{Name: "Age", FriendlyName: "Age"},
			{Name: "Gender", FriendlyName: "Gender"},
			{Name: "Campus", FriendlyName: "Campus", Target: "Campus"},
			{Name: "PrimaryFamily", FriendlyName: "Primary Family", Target: "Group"},
			{Name: "ConnectionStatus", FriendlyName: "Connection Status", Target: "DefinedValue"},
		}},
		{Name: "Group", Properties: []Property{
			{Name: "Name", FriendlyName: "Name"},
			{Name: "Description", FriendlyName: "Description"},
			{Name: "IsActive", FriendlyName: "Active"},
			{Name: "GroupType", FriendlyName: "Group Type", Target: "GroupType"},
			{Name: "Campus", FriendlyName: "Campus", Target: "Campus"},
			{Name: "ParentGroup", FriendlyName: "Parent Group", Target: "Group"},
		}},
		{Name: "GroupType", Properties: []Property{
			{Name: "Name", FriendlyName: "Name"},
			{Name: "Description", FriendlyName: "Description"},
			{Name: "GroupTerm", FriendlyName: "Group Term"},
			{Name: "GroupMemberTerm", FriendlyName: "Group Member Term"},
		}},
		{Name: "Campus", Properties: []Property{
			{Name: "Name", FriendlyName: "Name"},
			{Name: "ShortCode", FriendlyName: "Short Code"},
			{Name: "Url", FriendlyName: "Url"},
			{Name: "PhoneNumber", FriendlyName: "Phone Number"},
			{Name: "Location", FriendlyName: "Location", Target: "Location"},
			{Name: "Leader", FriendlyName: "Leader", Target: "Person"},
		}},
		{Name: "Location", Properties: []Property{
			{Name: "Name", FriendlyName: "Name"},
			{Name: "Street1", FriendlyName: "Street 1"},
			{Name: "City", FriendlyName: "City"},
			{Name: "State", FriendlyName: "State"},
			{Name: "PostalCode", FriendlyName: "Postal Code"},
		}},
		{Name: "DefinedValue", Properties: []Property{
			{Name: "Value", FriendlyName: "Value"},
			{Name: "Description", FriendlyName: "Description"},
		}},
		{Name: "GlobalAttribute", Properties: []Property{
			{Name: "OrganizationName", FriendlyName: "Organization Name"},
			{Name: "OrganizationEmail", FriendlyName: "Organization Email"},
			{Name: "OrganizationPhone", FriendlyName: "Organization Phone"},
			{Name: "PublicApplicationRoot", FriendlyName: "Public Application Root"},
			{Name: "InternalApplicationRoot", FriendlyName: "Internal Application Root"},
		}},
	}

	roots := []Root{
		{Name: "Person", FriendlyName: "Person", Schema: "Person"},
		{Name: "CurrentPerson", FriendlyName: "Current Person", Schema: "Person"},
		{Name: "Group", FriendlyName: "Group", Schema: "Group"},
		{Name: "Campus", FriendlyName: "Campus", Schema: "Campus"},
		{Name: "GlobalAttribute", FriendlyName: "Global Attribute", Schema: "GlobalAttribute"},
		{Name: "Date", FriendlyName: "Date", Expression: "{{ 'Now' | Date:'MMMM d, yyyy' }}"},
		{Name: "Time", FriendlyName: "Time", Expression: "{{ 'Now' | Date:'h:mm tt' }}"},
		{Name: "DayOfWeek", FriendlyName: "Day of Week", Expression: "{{ 'Now' | Date:'dddd' }}"},
	}

	return NewRegistry(schemas, roots, []string{"Person", "GlobalAttribute"})
}
