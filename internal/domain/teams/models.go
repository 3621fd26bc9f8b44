package teams

// Ref is the compact team reference embedded in fixtures.
type Ref struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"shortName,omitempty"`
	LogoURL   string `json:"logoUrl,omitempty"`
}

// Team is a squad registered for competitions, owned by a faculty or department.
type Team struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ShortName    string `json:"shortName"`
	FacultyID    string `json:"facultyId,omitempty"`
	DepartmentID string `json:"departmentId,omitempty"`
	LogoURL      string `json:"logoUrl,omitempty"`
}

// Key returns the team ID.
func (t Team) Key() string { return t.ID }

// SearchFields lists the text matched by roster search.
func (t Team) SearchFields() []string { return []string{t.Name, t.ShortName} }

// Ref builds the compact reference for t.
func (t Team) Ref() Ref {
	return Ref{ID: t.ID, Name: t.Name, ShortName: t.ShortName, LogoURL: t.LogoURL}
}
