// Package org holds the administrative entities behind the admin CRUD pages.
package org

// Admin is a staff account managed from the admin area.
type Admin struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (a Admin) Key() string            { return a.ID }
func (a Admin) SearchFields() []string { return []string{a.Name, a.Email, a.Role} }

// Faculty groups departments and fields teams.
type Faculty struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation,omitempty"`
}

func (f Faculty) Key() string            { return f.ID }
func (f Faculty) SearchFields() []string { return []string{f.Name, f.Abbreviation} }

// Department belongs to a faculty.
type Department struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	FacultyID string `json:"facultyId"`
}

func (d Department) Key() string            { return d.ID }
func (d Department) SearchFields() []string { return []string{d.Name} }

// Competition is a league or cup that fixtures belong to.
type Competition struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Season string `json:"season"`
	Type   string `json:"type"`
}

func (c Competition) Key() string            { return c.ID }
func (c Competition) SearchFields() []string { return []string{c.Name, c.Season, c.Type} }
