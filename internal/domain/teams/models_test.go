package teams

import (
	"reflect"
	"testing"
)

func TestTeamJSONTags(t *testing.T) {
	type fieldCheck struct {
		name string
		tag  string
	}
	teamType := reflect.TypeOf(Team{})
	fields := []fieldCheck{
		{"ID", "id"},
		{"Name", "name"},
		{"ShortName", "shortName"},
		{"FacultyID", "facultyId,omitempty"},
		{"DepartmentID", "departmentId,omitempty"},
		{"LogoURL", "logoUrl,omitempty"},
	}
	for _, fc := range fields {
		f, ok := teamType.FieldByName(fc.name)
		if !ok {
			t.Fatalf("missing field %s", fc.name)
		}
		if tag := f.Tag.Get("json"); tag != fc.tag {
			t.Fatalf("field %s expected tag %s, got %s", fc.name, fc.tag, tag)
		}
	}
}

func TestTeamRef(t *testing.T) {
	team := Team{ID: "t1", Name: "Engineering", ShortName: "ENG", FacultyID: "f1"}
	ref := team.Ref()
	if ref.ID != "t1" || ref.Name != "Engineering" || ref.ShortName != "ENG" {
		t.Fatalf("unexpected ref %+v", ref)
	}
	if team.Key() != "t1" || len(team.SearchFields()) != 2 {
		t.Fatalf("unexpected key/search fields for %+v", team)
	}
}
