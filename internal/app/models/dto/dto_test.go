package dto

import (
	"encoding/json"
	"testing"
)

func TestUpdateSectionRequestStatusToggle(t *testing.T) {
	var toggle UpdateSectionRequest
	if err := json.Unmarshal([]byte(`{"status": false}`), &toggle); err != nil {
		t.Fatal(err)
	}
	if !toggle.IsStatusToggle() {
		t.Error("status-only body should dispatch to the toggle path")
	}

	var full UpdateSectionRequest
	if err := json.Unmarshal([]byte(`{"status": false, "name": "Algorithms B"}`), &full); err != nil {
		t.Fatal(err)
	}
	if full.IsStatusToggle() {
		t.Error("body with other fields must take the full-update path")
	}

	var empty UpdateSectionRequest
	if err := json.Unmarshal([]byte(`{}`), &empty); err != nil {
		t.Fatal(err)
	}
	if empty.IsStatusToggle() {
		t.Error("empty body is not a status toggle")
	}
}

func TestUpdateSubjectRequestStatusToggle(t *testing.T) {
	var toggle UpdateSubjectRequest
	if err := json.Unmarshal([]byte(`{"status": true}`), &toggle); err != nil {
		t.Fatal(err)
	}
	if !toggle.IsStatusToggle() {
		t.Error("status-only body should dispatch to the toggle path")
	}

	var full UpdateSubjectRequest
	if err := json.Unmarshal([]byte(`{"name": "Databases", "code": "CS305", "period": "5º"}`), &full); err != nil {
		t.Fatal(err)
	}
	if full.IsStatusToggle() {
		t.Error("full body must take the full-update path")
	}
}

func TestToSectionCarriesFields(t *testing.T) {
	req := CreateSectionRequest{
		Name:         "Algorithms A",
		SubjectID:    1,
		InstructorID: 2,
		RoomID:       3,
		Weekday:      "Monday",
		StartTime:    "08:00",
		EndTime:      "10:00",
	}
	section := req.ToSection()
	if section.SubjectID != 1 || section.InstructorID != 2 || section.RoomID != 3 {
		t.Errorf("unexpected references: %+v", section)
	}
	if string(section.Weekday) != "Monday" || section.StartTime != "08:00" {
		t.Errorf("unexpected schedule fields: %+v", section)
	}
}
