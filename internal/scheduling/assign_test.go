package scheduling

import (
	"errors"
	"testing"
	"time"
)

func TestAssignDoctorFirstFree(t *testing.T) {
	day := date(2025, time.March, 10)
	start := at(day, "10:00")
	roster := []Doctor{
		{StaffID: 1, Specialization: "General Medicine"},
		{StaffID: 2, Specialization: "Pediatrics"},
	}
	existing := []Booking{{DoctorID: 1, Start: at(day, "10:00")}}

	got, err := AssignDoctor(start, roster, existing)
	if err != nil {
		t.Fatalf("AssignDoctor: %v", err)
	}
	if got != 2 {
		t.Fatalf("assigned doctor %d, want 2", got)
	}
}

func TestAssignDoctorAllBusy(t *testing.T) {
	day := date(2025, time.March, 10)
	start := at(day, "10:00")
	roster := []Doctor{
		{StaffID: 1, Specialization: "General Medicine"},
		{StaffID: 2, Specialization: "Pediatrics"},
	}
	existing := []Booking{
		{DoctorID: 1, Start: at(day, "10:00")},
		{DoctorID: 2, Start: at(day, "10:15")},
	}

	_, err := AssignDoctor(start, roster, existing)
	if !errors.Is(err, ErrNoDoctorAvailable) {
		t.Fatalf("err = %v, want ErrNoDoctorAvailable", err)
	}
}

func TestAssignDoctorRosterOrderPreserved(t *testing.T) {
	day := date(2025, time.March, 10)
	start := at(day, "09:00")
	roster := []Doctor{
		{StaffID: 7, Specialization: "Dermatology"},
		{StaffID: 3, Specialization: "General Medicine"},
	}

	got, err := AssignDoctor(start, roster, nil)
	if err != nil {
		t.Fatalf("AssignDoctor: %v", err)
	}
	if got != 7 {
		t.Fatalf("assigned doctor %d, want first roster entry 7", got)
	}
}

func TestAssignDoctorSkipsUnqualified(t *testing.T) {
	day := date(2025, time.March, 10)
	start := at(day, "09:00")
	roster := []Doctor{
		{StaffID: 1, Specialization: ""},
		{StaffID: 2, Specialization: "Cardiology", IsDeleted: true},
		{StaffID: 3, Specialization: "General Medicine"},
	}

	got, err := AssignDoctor(start, roster, nil)
	if err != nil {
		t.Fatalf("AssignDoctor: %v", err)
	}
	if got != 3 {
		t.Fatalf("assigned doctor %d, want 3", got)
	}
}

func TestAssignDoctorEmptyRoster(t *testing.T) {
	day := date(2025, time.March, 10)
	if _, err := AssignDoctor(at(day, "09:00"), nil, nil); !errors.Is(err, ErrNoDoctorAvailable) {
		t.Fatalf("err = %v, want ErrNoDoctorAvailable", err)
	}
}

// The conflict window tests the existing booking's start against
// (start-30m, start+30m), both bounds exclusive.
func TestAssignDoctorWindowBoundaries(t *testing.T) {
	day := date(2025, time.March, 10)
	start := at(day, "10:00")
	roster := []Doctor{{StaffID: 1, Specialization: "General Medicine"}}

	cases := []struct {
		existingStart string
		busy          bool
	}{
		{"09:30", false}, // exactly one duration before: excluded bound
		{"09:31", true},
		{"10:00", true},
		{"10:29", true},
		{"10:30", false}, // exactly the candidate end: excluded bound
		{"11:00", false},
	}

	for _, tt := range cases {
		existing := []Booking{{DoctorID: 1, Start: at(day, tt.existingStart)}}
		_, err := AssignDoctor(start, roster, existing)
		gotBusy := errors.Is(err, ErrNoDoctorAvailable)
		if gotBusy != tt.busy {
			t.Fatalf("existing booking at %s: busy=%v, want %v", tt.existingStart, gotBusy, tt.busy)
		}
	}
}
