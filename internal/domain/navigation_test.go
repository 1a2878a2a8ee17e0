package domain

import "testing"

func TestRouteForKnownRoles(t *testing.T) {
	tests := []struct {
		role      Role
		dashboard string
		title     string
		firstNav  string
	}{
		{RoleGeneralPhysician, "/dashboard/gp", "General Physician", "Dashboard"},
		{RoleSpecialist, "/dashboard/specialist", "Specialist Doctor", "Dashboard"},
		{RolePatient, "/dashboard/patient", "Patient Portal", "My Health"},
		{RoleAdmin, "/dashboard/admin", "Admin Portal", "Dashboard"},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			got := RouteFor(tt.role)
			if got.Dashboard != tt.dashboard {
				t.Errorf("Dashboard = %q, want %q", got.Dashboard, tt.dashboard)
			}
			if got.Title != tt.title {
				t.Errorf("Title = %q, want %q", got.Title, tt.title)
			}
			if len(got.Nav) != 4 {
				t.Fatalf("len(Nav) = %d, want 4", len(got.Nav))
			}
			if got.Nav[0].Name != tt.firstNav {
				t.Errorf("Nav[0].Name = %q, want %q", got.Nav[0].Name, tt.firstNav)
			}
			for i, link := range got.Nav {
				if link.Href == "" {
					t.Errorf("Nav[%d].Href is empty", i)
				}
			}
		})
	}
}

func TestRouteForUnknownRoleFallsBack(t *testing.T) {
	for _, role := range []Role{"", "nurse", "GP"} {
		got := RouteFor(role)
		if got.Dashboard != "/not-found" {
			t.Errorf("RouteFor(%q).Dashboard = %q, want /not-found", role, got.Dashboard)
		}
		if got.Title != "BHC Health Connect" {
			t.Errorf("RouteFor(%q).Title = %q", role, got.Title)
		}
		if got.Nav == nil {
			t.Errorf("RouteFor(%q).Nav is nil, want empty slice", role)
		}
		if len(got.Nav) != 0 {
			t.Errorf("RouteFor(%q) returned %d nav links, want 0", role, len(got.Nav))
		}
	}
}

func TestRoleIsValid(t *testing.T) {
	for _, role := range []Role{RoleGeneralPhysician, RoleSpecialist, RolePatient, RoleAdmin} {
		if !role.IsValid() {
			t.Errorf("%q reported invalid", role)
		}
	}
	if Role("doctor").IsValid() {
		t.Error("unknown role reported valid")
	}
}
