package domain

// NavLink is one entry in a role's sidebar menu.
type NavLink struct {
	Name string `json:"name"`
	Href string `json:"href"`
}

// Route describes the dashboard a role lands on after sign-in.
type Route struct {
	Dashboard string    `json:"dashboard"`
	Title     string    `json:"title"`
	Nav       []NavLink `json:"nav"`
}

const fallbackTitle = "BHC Health Connect"

// RouteFor maps a role to its dashboard, title, and navigation menu. It is
// total: every valid role yields a four-link menu, anything else yields the
// not-found fallback with an empty menu.
func RouteFor(role Role) Route {
	switch role {
	case RoleGeneralPhysician:
		return Route{
			Dashboard: "/dashboard/gp",
			Title:     "General Physician",
			Nav: []NavLink{
				{Name: "Dashboard", Href: "/dashboard/gp"},
				{Name: "Patient Search", Href: "/dashboard/gp"},
				{Name: "Consultations", Href: "/dashboard/gp"},
				{Name: "Referrals", Href: "/dashboard/gp"},
			},
		}
	case RoleSpecialist:
		return Route{
			Dashboard: "/dashboard/specialist",
			Title:     "Specialist Doctor",
			Nav: []NavLink{
				{Name: "Dashboard", Href: "/dashboard/specialist"},
				{Name: "Pending Consults", Href: "/dashboard/specialist"},
				{Name: "Patient Records", Href: "/dashboard/specialist"},
				{Name: "Schedule", Href: "/dashboard/specialist"},
			},
		}
	case RolePatient:
		return Route{
			Dashboard: "/dashboard/patient",
			Title:     "Patient Portal",
			Nav: []NavLink{
				{Name: "My Health", Href: "/dashboard/patient"},
				{Name: "Appointments", Href: "/dashboard/patient"},
				{Name: "Medical Records", Href: "/dashboard/patient"},
				{Name: "Messages", Href: "/dashboard/patient"},
			},
		}
	case RoleAdmin:
		return Route{
			Dashboard: "/dashboard/admin",
			Title:     "Admin Portal",
			Nav: []NavLink{
				{Name: "Dashboard", Href: "/dashboard/admin"},
				{Name: "Emergency Mgmt", Href: "/dashboard/admin"},
				{Name: "Hospital Resources", Href: "/dashboard/admin"},
				{Name: "User Management", Href: "/dashboard/admin"},
			},
		}
	}
	return Route{
		Dashboard: "/not-found",
		Title:     fallbackTitle,
		Nav:       []NavLink{},
	}
}
