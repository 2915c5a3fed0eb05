package services

import (
	"github.com/Zane16/Foodies-Web-sub000/repository"
)

// SchoolService builds the per-organization report: one group per distinct
// organization string among admin profiles, recomputed in full per request.
type SchoolService struct {
	Users   *repository.UserRepository
	Vendors *repository.VendorRepository
}

func NewSchoolService(users *repository.UserRepository, vendors *repository.VendorRepository) *SchoolService {
	return &SchoolService{Users: users, Vendors: vendors}
}

type SchoolAdmin struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Status   string `json:"status"`
}

type SchoolSummary struct {
	Organization   string      `json:"organization"`
	Admin          SchoolAdmin `json:"admin"`
	AdminCount     int64       `json:"adminCount"`
	VendorCount    int64       `json:"vendorCount"`
	DelivererCount int64       `json:"delivererCount"`
}

// Aggregate groups admin profiles by organization. The representative admin
// is one with status approved when the group has any, else the first seen.
func (s *SchoolService) Aggregate() ([]SchoolSummary, error) {
	admins, err := s.Users.FindByRole("admin")
	if err != nil {
		return nil, err
	}

	byOrg := map[string]*SchoolSummary{}
	order := []string{}
	for _, a := range admins {
		g, ok := byOrg[a.Organization]
		if !ok {
			g = &SchoolSummary{
				Organization: a.Organization,
				Admin:        SchoolAdmin{ID: a.ID, Email: a.Email, FullName: a.FullName, Status: a.Status},
			}
			byOrg[a.Organization] = g
			order = append(order, a.Organization)
		}
		g.AdminCount++
		if g.Admin.Status != "approved" && a.Status == "approved" {
			g.Admin = SchoolAdmin{ID: a.ID, Email: a.Email, FullName: a.FullName, Status: a.Status}
		}
	}

	out := make([]SchoolSummary, 0, len(order))
	for _, org := range order {
		g := byOrg[org]
		if g.VendorCount, err = s.Vendors.CountByOrganization(org); err != nil {
			return nil, err
		}
		if g.DelivererCount, err = s.Users.CountByRoleAndOrganization("deliverer", org); err != nil {
			return nil, err
		}
		out = append(out, *g)
	}
	return out, nil
}
