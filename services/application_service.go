package services

import (
	"errors"
	"strings"

	"github.com/Zane16/Foodies-Web-sub000/entity"
	"github.com/Zane16/Foodies-Web-sub000/repository"
)

// ApplicationService handles submission and listing. Decisions live in
// ProvisioningService.
type ApplicationService struct {
	Repo *repository.ApplicationRepository
}

func NewApplicationService(repo *repository.ApplicationRepository) *ApplicationService {
	return &ApplicationService{Repo: repo}
}

func applicantRole(role string) bool {
	switch role {
	case "admin", "vendor", "deliverer":
		return true
	}
	return false
}

// Submit persists a new pending application with its ordered document URLs.
func (s *ApplicationService) Submit(app *entity.Application, documentURLs []string) (uint, error) {
	app.Email = strings.ToLower(strings.TrimSpace(app.Email))
	app.FullName = strings.TrimSpace(app.FullName)

	if app.FullName == "" || app.Email == "" || app.Role == "" {
		return 0, errors.New("full_name, email and role are required")
	}
	if !applicantRole(app.Role) {
		return 0, errors.New("role must be admin, vendor or deliverer")
	}

	app.Status = "pending"
	if err := s.Repo.CreateWithDocuments(app, documentURLs); err != nil {
		return 0, err
	}
	return app.ID, nil
}

// List returns applications by status. Admin reviewers only see their own
// organization; superadmins see everything.
func (s *ApplicationService) List(status string, reviewer *entity.User) ([]entity.Application, error) {
	if status == "" {
		status = "pending"
	}
	if reviewer.Role == "superadmin" {
		return s.Repo.FindByStatus(status)
	}
	return s.Repo.FindByStatusForOrganization(status, reviewer.Organization)
}
