package configs

import (
	"log"
	"strings"
	"time"

	"github.com/Zane16/Foodies-Web-sub000/entity"
	"github.com/Zane16/Foodies-Web-sub000/pkg/identity"
)

// SeedSuperAdmin creates the first platform account from env.
func SeedSuperAdmin(cfg *Config) error {
	db := DB()
	email := strings.ToLower(getEnv("SUPERADMIN_EMAIL", ""))
	pass := getEnv("SUPERADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding superadmin: missing SUPERADMIN_EMAIL/SUPERADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("superadmin already exists:", email)
		return nil
	}

	idsvc := identity.NewLocalService(db, cfg.JWTSecret, cfg.AppBaseURL, cfg.JWTTTL, cfg.RefreshTTL)
	acct, err := idsvc.SetPassword(email, pass)
	if err != nil {
		return err
	}

	admin := entity.User{
		Email:      email,
		FullName:   "Platform Admin",
		Role:       "superadmin",
		Status:     "active",
		IdentityID: acct.ID,
	}
	return db.Create(&admin).Error
}

// SeedOrganizations registers schools listed in ORGANIZATIONS
// ("Name:domain" pairs, comma separated).
func SeedOrganizations() error {
	db := DB()
	raw := getEnv("ORGANIZATIONS", "")
	if raw == "" {
		return nil
	}

	for _, pair := range strings.Split(raw, ",") {
		name, domain, _ := strings.Cut(strings.TrimSpace(pair), ":")
		if name == "" {
			continue
		}
		org := entity.Organization{Name: name, EmailDomain: strings.ToLower(domain)}
		if err := db.Where(entity.Organization{Name: name}).FirstOrCreate(&org).Error; err != nil {
			return err
		}
	}
	log.Println("organizations seeded at", time.Now().Format(time.RFC3339))
	return nil
}
