package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cs-crm-backend/internal/config"
	"cs-crm-backend/internal/database"
	"cs-crm-backend/internal/database/models"
	"cs-crm-backend/internal/service"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// SeedFile is one YAML document under scripts/data
type SeedFile struct {
	Organizations []OrganizationData `yaml:"organizations"`
}

type OrganizationData struct {
	Name    string       `yaml:"name"`
	Slug    string       `yaml:"slug,omitempty"`
	Owner   string       `yaml:"owner"`
	Members []MemberData `yaml:"members,omitempty"`
	Dsos    []DsoData    `yaml:"dsos,omitempty"`
}

type MemberData struct {
	UserID string `yaml:"user_id"`
	Role   string `yaml:"role"`
}

type DsoData struct {
	Name    string       `yaml:"name"`
	Grants  []GrantData  `yaml:"grants,omitempty"`
	Doctors []DoctorData `yaml:"doctors,omitempty"`
}

type GrantData struct {
	UserID string `yaml:"user_id"`
	Role   string `yaml:"role"`
}

type DoctorData struct {
	Name      string `yaml:"name"`
	Email     string `yaml:"email,omitempty"`
	Specialty string `yaml:"specialty,omitempty"`
}

type seedStats struct {
	orgs, members, dsos, grants, doctors int
}

func main() {
	_ = godotenv.Load()
	logrus.Info("Loading initial data from YAML files")

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	dataDir := "scripts/data"
	if len(os.Args) > 1 {
		dataDir = os.Args[1]
	}

	orgs, err := loadSeedFiles(dataDir)
	if err != nil {
		logrus.Fatalf("Failed to read seed files: %v", err)
	}

	var stats seedStats
	for _, org := range orgs {
		if err := db.Transaction(func(tx *gorm.DB) error {
			return seedOrganization(tx, org, &stats)
		}); err != nil {
			logrus.Fatalf("Failed to seed organization %s: %v", org.Name, err)
		}
	}

	logrus.WithFields(logrus.Fields{
		"organizations": stats.orgs,
		"members":       stats.members,
		"dsos":          stats.dsos,
		"grants":        stats.grants,
		"doctors":       stats.doctors,
	}).Info("Initial data loaded")
}

func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{LogLevel: gormlogger.Silent}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			logrus.Warnf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

// loadSeedFiles reads every *.yaml file under dataDir in lexical order
func loadSeedFiles(dataDir string) ([]OrganizationData, error) {
	var all []OrganizationData
	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !(strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml")) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		var file SeedFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		all = append(all, file.Organizations...)
		return nil
	})
	return all, err
}

// seedOrganization creates what is missing and leaves existing rows untouched,
// so the loader can be run repeatedly.
func seedOrganization(tx *gorm.DB, data OrganizationData, stats *seedStats) error {
	if data.Owner == "" {
		return errors.New("owner is required")
	}
	slug := data.Slug
	if slug == "" {
		slug = service.Slugify(data.Name)
	}

	org := models.Organization{Name: data.Name, Slug: slug, CreatedBy: data.Owner}
	res := tx.Where("slug = ?", slug).FirstOrCreate(&org)
	if res.Error != nil {
		return fmt.Errorf("organization: %w", res.Error)
	}
	stats.orgs += int(res.RowsAffected)

	members := append([]MemberData{{UserID: data.Owner, Role: string(models.OrgRoleOwner)}}, data.Members...)
	for _, m := range members {
		role, err := models.ParseOrgRole(m.Role)
		if err != nil {
			return fmt.Errorf("member %s: %w", m.UserID, err)
		}
		member := models.OrgMember{OrgID: org.ID, UserID: m.UserID, Role: role, JoinedAt: time.Now().UTC()}
		res := tx.Where("org_id = ? AND user_id = ?", org.ID, m.UserID).FirstOrCreate(&member)
		if res.Error != nil {
			return fmt.Errorf("member %s: %w", m.UserID, res.Error)
		}
		stats.members += int(res.RowsAffected)
	}

	for _, d := range data.Dsos {
		orgID := org.ID
		dso := models.Dso{Name: d.Name, OrgID: &orgID, CreatedBy: data.Owner}
		res := tx.Where("org_id = ? AND name = ?", org.ID, d.Name).FirstOrCreate(&dso)
		if res.Error != nil {
			return fmt.Errorf("dso %s: %w", d.Name, res.Error)
		}
		stats.dsos += int(res.RowsAffected)

		// The owner administers every seeded workspace so none starts without an admin
		grants := append([]GrantData{{UserID: data.Owner, Role: string(models.DsoRoleAdmin)}}, d.Grants...)
		for _, g := range grants {
			if err := seedGrant(tx, org.ID, dso.ID, g, stats); err != nil {
				return fmt.Errorf("dso %s: %w", d.Name, err)
			}
		}

		for _, doc := range d.Doctors {
			doctor := models.Doctor{
				DsoID:     dso.ID,
				Name:      doc.Name,
				Email:     models.NormalizeEmail(doc.Email),
				Specialty: doc.Specialty,
				CreatedBy: data.Owner,
			}
			res := tx.Where("dso_id = ? AND name = ?", dso.ID, doc.Name).FirstOrCreate(&doctor)
			if res.Error != nil {
				return fmt.Errorf("doctor %s: %w", doc.Name, res.Error)
			}
			stats.doctors += int(res.RowsAffected)
		}
	}
	return nil
}

// seedGrant refuses grants to users outside the organization
func seedGrant(tx *gorm.DB, orgID, dsoID uuid.UUID, g GrantData, stats *seedStats) error {
	role, err := models.ParseDsoRole(g.Role)
	if err != nil {
		return fmt.Errorf("grant %s: %w", g.UserID, err)
	}

	var count int64
	if err := tx.Model(&models.OrgMember{}).Where("org_id = ? AND user_id = ?", orgID, g.UserID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("grant %s: user is not a member of the organization", g.UserID)
	}

	grant := models.DsoAccessGrant{UserID: g.UserID, DsoID: dsoID, Role: role}
	res := tx.Where("user_id = ? AND dso_id = ?", g.UserID, dsoID).FirstOrCreate(&grant)
	if res.Error != nil {
		return fmt.Errorf("grant %s: %w", g.UserID, res.Error)
	}
	stats.grants += int(res.RowsAffected)
	return nil
}
