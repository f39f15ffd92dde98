package seed

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"renthub-backend/internal/database/models"
	"renthub-backend/internal/logger"
	"renthub-backend/internal/repository"
	"renthub-backend/internal/service"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// PropertyTypeData is one property type entry of a data file
type PropertyTypeData struct {
	Name string `yaml:"name"`
}

// FeatureData is one feature entry of a data file
type FeatureData struct {
	Name string `yaml:"name"`
}

// AccountData is a demo account created through its role manager
type AccountData struct {
	Role        string `yaml:"role"`
	Username    string `yaml:"username"`
	Email       string `yaml:"email"`
	Password    string `yaml:"password"`
	PhoneNumber string `yaml:"phone_number"`
	FirstName   string `yaml:"first_name"`
	LastName    string `yaml:"last_name"`
	About       string `yaml:"about"`
}

// DataFile is the layout of every YAML file under the data directory. A file
// may carry any subset of the sections.
type DataFile struct {
	PropertyTypes []PropertyTypeData `yaml:"property_types"`
	Features      []FeatureData      `yaml:"features"`
	Accounts      []AccountData      `yaml:"accounts"`
}

// Counts reports how many entries of one kind were created out of those read
type Counts struct {
	Created int
	Total   int
}

// Result summarizes a seeding run
type Result struct {
	PropertyTypes Counts
	Features      Counts
	Accounts      Counts
}

// Seeder loads the catalog and demo accounts from YAML files and creates the
// entries that are missing. Running it twice creates nothing the second time.
type Seeder struct {
	propertyTypes repository.PropertyTypeRepositoryInterface
	features      repository.FeatureRepositoryInterface
	users         repository.UserRepositoryInterface
	managers      map[models.Role]service.RoleManagerInterface
	log           *logger.Logger
}

// NewSeeder creates a new Seeder
func NewSeeder(
	propertyTypes repository.PropertyTypeRepositoryInterface,
	features repository.FeatureRepositoryInterface,
	users repository.UserRepositoryInterface,
	managers ...service.RoleManagerInterface,
) *Seeder {
	byRole := make(map[models.Role]service.RoleManagerInterface, len(managers))
	for _, m := range managers {
		byRole[m.Role()] = m
	}
	return &Seeder{
		propertyTypes: propertyTypes,
		features:      features,
		users:         users,
		managers:      byRole,
		log:           logger.For("seed"),
	}
}

// Load reads and merges every .yaml and .yml file under dataDir
func Load(dataDir string) (*DataFile, error) {
	var all DataFile

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
		var file DataFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}

		all.PropertyTypes = append(all.PropertyTypes, file.PropertyTypes...)
		all.Features = append(all.Features, file.Features...)
		all.Accounts = append(all.Accounts, file.Accounts...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &all, nil
}

// Run loads dataDir and creates the missing entries
func (s *Seeder) Run(dataDir string) (*Result, error) {
	data, err := Load(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load data from %s: %w", dataDir, err)
	}
	return s.Apply(data)
}

// Apply creates the missing entries of data
func (s *Seeder) Apply(data *DataFile) (*Result, error) {
	result := &Result{}

	for _, pt := range data.PropertyTypes {
		created, err := s.createPropertyType(pt)
		if err != nil {
			return nil, fmt.Errorf("failed to create property type %s: %w", pt.Name, err)
		}
		result.PropertyTypes.Total++
		if created {
			result.PropertyTypes.Created++
		}
	}
	s.log.Infof("Property types: %d created, %d total", result.PropertyTypes.Created, result.PropertyTypes.Total)

	for _, f := range data.Features {
		created, err := s.createFeature(f)
		if err != nil {
			return nil, fmt.Errorf("failed to create feature %s: %w", f.Name, err)
		}
		result.Features.Total++
		if created {
			result.Features.Created++
		}
	}
	s.log.Infof("Features: %d created, %d total", result.Features.Created, result.Features.Total)

	for _, a := range data.Accounts {
		created, err := s.createAccount(a)
		if err != nil {
			s.log.WithError(err).WithField("email", a.Email).Warn("failed to create account")
			continue
		}
		result.Accounts.Total++
		if created {
			result.Accounts.Created++
		}
	}
	s.log.Infof("Accounts: %d created, %d total", result.Accounts.Created, result.Accounts.Total)

	return result, nil
}

func (s *Seeder) createPropertyType(data PropertyTypeData) (bool, error) {
	name := strings.TrimSpace(data.Name)
	if name == "" {
		return false, fmt.Errorf("name is required")
	}
	if _, err := s.propertyTypes.GetByName(name); err == nil {
		return false, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to query property type: %w", err)
	}
	if err := s.propertyTypes.Create(&models.PropertyType{Name: name}); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Seeder) createFeature(data FeatureData) (bool, error) {
	name := strings.TrimSpace(data.Name)
	if name == "" {
		return false, fmt.Errorf("name is required")
	}
	if _, err := s.features.GetByName(name); err == nil {
		return false, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to query feature: %w", err)
	}
	if err := s.features.Create(&models.Feature{Name: name}); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Seeder) createAccount(data AccountData) (bool, error) {
	role := models.Role(strings.ToLower(strings.TrimSpace(data.Role)))
	manager, ok := s.managers[role]
	if !ok {
		return false, fmt.Errorf("unknown role %q", data.Role)
	}
	if _, err := s.users.GetByEmail(service.NormalizeEmail(data.Email)); err == nil {
		return false, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to query user: %w", err)
	}

	_, err := manager.CreateUser(data.Username, data.Email, data.Password, service.UserFields{
		FirstName:   data.FirstName,
		LastName:    data.LastName,
		PhoneNumber: data.PhoneNumber,
		About:       data.About,
	})
	if err != nil {
		return false, err
	}
	return true, nil
}
