package repository

import (
	"fmt"
	"os"

	"access-log-service/internal/models"

	"gopkg.in/yaml.v3"
)

type seedFile struct {
	Users []models.User `yaml:"users"`
}

// LoadUsers reads credential seed data from a YAML file.
// An empty path selects models.DefaultUsers.
//
//	users:
//	  - id: 1
//	    username: Aryan
//	    password: password123
func LoadUsers(path string) ([]models.User, error) {
	if path == "" {
		return models.DefaultUsers(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed users: %w", err)
	}

	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse seed users: %w", err)
	}

	for i, u := range seed.Users {
		if u.Username == "" || u.Password == "" {
			return nil, fmt.Errorf("seed user %d: username and password are required", i+1)
		}
		if u.ID == 0 {
			seed.Users[i].ID = uint(i + 1)
		}
	}

	return seed.Users, nil
}
