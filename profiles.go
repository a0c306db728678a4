package snowbase

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectionProfile is a saved set of connection attributes. The
// password is never stored; callers supply it per request.
type ConnectionProfile struct {
	ID        string `json:"id" gorm:"primaryKey"`
	Name      string `json:"name"`
	Account   string `json:"account"`
	Username  string `json:"username"`
	Role      string `json:"role,omitempty"`
	Warehouse string `json:"warehouse,omitempty"`
}

// ProfileStore persists connection profiles in a local SQLite file.
type ProfileStore struct {
	db *gorm.DB
}

// OpenProfileStore opens and migrates the profile database.
func OpenProfileStore(path string) (*ProfileStore, error) {
	cfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}
	db, err := gorm.Open(sqlite.Open(path), cfg)
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&ConnectionProfile{}); err != nil {
		return nil, err
	}
	return &ProfileStore{db: db}, nil
}

// List returns all stored connection profiles ordered by name.
func (s *ProfileStore) List() ([]ConnectionProfile, error) {
	out := make([]ConnectionProfile, 0)
	if err := s.db.Order("name").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Save stores a new connection profile.
func (s *ProfileStore) Save(p ConnectionProfile) error {
	return s.db.Create(&p).Error
}

// Get retrieves a connection profile by ID.
func (s *ProfileStore) Get(id string) (ConnectionProfile, bool) {
	var p ConnectionProfile
	if err := s.db.First(&p, "id = ?", id).Error; err != nil {
		return ConnectionProfile{}, false
	}
	return p, true
}

// newRandomID returns a random hex id for new profiles.
func newRandomID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return time.Now().Format("20060102150405.000000")
	}
	return hex.EncodeToString(b)
}
