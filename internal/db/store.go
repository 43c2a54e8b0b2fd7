// exposes a Store interface that is passed to API controllers
package db

import (
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/JasonLazzuri/Mesophy-sub003/internal/model"
)

type Store interface {
	// user functions
	CreateUser(organizationID int, email, hashedPassword string, name *string) (int, error)
	GetUserByEmail(email string) (*model.User, error)
	GetUserByID(id int) (*model.User, error)
	UpdateUserProfile(id int, email string, name *string) error

	// hierarchy functions
	GetOrganization(id int) (model.Organization, error)
	ListLocations(organizationID int) ([]model.Location, error)

	// screen functions
	GetScreenByID(id int) (model.Screen, error)
	GetScreenByDeviceID(deviceID string) (model.Screen, error)
	ListScreens(organizationID int) ([]model.Screen, error)
	CreateScreen(organizationID, locationID int, screenType model.ScreenType, name string, createdBy int) (model.Screen, error)
	UpdateScreen(id int, name *string, locationID *int) error
	DeleteScreen(id int) error
	PairScreen(id int, deviceID string) error

	// schedule functions
	ListActiveSchedules(organizationID int) ([]model.Schedule, error)
	ListSchedules(organizationID int) ([]model.Schedule, error)
	GetSchedule(id int) (model.Schedule, error)
	CreateSchedule(s model.Schedule) (model.Schedule, error)
	UpdateSchedule(s model.Schedule) (model.Schedule, error)
	DeleteSchedule(id int) error

	// polling configuration functions
	GetPollingConfig(organizationID int) (model.PollingConfiguration, error)
	SavePollingConfig(cfg model.PollingConfiguration) error
	ActivateEmergency(organizationID int, startedAt time.Time) error
	DeactivateEmergency(organizationID int) error
	ClearExpiredEmergency(organizationID int, startedAt *time.Time) error

	// playlist functions
	GetPlaylistByID(id int) (model.Playlist, error)
	ListPlaylists(organizationID int) ([]model.Playlist, error)
}

type pgStore struct {
	db *sqlx.DB
}

// compile-time check that pgStore implements Store
var _ Store = (*pgStore)(nil)

func NewStore() Store {
	return &pgStore{db: DB}
}
