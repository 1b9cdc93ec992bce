package services

import (
	"os"
	"path/filepath"
	"sort"
	"time"

	json "github.com/goccy/go-json"

	"cloudtidy/internal/models"
	"cloudtidy/internal/providers"
	"cloudtidy/internal/structures"
)

// LastUsedLayout is the timestamp format stored in the session file.
const LastUsedLayout = "2006-01-02 15:04:05"

type SessionServiceInterface interface {
	Accounts() []string
	Get(account string) (models.Session, bool)
	Touch(account, password string, now time.Time)
}

// SessionService persists account credentials across runs. A missing or
// corrupt session file degrades to an empty store, never to a failed run.
type SessionService struct {
	path     string
	logger   providers.Logger
	sessions models.SessionMap
}

func NewSessionService(conf *structures.Config, logger providers.Logger) SessionServiceInterface {
	s := &SessionService{
		path:     conf.Session.FilePath,
		logger:   logger,
		sessions: make(models.SessionMap),
	}
	s.load()
	return s
}

func (s *SessionService) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Errorf(providers.TypeApp, "Error loading sessions: %s", err)
		}
		return
	}

	var sessions models.SessionMap
	if err := json.Unmarshal(data, &sessions); err != nil {
		s.logger.Errorf(providers.TypeApp, "Error loading sessions: %s", err)
		return
	}
	s.sessions = sessions
}

// Accounts returns saved account ids in a stable order for menu numbering.
func (s *SessionService) Accounts() []string {
	accounts := make([]string, 0, len(s.sessions))
	for account := range s.sessions {
		accounts = append(accounts, account)
	}
	sort.Strings(accounts)
	return accounts
}

func (s *SessionService) Get(account string) (models.Session, bool) {
	session, ok := s.sessions[account]
	return session, ok
}

// Touch records a successful login and rewrites the store. A save failure
// is logged and the run continues; the login itself already succeeded.
func (s *SessionService) Touch(account, password string, now time.Time) {
	s.sessions[account] = models.Session{
		Password: password,
		LastUsed: now.Format(LastUsedLayout),
	}

	if err := s.save(); err != nil {
		s.logger.Errorf(providers.TypeApp, "Error saving sessions: %s", err)
		return
	}
	s.logger.Infof(providers.TypeApp, "Sessions saved successfully")
}

func (s *SessionService) save() error {
	data, err := json.MarshalIndent(s.sessions, "", "    ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}

	tmpFile := s.path + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	if _, err = file.Write(data); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, s.path)
}
