package session

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"sync"

	"github.com/raksha-app/raksha/utils"
)

const sessionFileName = "session.json"

// User is the identity half of a stored session.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// filePayload mirrors the two fixed storage keys used by the web client,
// so a session written by either stays readable by both.
type filePayload struct {
	Token string `json:"raksha_token"`
	User  *User  `json:"raksha_user"`
}

// Store holds the current auth token & user identity, backed by a json
// file in the raksha config directory. A token is trusted until an
// explicit Logout - there is no expiry or refresh logic here.
type Store struct {
	mu       sync.Mutex
	filePath string
	token    string
	user     *User
}

func NewStore(configDir string) (*Store, error) {
	if err := utils.CreateDirIfNotExist(configDir); err != nil {
		return nil, err
	}

	store := &Store{filePath: filepath.Join(configDir, sessionFileName)}
	store.load()

	return store, nil
}

// load populates the in-memory session from disk. A missing or mangled
// session file just means the user is signed out.
func (s *Store) load() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !utils.FileExist(s.filePath) {
		return
	}

	content, err := ioutil.ReadFile(s.filePath)
	if err != nil {
		return
	}

	payload := filePayload{}
	if err := json.Unmarshal(content, &payload); err != nil {
		return
	}

	s.token = payload.Token
	s.user = payload.User
}

// Login persists the token & user to disk and updates the in-memory
// session. The file is written via rename, so a crash mid-write can't
// leave a half-written session behind.
func (s *Store) Login(token string, user User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	content, err := json.MarshalIndent(filePayload{Token: token, User: &user}, "", "  ")
	if err != nil {
		return err
	}

	tmpPath := s.filePath + ".tmp"
	if err := ioutil.WriteFile(tmpPath, content, 0600); err != nil {
		return err
	}

	if err := os.Rename(tmpPath, s.filePath); err != nil {
		return err
	}

	s.token = token
	s.user = &user

	return nil
}

// Logout clears both the durable and the in-memory session.
func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.user = nil

	if !utils.FileExist(s.filePath) {
		return nil
	}

	return os.Remove(s.filePath)
}

func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.token
}

func (s *Store) User() *User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return nil
	}

	user := *s.user
	return &user
}

// Authenticated reports whether a session token is present - the panels
// treat this as the single source of truth for "signed in".
func (s *Store) Authenticated() bool {
	return s.Token() != ""
}
