package models

// Session holds saved credentials for one account. The secret is stored
// as-is; the session file is only as safe as the filesystem it sits on.
type Session struct {
	Password string `json:"password"`
	LastUsed string `json:"last_used"`
}

// SessionMap is the on-disk session store format, keyed by account id.
type SessionMap map[string]Session
