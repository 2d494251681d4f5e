package types

type DataResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type LoginResponse struct {
	AccessToken string      `json:"access_token"`
	AccountType string      `json:"account_type"`
	Account     interface{} `json:"account"`
	// RequiresTwoFactor signals that the credential check passed but a
	// second factor (or a valid device token) is still needed.
	RequiresTwoFactor bool `json:"requires_two_factor,omitempty"`
}

type TwoFactorSetupResponse struct {
	Secret      string   `json:"secret"`
	QRCode      string   `json:"qr_code"`
	BackupCodes []string `json:"backup_codes"`
}

type TwoFactorVerifyResponse struct {
	AccessToken string      `json:"access_token"`
	DeviceToken string      `json:"device_token,omitempty"`
	DeviceID    string      `json:"device_id,omitempty"`
	AccountType string      `json:"account_type"`
	Account     interface{} `json:"account"`
}

// ImageDeleteResult reports best-effort cleanup outcomes; batch deletes
// never fail the surrounding operation.
type ImageDeleteResult struct {
	DeletedCount int `json:"deletedCount"`
	FailedCount  int `json:"failedCount"`
}

type SubtaskWithPhase struct {
	Subtask    `bson:",inline"`
	PhaseID    string `json:"phase_id"`
	PhaseTitle string `json:"phase_title"`
}

type PhaseCommentView struct {
	Text        string `json:"text"`
	CommentedBy string `json:"commentedBy"`
	Timestamp   string `json:"timestamp"`
}

type SubtaskActivityEntry struct {
	ID        int    `json:"id"`
	Action    string `json:"action"`
	Details   string `json:"details"`
	Timestamp string `json:"timestamp"`
	User      string `json:"user"`
	Type      string `json:"type"`
}
