package types

type RegisterRequest struct {
	CompanyName     string `json:"companyName"`
	CompanyDomain   string `json:"companyDomain"`
	CompanyID       string `json:"companyID"`
	CompanyAddress  string `json:"companyAddress"`
	FoundedYear     int    `json:"founded_year"`
	Website         string `json:"website"`
	Industry        string `json:"industry"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateProfileRequest struct {
	CompanyName    string `json:"companyName"`
	CompanyDomain  string `json:"companyDomain"`
	CompanyAddress string `json:"companyAddress"`
	Email          string `json:"email"`
	Website        string `json:"website"`
	Industry       string `json:"industry"`
	Department     string `json:"department"`
	AccountType    string `json:"accountType"`
	CompanyLogo    string `json:"companyLogo"`
}

type AddEmployeeRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Designation string `json:"designation"`
	Role        string `json:"role"`
	Location    string `json:"location"`
	PhoneNo     string `json:"phoneNo"`
	ProfileLogo string `json:"profileLogo"`
}

type EditEmployeeRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Designation string `json:"designation"`
	Role        string `json:"role"`
	Location    string `json:"location"`
	PhoneNo     string `json:"phoneNo"`
	ProfileLogo string `json:"profileLogo"`
}

type EmployeeFirstLoginRequest struct {
	Email           string `json:"email"`
	OldPassword     string `json:"oldPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

type CreateTeamRequest struct {
	TeamName    string   `json:"teamName"`
	Description string   `json:"description"`
	TeamLead    string   `json:"teamLead"`
	TeamMembers []string `json:"teamMembers"`
}

type UpdateTeamRequest struct {
	TeamName    string   `json:"teamName"`
	Description *string  `json:"description"`
	TeamLead    string   `json:"teamLead"`
	TeamMembers []string `json:"teamMembers"`
}

type CreateProjectRequest struct {
	ProjectName        string   `json:"project_name"`
	ClientName         string   `json:"client_name"`
	ProjectDescription string   `json:"project_description"`
	StartDate          string   `json:"start_date"`
	EndDate            string   `json:"end_date"`
	ProjectLead        string   `json:"project_lead"`
	TeamMembers        []string `json:"team_members"`
	ProjectStatus      string   `json:"project_status"`
	TeamID             string   `json:"team_id"`
}

type UpdateProjectRequest struct {
	ProjectName        string   `json:"project_name"`
	ClientName         string   `json:"client_name"`
	ProjectDescription string   `json:"project_description"`
	StartDate          string   `json:"start_date"`
	EndDate            string   `json:"end_date"`
	ProjectLead        string   `json:"project_lead"`
	ProjectStatus      string   `json:"project_status"`
	TeamID             string   `json:"team_id"`
	AddMembers         []string `json:"add_members"`
	RemoveMembers      []string `json:"remove_members"`
}

type AddPhaseRequest struct {
	ProjectID   string `json:"projectId"`
	ProjectName string `json:"projectName"`
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate"`
}

type UpdatePhaseStatusRequest struct {
	ProjectID   string `json:"projectId"`
	ProjectName string `json:"projectName"`
	PhaseID     string `json:"phaseId"`
	PhaseTitle  string `json:"phaseTitle"`
	Status      string `json:"status"`
}

type DeletePhaseRequest struct {
	ProjectID   string `json:"projectId"`
	ProjectName string `json:"projectName"`
	PhaseID     string `json:"phase_id"`
	Title       string `json:"title"`
}

type AddPhaseCommentRequest struct {
	Text string `json:"text"`
}

// AddSubtaskRequest carries the decoded multipart form for subtask
// creation. Images are raw file bytes, uploaded through the image store.
type AddSubtaskRequest struct {
	PhaseID        string   `json:"phase_id"`
	SubtaskTitle   string   `json:"subtask_title"`
	Description    string   `json:"description"`
	AssignedTeam   string   `json:"assigned_team"`
	AssignedMember string   `json:"assigned_member"`
	Images         [][]byte `json:"-"`
}

type EditSubtaskRequest struct {
	SubtaskID      string   `json:"subtask_id"`
	SubtaskTitle   string   `json:"subtask_title"`
	Description    string   `json:"description"`
	AssignedMember string   `json:"assigned_member"`
	ExistingImages []string `json:"existing_images"`
	NewImages      [][]byte `json:"-"`
}

type UpdateSubtaskStatusRequest struct {
	SubtaskID string `json:"subtask_id"`
	Status    string `json:"status"`
}

type DeleteSubtaskRequest struct {
	SubtaskID string `json:"subtask_id"`
}

type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	AssignedTo  string `json:"assignedTo"`
	Project     string `json:"project"`
	Priority    string `json:"priority"`
	DueDate     string `json:"dueDate"`
}

type UpdateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	AssignedTo  string `json:"assignedTo"`
	Project     string `json:"project"`
	Priority    string `json:"priority"`
	DueDate     string `json:"dueDate"`
}

// UpdateTasksByAssigneeRequest targets every task assigned to one member.
// NewAssignedTo reassigns the batch and forces status back to pending.
type UpdateTasksByAssigneeRequest struct {
	Title          string `json:"title"`
	Description    string `json:"description"`
	Status         string `json:"status"`
	NewAssignedTo  string `json:"newAssignedTo"`
	Priority       string `json:"priority"`
	DueDate        string `json:"dueDate"`
	Project        string `json:"project"`
	DeletionReason string `json:"deletionReason"`
	Comment        string `json:"comment"`
}

type DeleteTaskRequest struct {
	Reason string `json:"reason"`
}

type SendOTPRequest struct {
	Email string `json:"email"`
}

type VerifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email"`
	NewPassword string `json:"newPassword"`
}

type TwoFactorCodeRequest struct {
	Token string `json:"token"`
}

type VerifyTwoFactorRequest struct {
	Email          string `json:"email"`
	Token          string `json:"token"`
	RememberDevice bool   `json:"rememberDevice"`
	DeviceName     string `json:"deviceName"`
}

type ValidateDeviceTokenRequest struct {
	Email       string `json:"email"`
	DeviceToken string `json:"deviceToken"`
	DeviceID    string `json:"deviceId"`
}

type UpdateNotificationSettingsRequest struct {
	EmailNotifications bool `json:"emailNotifications"`
	TaskReminders      bool `json:"taskReminders"`
	ProjectUpdates     bool `json:"projectUpdates"`
	TeamMessages       bool `json:"teamMessages"`
	WeeklyReports      bool `json:"weeklyReports"`
	DailyDigest        bool `json:"dailyDigest"`
}

type UpdateAppearanceSettingsRequest struct {
	Theme                string `json:"theme"`
	SidebarCollapsed     bool   `json:"sidebarCollapsed"`
	CompactMode          bool   `json:"compactMode"`
	ShowAvatars          bool   `json:"showAvatars"`
	ShowStatusIndicators bool   `json:"showStatusIndicators"`
}

type UpdateSecuritySettingsRequest struct {
	TwoFactorAuth  bool `json:"twoFactorAuth"`
	SessionTimeout int  `json:"sessionTimeout"`
	LoginAlerts    bool `json:"loginAlerts"`
}

type UpdatePrivacySettingsRequest struct {
	ProfileVisibility   string `json:"profileVisibility"`
	ActivityVisibility  string `json:"activityVisibility"`
	ShowOnlineStatus    bool   `json:"showOnlineStatus"`
	AllowDirectMessages bool   `json:"allowDirectMessages"`
}
