package types

import "time"

// SecurityState carries the credential-recovery and second-factor state
// shared by both account kinds. It is inlined so the document layout stays
// flat, matching the legacy field names.
type SecurityState struct {
	ResetOTP         string          `json:"-" bson:"resetOTP,omitempty"`
	ResetOTPExpiry   *time.Time      `json:"-" bson:"resetOTPExpiry,omitempty"`
	TwoFactorEnabled bool            `json:"twoFactorEnabled" bson:"twoFactorEnabled"`
	TwoFactorSecret  string          `json:"-" bson:"twoFactorSecret,omitempty"`
	BackupCodes      []string        `json:"-" bson:"backupCodes,omitempty"`
	TrustedDevices   []TrustedDevice `json:"trustedDevices,omitempty" bson:"trustedDevices,omitempty"`
}

type TrustedDevice struct {
	DeviceID   string    `json:"deviceId" bson:"deviceId"`
	DeviceName string    `json:"deviceName" bson:"deviceName"`
	LastUsed   time.Time `json:"lastUsed" bson:"lastUsed"`
	ExpiresAt  time.Time `json:"expiresAt" bson:"expiresAt"`
	IPAddress  string    `json:"ipAddress,omitempty" bson:"ipAddress,omitempty"`
	UserAgent  string    `json:"userAgent,omitempty" bson:"userAgent,omitempty"`
}

type NotificationSettings struct {
	EmailNotifications bool `json:"emailNotifications" bson:"emailNotifications"`
	TaskReminders      bool `json:"taskReminders" bson:"taskReminders"`
	ProjectUpdates     bool `json:"projectUpdates" bson:"projectUpdates"`
	TeamMessages       bool `json:"teamMessages" bson:"teamMessages"`
	WeeklyReports      bool `json:"weeklyReports" bson:"weeklyReports"`
	DailyDigest        bool `json:"dailyDigest" bson:"dailyDigest"`
}

type AppearanceSettings struct {
	Theme                string `json:"theme" bson:"theme"`
	SidebarCollapsed     bool   `json:"sidebarCollapsed" bson:"sidebarCollapsed"`
	CompactMode          bool   `json:"compactMode" bson:"compactMode"`
	ShowAvatars          bool   `json:"showAvatars" bson:"showAvatars"`
	ShowStatusIndicators bool   `json:"showStatusIndicators" bson:"showStatusIndicators"`
}

type SecuritySettings struct {
	TwoFactorAuth  bool `json:"twoFactorAuth" bson:"twoFactorAuth"`
	SessionTimeout int  `json:"sessionTimeout" bson:"sessionTimeout"`
	LoginAlerts    bool `json:"loginAlerts" bson:"loginAlerts"`
}

type PrivacySettings struct {
	ProfileVisibility   string `json:"profileVisibility" bson:"profileVisibility"`
	ActivityVisibility  string `json:"activityVisibility" bson:"activityVisibility"`
	ShowOnlineStatus    bool   `json:"showOnlineStatus" bson:"showOnlineStatus"`
	AllowDirectMessages bool   `json:"allowDirectMessages" bson:"allowDirectMessages"`
}

type Settings struct {
	Notifications NotificationSettings `json:"notifications" bson:"notifications"`
	Appearance    AppearanceSettings   `json:"appearance" bson:"appearance"`
	Security      SecuritySettings     `json:"security" bson:"security"`
	Privacy       PrivacySettings      `json:"privacy" bson:"privacy"`
}

// User is the company owner account, one per tenant. The company fields
// double as the tenant registration record.
type User struct {
	ID             string        `json:"id" bson:"_id,omitempty"`
	CompanyName    string        `json:"companyName" bson:"companyName"`
	CompanyDomain  string        `json:"companyDomain" bson:"companyDomain"`
	CompanyID      string        `json:"companyID" bson:"companyID"`
	CompanyAddress string        `json:"companyAddress" bson:"companyAddress"`
	FoundedYear    int           `json:"founded_year" bson:"founded_year"`
	Website        string        `json:"website,omitempty" bson:"website,omitempty"`
	Industry       string        `json:"industry,omitempty" bson:"industry,omitempty"`
	FirstName      string        `json:"firstName" bson:"firstName"`
	LastName       string        `json:"lastName" bson:"lastName"`
	Email          string        `json:"email" bson:"email"`
	Password       string        `json:"-" bson:"password"`
	Role           string        `json:"role" bson:"role"`
	EmployeeID     string        `json:"employeeID" bson:"employeeID"`
	Department     string        `json:"department,omitempty" bson:"department,omitempty"`
	JoinDate       time.Time     `json:"joinDate" bson:"joinDate"`
	AccountStatus  string        `json:"accountStatus" bson:"accountStatus"`
	EmailVerified  bool          `json:"emailVerified" bson:"emailVerified"`
	LastLogin      time.Time     `json:"lastLogin" bson:"lastLogin"`
	AccountType    string        `json:"accountType" bson:"accountType"`
	Token          string        `json:"-" bson:"token,omitempty"`
	CompanyLogo    string        `json:"companyLogo,omitempty" bson:"companyLogo,omitempty"`
	Settings       Settings      `json:"settings" bson:"settings"`
	SecurityState  `bson:",inline"`
}

// Employee is a staff account created by an authorized principal. It lives
// in its own collection with an independent credential lifecycle.
type Employee struct {
	ID                 string     `json:"id" bson:"_id,omitempty"`
	Name               string     `json:"name" bson:"name"`
	Email              string     `json:"email" bson:"email"`
	Password           string     `json:"-" bson:"password"`
	TeamMemberID       string     `json:"teamMemberId" bson:"teamMemberId"`
	Designation        string     `json:"designation,omitempty" bson:"designation,omitempty"`
	PhoneNo            string     `json:"phoneNo" bson:"phoneNo"`
	CompanyName        string     `json:"companyName" bson:"companyName"`
	ProfileLogo        string     `json:"profileLogo,omitempty" bson:"profileLogo,omitempty"`
	MustChangePassword bool       `json:"mustChangePassword" bson:"mustChangePassword"`
	PasswordExpiresAt  *time.Time `json:"passwordExpiresAt,omitempty" bson:"passwordExpiresAt,omitempty"`
	AddedBy            string     `json:"addedBy" bson:"addedBy"`
	Role               string     `json:"role" bson:"role"`
	Location           string     `json:"location,omitempty" bson:"location,omitempty"`
	Token              string     `json:"-" bson:"token,omitempty"`
	LastLogin          time.Time  `json:"lastLogin" bson:"lastLogin"`
	SecurityState      `bson:",inline"`
}

type Team struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	TeamName    string    `json:"teamName" bson:"teamName"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	TeamLead    string    `json:"teamLead" bson:"teamLead"`
	CreatedBy   string    `json:"createdBy" bson:"createdBy"`
	Members     []string  `json:"members" bson:"members"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	CompanyName string    `json:"companyName" bson:"companyName"`
}

type Comment struct {
	Text        string    `json:"text" bson:"text"`
	CommentedBy string    `json:"commentedBy" bson:"commentedBy"`
	Timestamp   time.Time `json:"timestamp" bson:"timestamp"`
}

type Subtask struct {
	SubtaskID      string    `json:"subtask_id" bson:"subtask_id"`
	SubtaskTitle   string    `json:"subtask_title" bson:"subtask_title"`
	Description    string    `json:"description,omitempty" bson:"description,omitempty"`
	AssignedTeam   string    `json:"assigned_team,omitempty" bson:"assigned_team,omitempty"`
	AssignedMember string    `json:"assigned_member,omitempty" bson:"assigned_member,omitempty"`
	Status         string    `json:"status" bson:"status"`
	Images         []string  `json:"images" bson:"images"`
	CreatedAt      time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt" bson:"updatedAt"`
}

type Phase struct {
	PhaseID     string    `json:"phase_id" bson:"phase_id"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	DueDate     string    `json:"dueDate" bson:"dueDate"`
	Status      string    `json:"status" bson:"status"`
	Comments    []Comment `json:"comments" bson:"comments"`
	Subtasks    []Subtask `json:"subtasks" bson:"subtasks"`
}

// Project is the aggregate root for the embedded phase/subtask/comment
// hierarchy. All nested mutation goes through its methods.
type Project struct {
	ID                 string     `json:"id" bson:"_id,omitempty"`
	ProjectID          string     `json:"project_id" bson:"project_id"`
	ProjectName        string     `json:"project_name" bson:"project_name"`
	ClientName         string     `json:"client_name" bson:"client_name"`
	ProjectDescription string     `json:"project_description" bson:"project_description"`
	StartDate          string     `json:"start_date" bson:"start_date"`
	EndDate            string     `json:"end_date" bson:"end_date"`
	OriginalEndDate    string     `json:"original_end_date,omitempty" bson:"original_end_date,omitempty"`
	Phases             []Phase    `json:"phases" bson:"phases"`
	ProjectStatus      string     `json:"project_status" bson:"project_status"`
	ProjectLead        string     `json:"project_lead" bson:"project_lead"`
	TeamMembers        []string   `json:"team_members" bson:"team_members"`
	CompletionNote     string     `json:"completion_note,omitempty" bson:"completion_note,omitempty"`
	TeamID             string     `json:"team_id,omitempty" bson:"team_id,omitempty"`
	CompanyName        string     `json:"companyName" bson:"companyName"`
	DeletedAt          *time.Time `json:"deletedAt,omitempty" bson:"deletedAt,omitempty"`
	CreatedAt          time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt" bson:"updatedAt"`
}

type TaskComment struct {
	Text   string    `json:"text" bson:"text"`
	Author string    `json:"author" bson:"author"`
	Date   time.Time `json:"date" bson:"date"`
}

// Task is a standalone entity assigned to an employee by teamMemberId.
// AssignedByRole is a snapshot of the assigner's role at creation time and
// drives the cross-role edit restrictions.
type Task struct {
	ID             string        `json:"id" bson:"_id,omitempty"`
	TaskID         string        `json:"task_id" bson:"task_id"`
	Title          string        `json:"title" bson:"title"`
	Description    string        `json:"description,omitempty" bson:"description,omitempty"`
	Status         string        `json:"status" bson:"status"`
	AssignedTo     string        `json:"assignedTo" bson:"assignedTo"`
	AssignedBy     string        `json:"assignedBy" bson:"assignedBy"`
	AssignedByRole string        `json:"assignedByRole" bson:"assignedByRole"`
	Project        string        `json:"project" bson:"project"`
	Priority       string        `json:"priority" bson:"priority"`
	DueDate        string        `json:"dueDate" bson:"dueDate"`
	DeletionReason string        `json:"deletionReason,omitempty" bson:"deletionReason,omitempty"`
	CreatedAt      time.Time     `json:"createdAt" bson:"createdAt"`
	CompletedAt    *time.Time    `json:"completedAt,omitempty" bson:"completedAt,omitempty"`
	CompanyName    string        `json:"companyName" bson:"companyName"`
	Comments       []TaskComment `json:"comments" bson:"comments"`
}

type Activity struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Type        string    `json:"type" bson:"type"`
	Action      string    `json:"action" bson:"action"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Timestamp   time.Time `json:"timestamp" bson:"timestamp"`
	PerformedBy string    `json:"performedBy" bson:"performedBy"`
	CompanyName string    `json:"companyName" bson:"companyName"`
}

// Counter reserves identifier sequences per tenant and kind with an atomic
// find-and-increment, closing the duplicate-suffix race of a plain
// read-max-then-write scan.
type Counter struct {
	ID          string `json:"id" bson:"_id,omitempty"`
	CompanyName string `json:"companyName" bson:"companyName"`
	Kind        string `json:"kind" bson:"kind"`
	Seq         int64  `json:"seq" bson:"seq"`
}
