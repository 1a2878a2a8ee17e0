package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role is the closed set of access levels. Each role maps to exactly one
// dashboard; adding a role means extending RouteFor as well.
type Role string

const (
	RoleGeneralPhysician Role = "gp"
	RoleSpecialist       Role = "specialist"
	RolePatient          Role = "patient"
	RoleAdmin            Role = "admin"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleGeneralPhysician, RoleSpecialist, RolePatient, RoleAdmin:
		return true
	}
	return false
}

func (r Role) DisplayName() string {
	switch r {
	case RoleGeneralPhysician:
		return "General Physician"
	case RoleSpecialist:
		return "Specialist Doctor"
	case RolePatient:
		return "Patient"
	case RoleAdmin:
		return "Admin"
	}
	return "Unknown"
}

// User is the identity record. The profile row is created in a second write
// keyed by this id; a failed profile write deletes the identity again.
type User struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CreatedAt time.Time  `gorm:"autoCreateTime"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime"`
	DeletedAt *time.Time `gorm:"index"`

	Email        string `gorm:"column:email;type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"column:password_hash;type:varchar(255);not null"`
	Role         Role   `gorm:"column:role;type:varchar(20);not null;index"`

	// For patient-role users, links to their directory record (health-card id)
	HealthCardID string `gorm:"column:health_card_id;type:varchar(20);index"`

	IsActive         bool       `gorm:"column:is_active;default:true;index"`
	FailedLoginCount int        `gorm:"column:failed_login_count;default:0"`
	LockedUntil      *time.Time `gorm:"column:locked_until"`
	LastLoginAt      *time.Time `gorm:"column:last_login_at"`
}

func (User) TableName() string {
	return "auth.users"
}

// IsLocked returns true if the account is temporarily locked due to failed logins.
func (u *User) IsLocked() bool {
	return u.LockedUntil != nil && time.Now().Before(*u.LockedUntil)
}

// Profile is the second write of sign-up, keyed by the identity id.
type Profile struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName  string    `gorm:"column:full_name;type:varchar(200);not null"`
	Email     string    `gorm:"column:email;type:varchar(255);not null"`
	Role      Role      `gorm:"column:role;type:varchar(20);not null"`
	Phone     string    `gorm:"column:phone;type:varchar(20)"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Profile) TableName() string {
	return "auth.profiles"
}

type AuditAction string

const (
	ActionLogin    AuditAction = "login"
	ActionLogout   AuditAction = "logout"
	ActionSignup   AuditAction = "signup"
	ActionRead     AuditAction = "read"
	ActionTriage   AuditAction = "triage"
	ActionDispatch AuditAction = "dispatch"
	ActionReserve  AuditAction = "reserve"
	ActionCall     AuditAction = "call"
)

type AuditLog struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OccurredAt time.Time `gorm:"autoCreateTime;index"`

	// Who
	UserID    uuid.UUID `gorm:"column:user_id;type:uuid;not null;index"`
	UserRole  Role      `gorm:"column:user_role;type:varchar(20);not null"`
	IPAddress string    `gorm:"column:ip_address;type:varchar(45)"` // Supports IPv6

	// What
	Action       AuditAction `gorm:"column:action;type:varchar(20);not null;index"`
	ResourceType string      `gorm:"column:resource_type;type:varchar(50);not null;index"`
	ResourceID   string      `gorm:"column:resource_id;type:varchar(50);index"`

	RequestID string `gorm:"column:request_id;type:varchar(50);index"`
	Detail    string `gorm:"column:detail;type:text"`
}

func (AuditLog) TableName() string {
	return "audit.logs"
}

type TokenPair struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
	TokenType    string    `json:"token_type"` // Always "Bearer"
}

type Claims struct {
	UserID       uuid.UUID `json:"sub"`
	Email        string    `json:"email"`
	Role         Role      `json:"role"`
	HealthCardID string    `json:"health_card_id,omitempty"`
}

// SessionEventKind classifies session lifecycle notifications delivered to
// hub subscribers.
type SessionEventKind string

const (
	SessionSignedIn  SessionEventKind = "signed_in"
	SessionSignedOut SessionEventKind = "signed_out"
	SessionRefreshed SessionEventKind = "refreshed"
)

type SessionEvent struct {
	Kind       SessionEventKind
	UserID     uuid.UUID
	Email      string
	Role       Role
	OccurredAt time.Time
}
