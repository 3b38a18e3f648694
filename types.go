// Package keyenv defines the wire types returned by the KeyEnv API.
// Field names follow the API's snake_case convention; unknown wire fields
// are ignored for forward compatibility.
package keyenv

import "time"

// Project is a top-level container owned by a team. Environments is
// populated when the server expands the project.
type Project struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	TeamID       string        `json:"team_id"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
	Environments []Environment `json:"environments"`
}

// Team owns projects.
type Team struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Environment is a named configuration scope within a project. An
// environment may inherit unset keys from the environment identified by
// InheritsFromID; the server rejects inheritance cycles.
type Environment struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	ProjectID      string    `json:"project_id"`
	InheritsFromID string    `json:"inherits_from_id"`
	Order          int       `json:"order"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Secret is the base shape shared by all secret views.
type Secret struct {
	ID            string    `json:"id"`
	Key           string    `json:"key"`
	EnvironmentID string    `json:"environment_id"`
	Description   string    `json:"description"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// SecretWithInheritance is the listing view: no value, but the source
// environment when the secret is inherited.
type SecretWithInheritance struct {
	Secret
	InheritedFrom string `json:"inherited_from"`
}

// IsInherited reports whether the secret comes from an ancestor
// environment rather than being set locally.
func (s *SecretWithInheritance) IsInherited() bool {
	return s.InheritedFrom != ""
}

// SecretWithValue is the single-secret fetch view, including the
// decrypted value.
type SecretWithValue struct {
	Secret
	Value string `json:"value"`
}

// SecretWithValueAndInheritance is the bulk export view: value plus the
// environment the value was resolved from, when inherited.
type SecretWithValueAndInheritance struct {
	Secret
	Value         string `json:"value"`
	InheritedFrom string `json:"inherited_from"`
}

// IsInherited reports whether the value was resolved from an ancestor
// environment.
func (s *SecretWithValueAndInheritance) IsInherited() bool {
	return s.InheritedFrom != ""
}

// SecretInput is the write-only payload for bulk import.
type SecretInput struct {
	Key         string `json:"key"`
	Value       string `json:"value"`
	Description string `json:"description,omitempty"`
}

// SecretHistory is one entry of a secret's append-only audit trail.
// Version is monotonic per secret and server-owned.
type SecretHistory struct {
	ID         string    `json:"id"`
	SecretID   string    `json:"secret_id"`
	Key        string    `json:"key"`
	Version    int       `json:"version"`
	ChangedBy  string    `json:"changed_by"`
	ChangeType string    `json:"change_type"`
	CreatedAt  time.Time `json:"created_at"`
}

// Permission is one (user, environment) role assignment.
type Permission struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	UserEmail       string    `json:"user_email"`
	EnvironmentID   string    `json:"environment_id"`
	EnvironmentName string    `json:"environment_name"`
	Role            string    `json:"role"`
	CanWrite        bool      `json:"can_write"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// PermissionInput is the write-only payload for bulk permission updates.
type PermissionInput struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

// DefaultPermission maps an environment to the role granted by default.
type DefaultPermission struct {
	EnvironmentName string `json:"environment_name"`
	DefaultRole     string `json:"default_role"`
}

// MyPermissionsResponse is the caller's effective permissions for one
// project.
type MyPermissionsResponse struct {
	Permissions []Permission `json:"permissions"`
	IsTeamAdmin bool         `json:"is_team_admin"`
}

// User is a human principal.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// ServiceToken is a non-human credential scoped to a project.
type ServiceToken struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	ProjectID   string    `json:"project_id"`
	ProjectName string    `json:"project_name"`
	Permissions []string  `json:"permissions"`
	ExpiresAt   time.Time `json:"expires_at"`
	CreatedAt   time.Time `json:"created_at"`
}

// IsExpired reports whether the token's expiry is in the past. Tokens
// without an expiry never expire.
func (t *ServiceToken) IsExpired() bool {
	return !t.ExpiresAt.IsZero() && time.Now().After(t.ExpiresAt)
}

// Principal type discriminants for CurrentUserResponse.
const (
	PrincipalUser         = "user"
	PrincipalServiceToken = "service_token"
)

// CurrentUserResponse is a tagged union over the authenticated principal:
// Type selects which of User or ServiceToken is populated.
type CurrentUserResponse struct {
	Type         string        `json:"type"`
	User         *User         `json:"user"`
	ServiceToken *ServiceToken `json:"service_token"`
}

// IsUser reports whether the caller authenticated as a human user.
func (r *CurrentUserResponse) IsUser() bool {
	return r.Type == PrincipalUser
}

// IsServiceToken reports whether the caller authenticated with a service
// token.
func (r *CurrentUserResponse) IsServiceToken() bool {
	return r.Type == PrincipalServiceToken
}

// BulkImportResult reports the outcome of a bulk import.
type BulkImportResult struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
	Skipped int `json:"skipped"`
}

// Total is the number of secrets considered by the import.
func (r *BulkImportResult) Total() int {
	return r.Created + r.Updated + r.Skipped
}
