package domain

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleAdmin:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}

// ReadMode controls whether reading an incomplete content item may trigger
// analysis and a write.
type ReadMode string

const (
	// ReadModeLazy analyzes and persists missing fields on read.
	ReadModeLazy   ReadMode = "lazy"
	// ReadModeStrict never writes on read.
	ReadModeStrict ReadMode = "strict"
)

func (m ReadMode) IsValid() bool {
	switch m {
	case ReadModeLazy, ReadModeStrict:
		return true
	}
	return false
}
