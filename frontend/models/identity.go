package models

type Identity struct {
	Role        string   `json:"role"` // student, admin
	DisplayName string   `json:"displayName"`
	Username    string   `json:"username"`
	StudentID   int      `json:"studentId,omitempty"`
	Courses     []Course `json:"courses,omitempty"`
}

func (i Identity) IsAdmin() bool {
	return i.Role == "admin"
}

// Name returns the label shown in the dashboard header.
func (i Identity) Name() string {
	if i.DisplayName != "" {
		return i.DisplayName
	}
	return i.Username
}
