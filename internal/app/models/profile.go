package models

// Profile fields are optional display strings; the gateway holds a cached,
// possibly-stale copy per request and enforces nothing beyond shape.

// StudentProfile represents a student's profile record
type StudentProfile struct {
	ID             int64  `json:"id"`
	FirstName      string `json:"firstName,omitempty"`
	LastName       string `json:"lastName,omitempty"`
	Email          string `json:"email,omitempty"`
	Major          string `json:"major,omitempty"`
	GraduationYear int    `json:"graduationYear,omitempty"`
	ResumeURL      string `json:"resumeUrl,omitempty"`
}

// CompanyProfile represents a company's profile record
type CompanyProfile struct {
	ID          int64  `json:"id"`
	Name        string `json:"name,omitempty"`
	Email       string `json:"email,omitempty"`
	Website     string `json:"website,omitempty"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`
}

// FacultyProfile represents a faculty member's profile record
type FacultyProfile struct {
	ID         int64  `json:"id"`
	FirstName  string `json:"firstName,omitempty"`
	LastName   string `json:"lastName,omitempty"`
	Email      string `json:"email,omitempty"`
	Department string `json:"department,omitempty"`
	Title      string `json:"title,omitempty"`
}

// AdminProfile represents an admin account record
type AdminProfile struct {
	ID    int64  `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// StudentDashboard aggregates what the student landing page shows
type StudentDashboard struct {
	Fairs            []CareerFair `json:"fairs"`
	RegisteredFairs  []int64      `json:"registeredFairs"`
	AppliedPositions []Position   `json:"appliedPositions"`
}

// CompanyDashboard aggregates what the company landing page shows
type CompanyDashboard struct {
	Fairs     []CareerFair `json:"fairs"`
	Positions []Position   `json:"positions"`
	// Applicants per position id, as reported upstream
	Applicants map[string]int `json:"applicants,omitempty"`
}

// FacultyDashboard aggregates what the faculty landing page shows
type FacultyDashboard struct {
	Fairs           []CareerFair `json:"fairs"`
	RegisteredFairs []int64      `json:"registeredFairs"`
}
