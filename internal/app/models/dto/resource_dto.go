package dto

// UpdateStudentProfileRequest represents a student profile patch
type UpdateStudentProfileRequest struct {
	FirstName      string `json:"firstName,omitempty"`
	LastName       string `json:"lastName,omitempty"`
	Email          string `json:"email,omitempty" binding:"omitempty,email"`
	Major          string `json:"major,omitempty"`
	GraduationYear int    `json:"graduationYear,omitempty"`
}

// UpdateCompanyProfileRequest represents a company profile patch
type UpdateCompanyProfileRequest struct {
	Name        string `json:"name,omitempty"`
	Email       string `json:"email,omitempty" binding:"omitempty,email"`
	Website     string `json:"website,omitempty"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`
}

// UpdateFacultyProfileRequest represents a faculty profile patch
type UpdateFacultyProfileRequest struct {
	FirstName  string `json:"firstName,omitempty"`
	LastName   string `json:"lastName,omitempty"`
	Email      string `json:"email,omitempty" binding:"omitempty,email"`
	Department string `json:"department,omitempty"`
	Title      string `json:"title,omitempty"`
}

// PositionRequest represents a position create or update
type PositionRequest struct {
	Name        string `json:"name" binding:"required"`
	Salary      string `json:"salary,omitempty"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`
	NewGrad     bool   `json:"newGrad"`
	Intern      bool   `json:"intern"`
	Sponsor     bool   `json:"sponsor"`
}

// ApplyRequest represents a student applying to a position
type ApplyRequest struct {
	PositionID int64 `json:"positionId" binding:"required,min=1"`
}

// AnnouncementRequest represents an announcement create or update
type AnnouncementRequest struct {
	Message string `json:"message" binding:"required"`
}

// ApplyResponse reports the outcome of an apply attempt
type ApplyResponse struct {
	State string   `json:"state"`
	Trace []string `json:"trace,omitempty"`
}

// UploadResponse reports a completed resume upload
type UploadResponse struct {
	FileName string `json:"fileName"`
	Size     int64  `json:"size"`
}
