package models

import "time"

// CareerFair is an event entity students and faculty register for and
// companies and admins manage. Read-mostly from the gateway's perspective.
type CareerFair struct {
	FairID      int64     `json:"fairId"`
	Name        string    `json:"name"`
	Date        string    `json:"date"`
	Location    string    `json:"location"`
	Description string    `json:"description,omitempty"`
	Companies   []Company `json:"companies,omitempty"`
}

// Company is the summary shape embedded in a fair's company list
type Company struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Position is a job or internship listing owned by a company
type Position struct {
	PositionID  int64  `json:"positionId"`
	Name        string `json:"name"`
	Salary      string `json:"salary,omitempty"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`
	CompanyID   int64  `json:"companyId"`
	NewGrad     bool   `json:"newGrad"`
	Intern      bool   `json:"intern"`
	Sponsor     bool   `json:"sponsor"`
}

// Announcement is an admin-authored message, listed newest-first
type Announcement struct {
	ID        int64     `json:"id"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}
