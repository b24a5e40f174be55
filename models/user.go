package models

import (
	"strings"
	"time"
)

// User roles. The first account ever provisioned becomes admin, everyone
// after that is a regular user.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Auth providers recorded on the profile document.
const (
	ProviderPassword = "password"
	ProviderGoogle   = "google"
	ProviderGithub   = "github"
)

// User is the per-user profile document stored in users/{uid}. The document
// id is the principal's uid, so no separate identity record exists. Planner
// collections are mutated via targeted partial updates of a single field.
type User struct {
	ID           string       `bson:"_id,omitempty" json:"uid"`
	Email        string       `bson:"email" json:"email" validate:"required,email"`
	Username     string       `bson:"username" json:"username"`
	Role         string       `bson:"role" json:"role"`
	Provider     string       `bson:"provider,omitempty" json:"provider,omitempty"`
	PasswordHash string       `bson:"passwordHash,omitempty" json:"-"`
	Tasks        []Task       `bson:"tasks" json:"tasks"`
	Assignments  []Assignment `bson:"assignments" json:"assignments"`
	Exams        []Exam       `bson:"exams" json:"exams"`
	Records      []Record     `bson:"records" json:"records"`
	Folders      []Folder     `bson:"folders" json:"folders"`
	CreatedAt    time.Time    `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time    `bson:"updatedAt" json:"updatedAt"`
}

// Task is a planner entry with a time of day.
type Task struct {
	Name     string `bson:"name" json:"name" validate:"required"`
	Time     string `bson:"time" json:"time"`
	Progress *int   `bson:"progress,omitempty" json:"progress,omitempty"`
}

// Assignment is a dated planner entry with optional progress.
type Assignment struct {
	Name     string `bson:"name" json:"name" validate:"required"`
	Date     string `bson:"date" json:"date"`
	Progress *int   `bson:"progress,omitempty" json:"progress,omitempty"`
}

// Exam is a dated planner entry.
type Exam struct {
	Name string `bson:"name" json:"name" validate:"required"`
	Date string `bson:"date" json:"date"`
}

// Record is a dated planner entry.
type Record struct {
	Name string `bson:"name" json:"name" validate:"required"`
	Date string `bson:"date" json:"date"`
}

// NewUser builds a freshly provisioned profile document. The username
// defaults to the local part of the email address and every planner
// collection starts empty rather than absent, so partial updates always have
// a field to replace.
func NewUser(uid, email, role string) *User {
	now := time.Now()
	return &User{
		ID:          uid,
		Email:       email,
		Username:    UsernameFromEmail(email),
		Role:        role,
		Tasks:       []Task{},
		Assignments: []Assignment{},
		Exams:       []Exam{},
		Records:     []Record{},
		Folders:     []Folder{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// UsernameFromEmail derives the default username from the email's local part.
func UsernameFromEmail(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}

// IsAdmin reports whether the profile carries the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
