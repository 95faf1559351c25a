package models

import "time"

// PendingSubmission holds the step-one fields until step two arrives.
type PendingSubmission struct {
	Token       string    `bson:"_id" json:"-"`
	Name        string    `bson:"name" json:"name"`
	EmpID       string    `bson:"empid" json:"empid"`
	Email       string    `bson:"email" json:"email"`
	Phone       string    `bson:"pno" json:"pno"`
	Designation string    `bson:"desig" json:"desig"`
	ExpiresAt   time.Time `bson:"expires_at" json:"expires_at"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

func (p *PendingSubmission) IsExpired() bool {
	return time.Now().After(p.ExpiresAt)
}
