package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Feedback is the finalized record for one employee. A nil rating means the
// submitted value was missing or not a number.
type Feedback struct {
	ID            bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string        `bson:"name" json:"name"`
	EmpID         string        `bson:"empid" json:"empid"`
	Email         string        `bson:"email" json:"email"`
	Phone         string        `bson:"pno" json:"pno"`
	Designation   string        `bson:"desig" json:"desig"`
	Punctuality   *int          `bson:"punctuality" json:"punctuality"`
	Clarification *int          `bson:"clarification" json:"clarification"`
	Explanation   *int          `bson:"explanation" json:"explanation"`
	Communication *int          `bson:"communication" json:"communication"`
	Rating        *int          `bson:"feedback" json:"feedback"`
	Other         string        `bson:"other" json:"other"`
	CreatedAt     time.Time     `bson:"created_at" json:"created_at"`
}

// Ratings returns the five rating dimensions keyed by their field name.
func (f *Feedback) Ratings() map[string]*int {
	return map[string]*int{
		"punctuality":   f.Punctuality,
		"clarification": f.Clarification,
		"explanation":   f.Explanation,
		"communication": f.Communication,
		"feedback":      f.Rating,
	}
}
