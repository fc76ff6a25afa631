package model

// Question is one entry of the external question-content table
type Question struct {
	ID           string `json:"id" bson:"_id"` // e.g., "Q1"
	Order        int    `json:"order" bson:"order"`
	Axis         Axis   `json:"axis" bson:"axis"`
	Wall         string `json:"wall" bson:"wall"`                 // Axis label shown above the question
	Category     string `json:"category" bson:"category"`         // Short code within the axis, e.g. "mindset"
	CategoryName string `json:"categoryName" bson:"categoryName"` // Display name of the category
	Text         string `json:"text" bson:"text"`
}
