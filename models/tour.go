package models

import "time"

// TourPackage is a guide-authored bookable tour offering.
type TourPackage struct {
	ID           string     `bson:"id" json:"id"`
	GuideID      string     `bson:"guide_id" json:"guide_id"`
	GuideName    string     `bson:"guide_name" json:"guide_name"` // denormalized for display
	Title        string     `bson:"title" json:"title"`
	Description  string     `bson:"description" json:"description"`
	Duration     int        `bson:"duration" json:"duration"` // hours
	Price        float64    `bson:"price" json:"price"`
	MaxGroupSize int        `bson:"max_group_size" json:"max_group_size"`
	Location     string     `bson:"location" json:"location"`
	Includes     StringList `bson:"includes" json:"includes"`
	Excludes     StringList `bson:"excludes" json:"excludes"`
	Itinerary    StringList `bson:"itinerary" json:"itinerary"`
	Images       StringList `bson:"images" json:"images"`
	IsActive     bool       `bson:"is_active" json:"is_active"`
	Rating       float64    `bson:"rating" json:"rating"`
	ReviewCount  int        `bson:"review_count" json:"review_count"`
	CreatedAt    time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `bson:"updated_at" json:"updated_at"`
}

// StringList is an ordered list of strings (itinerary steps, image URLs, ...).
// Mutating operations return a new list so partially applied edits never leak
// into a shared slice.
type StringList []string

// Add appends an item and returns the new list.
func (l StringList) Add(item string) StringList {
	out := make(StringList, 0, len(l)+1)
	out = append(out, l...)
	return append(out, item)
}

// Remove drops the item at index i. Out-of-range indexes return the list unchanged.
func (l StringList) Remove(i int) StringList {
	if i < 0 || i >= len(l) {
		return l
	}
	out := make(StringList, 0, len(l)-1)
	out = append(out, l[:i]...)
	return append(out, l[i+1:]...)
}

// Replace sets the item at index i. Out-of-range indexes return the list unchanged.
func (l StringList) Replace(i int, item string) StringList {
	if i < 0 || i >= len(l) {
		return l
	}
	out := make(StringList, len(l))
	copy(out, l)
	out[i] = item
	return out
}
