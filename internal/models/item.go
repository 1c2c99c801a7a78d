package models

// Item condition labels accepted by the listing form.
const (
	ConditionNew      = "new"
	ConditionLikeNew  = "like-new"
	ConditionGood     = "good"
	ConditionFair     = "fair"
	ConditionWellWorn = "well-worn"
)

// Item is a listing offered for barter.
//
// Latitude/Longitude are pointers: an item without a declared location is
// simply invisible to radius filtering, it is not an error.
type Item struct {
	Base
	Title       string `json:"title" gorm:"not null;index"`
	Description string `json:"description" gorm:"type:text"`
	Category    string `json:"category" gorm:"index"`
	Condition   string `json:"condition"`

	// Free-text locality plus optional indexed coordinates.
	Location  string   `json:"location"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`

	// WantedInReturn describes what the owner would trade for.
	WantedInReturn string `json:"wanted_in_return"`

	IsAvailable bool `json:"is_available" gorm:"default:true;index"`

	OwnerID uint        `json:"owner_id" gorm:"not null;index"`
	Owner   *User       `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	Images  []ItemImage `json:"images,omitempty" gorm:"foreignKey:ItemID"`
}

// ItemImage is an uploaded photo attached to an item. The file itself
// lives in object storage; only the public URL is kept here.
type ItemImage struct {
	Base
	ItemID uint   `json:"item_id" gorm:"not null;index"`
	URL    string `json:"url" gorm:"not null"`
	Key    string `json:"-" gorm:"not null"` // object storage key
}

// ItemFilterColumns is the set of columns the generic listing form may
// filter and sort on. Anything outside this set compiles to a predicate
// that matches nothing.
var ItemFilterColumns = []string{
	"id", "title", "description", "category", "condition", "location",
	"wanted_in_return", "is_available", "owner_id", "created_at", "updated_at",
}
