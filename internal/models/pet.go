package models

import "time"

type PetType int

const (
	PetTypeDog PetType = iota + 1
	PetTypeCat
	PetTypeBird
	PetTypeFish
	PetTypeOther
)

type PetSize int

const (
	PetSizeSmall PetSize = iota + 1
	PetSizeMedium
	PetSizeLarge
	PetSizeExtraLarge
)

type PetAge int

const (
	PetAgePuppyKitten PetAge = iota + 1
	PetAgeYoung
	PetAgeAdult
	PetAgeSenior
)

var (
	petTypeNames = []string{"Dog", "Cat", "Bird", "Fish", "Other"}
	petSizeNames = []string{"Small", "Medium", "Large", "ExtraLarge"}
	petAgeNames  = []string{"PuppyKitten", "Young", "Adult", "Senior"}
)

// EnumOption is the {id, name} pair the client renders in pickers.
type EnumOption struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func enumOptions(names []string) []EnumOption {
	options := make([]EnumOption, len(names))
	for i, name := range names {
		options[i] = EnumOption{ID: i + 1, Name: name}
	}
	return options
}

func enumName(names []string, v int) string {
	if v < 1 || v > len(names) {
		return "Unknown"
	}
	return names[v-1]
}

func PetTypes() []EnumOption { return enumOptions(petTypeNames) }
func PetSizes() []EnumOption { return enumOptions(petSizeNames) }
func PetAges() []EnumOption  { return enumOptions(petAgeNames) }

func (t PetType) Valid() bool    { return t >= PetTypeDog && t <= PetTypeOther }
func (t PetType) String() string { return enumName(petTypeNames, int(t)) }
func (s PetSize) Valid() bool    { return s >= PetSizeSmall && s <= PetSizeExtraLarge }
func (s PetSize) String() string { return enumName(petSizeNames, int(s)) }
func (a PetAge) Valid() bool     { return a >= PetAgePuppyKitten && a <= PetAgeSenior }
func (a PetAge) String() string  { return enumName(petAgeNames, int(a)) }

// Pet belongs to a user. Compatibility with dogs and cats is affirmed, denied or unsure:
// GetAlongWith<X> false and IsUnsureWith<X> false means the pet does not get along.
type Pet struct {
	ID                  uint      `json:"id" gorm:"primaryKey"`
	Name                string    `json:"name" gorm:"not null"`
	Type                PetType   `json:"type"`
	Size                PetSize   `json:"size"`
	Age                 PetAge    `json:"age"`
	GetAlongWithDogs    bool      `json:"getAlongWithDogs"`
	GetAlongWithCats    bool      `json:"getAlongWithCats"`
	IsUnsureWithDogs    bool      `json:"isUnsureWithDogs"`
	IsUnsureWithCats    bool      `json:"isUnsureWithCats"`
	SpecialInstructions string    `json:"specialInstructions"`
	MedicalConditions   string    `json:"medicalConditions"`
	UserID              uint      `json:"userId" gorm:"not null;index"`
	User                *User     `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}
