package business

import "fmt"

// Industry classifies a business into a fixed enumerated set.
type Industry string

const (
	IndustryRestaurant Industry = "restaurant"
	IndustryHotel      Industry = "hotel"
	IndustryRetail     Industry = "retail"
	IndustryHealthcare Industry = "healthcare"
	IndustryEducation  Industry = "education"
	IndustryFitness    Industry = "fitness"
	IndustryBeauty     Industry = "beauty"
	IndustryAutomotive Industry = "automotive"
	IndustryRealEstate Industry = "real_estate"
	IndustryOther      Industry = "other"
)

// IsValid checks if the industry is a known value.
func (i Industry) IsValid() bool {
	switch i {
	case IndustryRestaurant, IndustryHotel, IndustryRetail, IndustryHealthcare,
		IndustryEducation, IndustryFitness, IndustryBeauty, IndustryAutomotive,
		IndustryRealEstate, IndustryOther:
		return true
	}
	return false
}

// String returns the string representation of the industry.
func (i Industry) String() string {
	return string(i)
}

// ParseIndustry converts a string to an Industry, rejecting unknown values.
func ParseIndustry(s string) (Industry, error) {
	industry := Industry(s)
	if !industry.IsValid() {
		return "", fmt.Errorf("invalid industry: %s", s)
	}
	return industry, nil
}
