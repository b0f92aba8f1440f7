package census

// A Category is the kind of statistic a census row carries.
type Category int

// Known row categories; everything else is Other.
const (
	Other Category = iota
	NeighbourhoodInformation
	Population2016
)

// Discriminators for the known categories.
const (
	NeighbourhoodInformationCategory = "Neighbourhood Information"
	Population2016Characteristic     = "Population, 2016"
)

// Classify returns the Category of a row given its category and
// characteristic labels.
func Classify(category, characteristic string) Category {
	switch {
	case characteristic == Population2016Characteristic:
		return Population2016
	case category == NeighbourhoodInformationCategory:
		return NeighbourhoodInformation
	default:
		return Other
	}
}

func (c Category) String() string {
	switch c {
	case NeighbourhoodInformation:
		return "NeighbourhoodInformation"
	case Population2016:
		return "Population2016"
	default:
		return "Other"
	}
}
