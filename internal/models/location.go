package models

// Coordinates positions a location on the campus map.
type Coordinates struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Location is a point of interest on the campus map.
type Location struct {
	ID           int         `json:"id"`
	Name         string      `json:"name"`
	Type         string      `json:"type"`
	Coordinates  Coordinates `json:"coordinates"`
	Description  string      `json:"description"`
	IsAccessible bool        `json:"is_accessible"`
	OpenHours    *string     `json:"open_hours,omitempty"`
	Contact      *string     `json:"contact,omitempty"`
	Services     []string    `json:"services,omitempty"`
}
