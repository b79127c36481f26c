package domain

import "time"

// Table statuses
const (
	TableAvailable = "available"
	TableOccupied  = "occupied"
	TableReserved  = "reserved"
)

// Table represents a physical restaurant table
type Table struct {
	ID        string    `json:"id" db:"id"`
	Number    int       `json:"number" db:"number"`
	Seats     int       `json:"seats" db:"seats"`
	Status    string    `json:"status" db:"status"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// ValidTableStatus reports whether s is a known table status
func ValidTableStatus(s string) bool {
	switch s {
	case TableAvailable, TableOccupied, TableReserved:
		return true
	}
	return false
}
