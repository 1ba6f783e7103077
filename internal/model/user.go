package model

import "github.com/google/uuid"

type User struct {
	ID          uuid.UUID
	DisplayName string
	PhotoURL    string
}
