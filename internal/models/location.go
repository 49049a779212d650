package models

import "time"

// Location представляет место хранения: именованную ячейку
// вида контейнер/ряд/позиция.
type Location struct {
	ID           int64     `db:"id" json:"id"`
	LocationName string    `db:"location_name" json:"locationName"`
	Container    string    `db:"container" json:"container"`
	Row          string    `db:"row" json:"row"`
	Position     string    `db:"position" json:"position"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// CreateLocationRequest представляет тело запроса на создание места хранения.
type CreateLocationRequest struct {
	LocationName string `json:"locationName"`
	Container    string `json:"container"`
	Row          string `json:"row"`
	Position     string `json:"position"`
}
