package models

import "time"

// Part представляет деталь, привязанную к месту хранения по его имени.
// Поля container/row/position - денормализованные копии из Location:
// заполняются при создании и дальше живут независимо.
type Part struct {
	ID           int64     `db:"id" json:"id"`
	PartName     string    `db:"part_name" json:"partName"`
	PartDetails  string    `db:"part_details" json:"partDetails"`
	LocationName string    `db:"location_name" json:"locationName"`
	Container    string    `db:"container" json:"container"`
	Row          string    `db:"row" json:"row"`
	Position     string    `db:"position" json:"position"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// CreatePartRequest представляет тело запроса на создание детали.
// PartDetails - необязательное поле.
type CreatePartRequest struct {
	PartName     string `json:"partName"`
	PartDetails  string `json:"partDetails"`
	LocationName string `json:"locationName"`
	Container    string `json:"container"`
	Row          string `json:"row"`
	Position     string `json:"position"`
}
