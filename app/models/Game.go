package models

type Game struct {
	Id       string
	Name     string
	Status   string
	Settings string
}

type GameCreateDto struct {
	Name string
}

type VerifyGameDto struct {
	Code string
}
