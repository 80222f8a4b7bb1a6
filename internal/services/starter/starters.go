package starter

import "pokeroster/internal/domain"

// Starter types, in the order they are presented.
const (
	TypeFire  = "fire"
	TypeGrass = "grass"
	TypeWater = "water"
)

// Types lists the starter types in display order.
var Types = []string{TypeFire, TypeGrass, TypeWater}

var starters = []domain.Starter{
	{Name: "Charmander", ID: 4, Type: TypeFire},
	{Name: "Cyndaquil", ID: 155, Type: TypeFire},
	{Name: "Torchic", ID: 255, Type: TypeFire},
	{Name: "Chimchar", ID: 390, Type: TypeFire},
	{Name: "Tepig", ID: 498, Type: TypeFire},
	{Name: "Fennekin", ID: 653, Type: TypeFire},
	{Name: "Litten", ID: 725, Type: TypeFire},
	{Name: "Scorbunny", ID: 813, Type: TypeFire},
	{Name: "Fuecoco", ID: 909, Type: TypeFire},
	{Name: "Bulbasaur", ID: 1, Type: TypeGrass},
	{Name: "Chikorita", ID: 152, Type: TypeGrass},
	{Name: "Treecko", ID: 252, Type: TypeGrass},
	{Name: "Turtwig", ID: 387, Type: TypeGrass},
	{Name: "Snivy", ID: 495, Type: TypeGrass},
	{Name: "Chespin", ID: 650, Type: TypeGrass},
	{Name: "Rowlet", ID: 722, Type: TypeGrass},
	{Name: "Grookey", ID: 810, Type: TypeGrass},
	{Name: "Sprigatito", ID: 906, Type: TypeGrass},
	{Name: "Squirtle", ID: 7, Type: TypeWater},
	{Name: "Totodile", ID: 158, Type: TypeWater},
	{Name: "Mudkip", ID: 258, Type: TypeWater},
	{Name: "Piplup", ID: 393, Type: TypeWater},
	{Name: "Oshawott", ID: 501, Type: TypeWater},
	{Name: "Froakie", ID: 656, Type: TypeWater},
	{Name: "Popplio", ID: 728, Type: TypeWater},
	{Name: "Sobble", ID: 816, Type: TypeWater},
	{Name: "Quaxly", ID: 912, Type: TypeWater},
}
