package types

// Standard table names for Dex.GetTable.
const (
	TablePokemon  = "pokemon"
	TableMoves    = "moves"
	TableItems    = "items"
	TableTrainers = "trainers"
)

// StandardTableNames lists all standard table names for enumeration.
var StandardTableNames = []string{
	TablePokemon,
	TableMoves,
	TableItems,
	TableTrainers,
}
