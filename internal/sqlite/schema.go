package sqlite

// Schema DDL for all tables. SQLite is used as the query engine over the
// working set; the database file is recreated on every Attach.
const (
	createPokemon = `CREATE TABLE pokemon (
    number INTEGER PRIMARY KEY,
    name TEXT NOT NULL UNIQUE COLLATE NOCASE,
    type1 TEXT NOT NULL,
    type2 TEXT,
    level INTEGER NOT NULL,
    hp INTEGER NOT NULL,
    attack INTEGER NOT NULL,
    defense INTEGER NOT NULL,
    speed INTEGER NOT NULL,
    evolves_from INTEGER NOT NULL DEFAULT 0,
    evolves_to INTEGER NOT NULL DEFAULT 0,
    evolution_level INTEGER NOT NULL DEFAULT 0,
    evolution_method TEXT,
    evolution_stone TEXT,
    move_set TEXT NOT NULL
);`

	createMoves = `CREATE TABLE moves (
    move_id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    description TEXT,
    classification TEXT NOT NULL,
    type1 TEXT NOT NULL,
    type2 TEXT
);`

	createItems = `CREATE TABLE items (
    item_id TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE COLLATE NOCASE,
    description TEXT,
    category TEXT NOT NULL,
    buy_price INTEGER NOT NULL,
    sell_price INTEGER NOT NULL,
    effect TEXT
);`

	createTrainers = `CREATE TABLE trainers (
    trainer_id TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE COLLATE NOCASE,
    money REAL NOT NULL,
    birthdate TEXT,
    sex TEXT,
    hometown TEXT,
    description TEXT,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

	createTrainerPokemon = `CREATE TABLE trainer_pokemon (
    owned_id TEXT PRIMARY KEY,
    trainer_id TEXT NOT NULL,
    location TEXT NOT NULL,
    slot INTEGER NOT NULL,
    name TEXT NOT NULL,
    record TEXT NOT NULL,
    FOREIGN KEY (trainer_id) REFERENCES trainers(trainer_id)
);`

	createTrainerItems = `CREATE TABLE trainer_items (
    trainer_id TEXT NOT NULL,
    name TEXT NOT NULL COLLATE NOCASE,
    slot INTEGER NOT NULL,
    record TEXT NOT NULL,
    quantity INTEGER NOT NULL,
    PRIMARY KEY (trainer_id, name),
    FOREIGN KEY (trainer_id) REFERENCES trainers(trainer_id)
);`
)

// Owned Pokemon locations in trainer_pokemon.location.
const (
	locationTeam    = "team"
	locationStorage = "storage"
)

// allSchemas lists DDL statements in creation order.
var allSchemas = []string{
	createPokemon,
	createMoves,
	createItems,
	createTrainers,
	createTrainerPokemon,
	createTrainerItems,
}
