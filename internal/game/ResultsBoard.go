package game

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	_ "github.com/mattn/go-sqlite3"
)

const resultsTableName = "game_results"

// ResultsBoard keeps finished games for the lifetime of the process.
type ResultsBoard struct {
	db *sql.DB
}

type GameResult struct {
	ID              int
	GameID          string
	PlayerName      string
	Outcome         string
	CheeseCollected int
	CheeseTotal     int
	Turns           int
	CreatedAt       time.Time
}

// ResultFromGame snapshots a finished game for the board.
func ResultFromGame(playerName string, gm *GameModel) GameResult {
	return GameResult{
		GameID:          gm.ID(),
		PlayerName:      playerName,
		Outcome:         gm.Outcome().String(),
		CheeseCollected: gm.GetNumberCheeseCollected(),
		CheeseTotal:     gm.GetNumberCheeseToCollect(),
		Turns:           gm.TurnCount(),
	}
}

func NewResultsBoard(dsn string) (*ResultsBoard, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open results database: %w", err)
	}
	// In-memory databases vanish with their last connection.
	db.SetMaxOpenConns(1)

	board := &ResultsBoard{db: db}
	if err := board.createTable(); err != nil {
		db.Close()
		return nil, err
	}

	return board, nil
}

func (b *ResultsBoard) createTable() error {
	const createTableSQL = `
	CREATE TABLE IF NOT EXISTS ` + resultsTableName + ` (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		game_id TEXT NOT NULL,
		player_name TEXT NOT NULL,
		outcome TEXT NOT NULL,
		cheese_collected INTEGER NOT NULL,
		cheese_total INTEGER NOT NULL,
		turns INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);`

	if _, err := b.db.Exec(createTableSQL); err != nil {
		return fmt.Errorf("failed to execute CREATE TABLE: %w", err)
	}
	log.Debug("Results table ensured.")
	return nil
}

func (b *ResultsBoard) Record(result GameResult) error {
	const insertSQL = `
	INSERT INTO ` + resultsTableName + ` (game_id, player_name, outcome, cheese_collected, cheese_total, turns)
	VALUES (?, ?, ?, ?, ?, ?);`

	_, err := b.db.Exec(insertSQL, result.GameID, result.PlayerName, result.Outcome,
		result.CheeseCollected, result.CheeseTotal, result.Turns)
	if err != nil {
		return fmt.Errorf("failed to insert result for %s: %w", result.PlayerName, err)
	}

	return nil
}

// GetResults pages through the board: wins first, then most cheese, then fewest turns.
func (b *ResultsBoard) GetResults(limit, offset int) ([]GameResult, error) {
	const selectSQL = `
	SELECT id, game_id, player_name, outcome, cheese_collected, cheese_total, turns, created_at
	FROM ` + resultsTableName + `
	ORDER BY (outcome = 'won') DESC, cheese_collected DESC, turns ASC, id ASC
	LIMIT ? OFFSET ?;`

	rows, err := b.db.Query(selectSQL, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query results: %w", err)
	}
	defer rows.Close()

	var results []GameResult
	for rows.Next() {
		var result GameResult
		err := rows.Scan(&result.ID, &result.GameID, &result.PlayerName, &result.Outcome,
			&result.CheeseCollected, &result.CheeseTotal, &result.Turns, &result.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		results = append(results, result)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating rows: %w", err)
	}

	return results, nil
}

func (b *ResultsBoard) GetTotalResultCount() (int, error) {
	const countSQL = `SELECT COUNT(*) FROM ` + resultsTableName + `;`
	var count int
	if err := b.db.QueryRow(countSQL).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to get total result count: %w", err)
	}
	return count, nil
}

func (b *ResultsBoard) Close() error {
	return b.db.Close()
}
