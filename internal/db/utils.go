package db

import (
	"fmt"
	"strconv"

	"github.com/dtnitsch/lexicorpus/models"
	dbpkg "github.com/dtnitsch/lexicorpus/pkg/db"
	"github.com/urfave/cli/v2"
)

// openDatabase opens the database named by --db, then the config file, then
// the default path.
func openDatabase(c *cli.Context) (*dbpkg.DB, error) {
	path := c.String("db")
	if path == "" {
		cfg, err := models.LoadConfig(c.String("config"))
		if err != nil {
			return nil, err
		}
		path = cfg.DB
	}
	database, err := dbpkg.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return database, nil
}

// ResolveURLFromIDOrURL accepts either a numeric url_id or a URL.
func ResolveURLFromIDOrURL(arg string, database *dbpkg.DB) (string, int64, error) {
	if id, err := strconv.ParseInt(arg, 10, 64); err == nil {
		rawURL, err := database.GetURLByID(id)
		if err != nil {
			return "", 0, err
		}
		return rawURL, id, nil
	}

	id, err := database.GetURLID(arg)
	if err != nil {
		return "", 0, err
	}
	return arg, id, nil
}
