package repository

import (
	"fmt"

	"github.com/faqdesk/faqdesk/backend/go-services/internal/database"
	"go.mongodb.org/mongo-driver/mongo"
)

// Open builds the Store named by backend ("file", "memory" or "mongo") and
// wraps it with metrics. db is only used by the mongo backend.
func Open(backend, path string, db *mongo.Database) (Store, error) {
	var s Store
	switch backend {
	case "file", "":
		backend = "file"
		s = NewFileRepo(path)
	case "memory":
		s = NewMemoryRepo(nil)
	case "mongo":
		if db == nil {
			return nil, fmt.Errorf("mongo store requires a database connection")
		}
		s = NewMongoRepo(db.Collection(database.ContentCollection))
	default:
		return nil, fmt.Errorf("unknown store backend %q", backend)
	}
	return Instrument(s, backend), nil
}
