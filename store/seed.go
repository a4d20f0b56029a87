package store

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/semka95/devcamper/domain"
)

// SeedData holds development data in extended JSON, one file per collection
//
//go:embed data/*.json
var SeedData embed.FS

// Migrations holds index migrations applied by golang-migrate
//
//go:embed migrations/*.json
var Migrations embed.FS

// seedOrder lists collections in the order they are imported
var seedOrder = []string{
	domain.UsersCollection,
	domain.BootcampsCollection,
	domain.CoursesCollection,
	domain.ReviewsCollection,
}

// Seed inserts data in database for development purposes. Every collection is
// read from <name>.json in fsys, missing files are skipped. User passwords are
// stored in plain text in seed files and hashed before insert.
func Seed(ctx context.Context, db *mongo.Database, fsys fs.FS) (map[string]int, error) {
	inserted := make(map[string]int, len(seedOrder))

	for _, name := range seedOrder {
		data, err := fs.ReadFile(fsys, name+".json")
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return inserted, fmt.Errorf("can't read %s seed file: %w", name, err)
		}

		var docs []bson.D
		if err = bson.UnmarshalExtJSON(data, false, &docs); err != nil {
			return inserted, fmt.Errorf("can't decode %s seed file: %w", name, err)
		}
		if len(docs) == 0 {
			continue
		}

		v := make([]interface{}, len(docs))
		for i := range docs {
			if name == domain.UsersCollection {
				if err = hashPassword(docs[i]); err != nil {
					return inserted, err
				}
			}
			v[i] = docs[i]
		}

		res, err := db.Collection(name).InsertMany(ctx, v)
		if err != nil {
			return inserted, fmt.Errorf("can't insert %s: %w", name, err)
		}
		inserted[name] = len(res.InsertedIDs)
	}

	return inserted, nil
}

// Destroy removes every document inserted by Seed
func Destroy(ctx context.Context, db *mongo.Database) error {
	for _, name := range seedOrder {
		if _, err := db.Collection(name).DeleteMany(ctx, bson.D{}); err != nil {
			return fmt.Errorf("can't clear %s: %w", name, err)
		}
	}
	return nil
}

func hashPassword(doc bson.D) error {
	for i, e := range doc {
		if e.Key != "password" {
			continue
		}
		pwd, ok := e.Value.(string)
		if !ok {
			return fmt.Errorf("password of seeded user must be a string")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(pwd), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("can't hash seeded password: %w", err)
		}
		doc[i].Value = string(hash)
	}
	return nil
}
