package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"time"

	"github.com/golang-migrate/migrate/v4"
	dStub "github.com/golang-migrate/migrate/v4/database/mongodb"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"

	"github.com/semka95/devcamper/average"
	_BootcampRepo "github.com/semka95/devcamper/bootcamp/repository"
	"github.com/semka95/devcamper/cmd"
	_CourseRepo "github.com/semka95/devcamper/course/repository"
	"github.com/semka95/devcamper/domain"
	_ReviewRepo "github.com/semka95/devcamper/review/repository"
	"github.com/semka95/devcamper/store"
)

const usage = "usage: admin migrate | seed [dir] | destroy"

func main() {
	// Logging
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Println("can't create logger: ", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := run(logger); err != nil {
		logger.Error("shutting down, error: ", zap.Error(err))
		os.Exit(1)
	}
}

func run(logger *zap.Logger) error {
	if len(os.Args) < 2 {
		return errors.New(usage)
	}

	configPath, ok := os.LookupEnv(cmd.EnvConfigPath)
	if !ok {
		return fmt.Errorf("%s environment variable is not specified", cmd.EnvConfigPath)
	}
	cfg, err := cmd.AppConfig(configPath, logger)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	client, err := store.Open(ctx, cfg.MongoConfig, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err = client.Disconnect(ctx); err != nil {
			logger.Error("mongodb client disconnect error: ", zap.Error(err))
		}
	}()

	switch os.Args[1] {
	case "migrate":
		err = migrateMongo(client, cfg.MongoConfig.Name)
	case "seed":
		err = seed(ctx, client, cfg.MongoConfig.Name, logger)
	case "destroy":
		err = store.Destroy(ctx, client.Database(cfg.MongoConfig.Name))
		if err == nil {
			logger.Info("data destroyed")
		}
	default:
		err = errors.New(usage)
	}

	return err
}

func migrateMongo(db *mongo.Client, dbName string) error {
	instance, err := dStub.WithInstance(db, &dStub.Config{DatabaseName: dbName})
	if err != nil {
		return err
	}

	src, err := iofs.New(store.Migrations, "migrations")
	if err != nil {
		return err
	}

	m, err := migrate.NewWithInstance("iofs", src, dbName, instance)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	return nil
}

// seed imports json files from directory given as second argument, embedded
// development data is used otherwise. Bootcamp averages are recomputed after
// import.
func seed(ctx context.Context, client *mongo.Client, dbName string, logger *zap.Logger) error {
	var fsys fs.FS
	if len(os.Args) > 2 {
		fsys = os.DirFS(os.Args[2])
	} else {
		sub, err := fs.Sub(store.SeedData, "data")
		if err != nil {
			return err
		}
		fsys = sub
	}

	db := client.Database(dbName)
	inserted, err := store.Seed(ctx, db, fsys)
	if err != nil {
		return err
	}
	for name, n := range inserted {
		logger.Info("data imported", zap.String("collection", name), zap.Int("count", n))
	}

	ids, err := db.Collection(domain.BootcampsCollection).Distinct(ctx, "_id", bson.D{})
	if err != nil {
		return fmt.Errorf("can't list bootcamps: %w", err)
	}

	tracer := noop.NewTracerProvider().Tracer("")
	br := _BootcampRepo.NewMongoBootcampRepository(client, dbName, logger, tracer)
	cr := _CourseRepo.NewMongoCourseRepository(client, dbName, logger, tracer)
	rr := _ReviewRepo.NewMongoReviewRepository(client, dbName, logger, tracer)
	maintainer := average.NewMaintainer(br, cr, rr, logger, tracer)
	for _, v := range ids {
		id, ok := v.(primitive.ObjectID)
		if !ok {
			continue
		}
		maintainer.RefreshAverageCost(ctx, id)
		maintainer.RefreshAverageRating(ctx, id)
	}

	return nil
}
