// Package average keeps the derived averageCost and averageRating fields of
// bootcamps consistent with their courses and reviews.
package average

import (
	"context"
	"math"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/semka95/devcamper/domain"
)

// Maintainer recomputes bootcamp aggregates after child mutations.
// Recomputations for the same bootcamp never overlap, so the stored value
// always reflects the read that completed last.
type Maintainer struct {
	bootcamps domain.BootcampRepository
	courses   domain.CourseRepository
	reviews   domain.ReviewRepository
	logger    *zap.Logger
	tracer    trace.Tracer
	locks     *keyedMutex
}

// NewMaintainer will create an object that represent the domain.AverageRefresher interface
func NewMaintainer(b domain.BootcampRepository, c domain.CourseRepository, r domain.ReviewRepository, logger *zap.Logger, tracer trace.Tracer) *Maintainer {
	return &Maintainer{
		bootcamps: b,
		courses:   c,
		reviews:   r,
		logger:    logger,
		tracer:    tracer,
		locks:     newKeyedMutex(),
	}
}

// RoundCost rounds average tuition up to the nearest multiple of 10
func RoundCost(avg float64) float64 {
	return math.Ceil(avg/10) * 10
}

// RoundRating keeps one decimal place of average rating
func RoundRating(avg float64) float64 {
	return math.Round(avg*10) / 10
}

// RefreshAverageCost recalculates averageCost of the bootcamp. Failures are
// logged only, the mutation that triggered the refresh has already succeeded.
func (m *Maintainer) RefreshAverageCost(ctx context.Context, bootcampID primitive.ObjectID) {
	ctx, span := m.tracer.Start(
		ctx,
		"average RefreshAverageCost",
		trace.WithAttributes(
			attribute.String("bootcampid", bootcampID.Hex())),
	)
	defer span.End()

	unlock := m.locks.lock(bootcampID.Hex())
	defer unlock()

	avg, err := m.courses.AverageTuition(ctx, bootcampID)
	if err != nil {
		span.RecordError(err)
		m.logger.Error("can't calculate average cost", zap.String("bootcamp", bootcampID.Hex()), zap.Error(err))
		return
	}

	var cost *float64
	if avg != nil {
		v := RoundCost(*avg)
		cost = &v
	}

	if err = m.bootcamps.SetAverageCost(ctx, bootcampID, cost); err != nil {
		span.RecordError(err)
		m.logger.Error("can't save average cost", zap.String("bootcamp", bootcampID.Hex()), zap.Error(err))
	}
}

// RefreshAverageRating recalculates averageRating of the bootcamp. Failures
// are logged only.
func (m *Maintainer) RefreshAverageRating(ctx context.Context, bootcampID primitive.ObjectID) {
	ctx, span := m.tracer.Start(
		ctx,
		"average RefreshAverageRating",
		trace.WithAttributes(
			attribute.String("bootcampid", bootcampID.Hex())),
	)
	defer span.End()

	unlock := m.locks.lock(bootcampID.Hex())
	defer unlock()

	avg, err := m.reviews.AverageRating(ctx, bootcampID)
	if err != nil {
		span.RecordError(err)
		m.logger.Error("can't calculate average rating", zap.String("bootcamp", bootcampID.Hex()), zap.Error(err))
		return
	}

	var rating *float64
	if avg != nil {
		v := RoundRating(*avg)
		rating = &v
	}

	if err = m.bootcamps.SetAverageRating(ctx, bootcampID, rating); err != nil {
		span.RecordError(err)
		m.logger.Error("can't save average rating", zap.String("bootcamp", bootcampID.Hex()), zap.Error(err))
	}
}

// keyedMutex hands out one mutex per key and forgets it once nobody holds
// or waits for it.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*refMutex
}

type refMutex struct {
	sync.Mutex
	refs int
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[string]*refMutex)}
}

func (k *keyedMutex) lock(key string) func() {
	k.mu.Lock()
	l, ok := k.locks[key]
	if !ok {
		l = new(refMutex)
		k.locks[key] = l
	}
	l.refs++
	k.mu.Unlock()

	l.Lock()

	return func() {
		l.Unlock()

		k.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}

func (k *keyedMutex) len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.locks)
}
