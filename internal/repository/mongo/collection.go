package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	driver "go.mongodb.org/mongo-driver/mongo"

	"github.com/jwalitptl/healthbridge-seeder/internal/repository"
	"github.com/jwalitptl/healthbridge-seeder/pkg/metrics"
)

// collection is the generic gateway over one MongoDB collection.
type collection[T any] struct {
	coll    *driver.Collection
	metrics *metrics.Metrics
}

func newCollection[T any](s *Store, name string) *collection[T] {
	return &collection[T]{coll: s.db.Collection(name), metrics: s.metrics}
}

func (c *collection[T]) Name() string {
	return c.coll.Name()
}

func (c *collection[T]) observe(op string, start time.Time, err error) {
	if c.metrics != nil {
		c.metrics.ObserveDatabase(op, start, err)
	}
}

func matchAll(filter repository.Filter) repository.Filter {
	if filter == nil {
		return bson.M{}
	}
	return filter
}

func (c *collection[T]) FindOne(ctx context.Context, filter repository.Filter) (doc *T, err error) {
	defer func(start time.Time) { c.observe("find_one", start, err) }(time.Now())

	var out T
	if err := c.coll.FindOne(ctx, matchAll(filter)).Decode(&out); err != nil {
		if errors.Is(err, driver.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find one in %s: %w", c.Name(), err)
	}
	return &out, nil
}

func (c *collection[T]) Find(ctx context.Context, filter repository.Filter) (docs []T, err error) {
	defer func(start time.Time) { c.observe("find", start, err) }(time.Now())

	cur, err := c.coll.Find(ctx, matchAll(filter))
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", c.Name(), err)
	}
	defer cur.Close(ctx)

	out := []T{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", c.Name(), err)
	}
	return out, nil
}

func (c *collection[T]) CountDocuments(ctx context.Context, filter repository.Filter) (n int64, err error) {
	defer func(start time.Time) { c.observe("count", start, err) }(time.Now())

	n, err = c.coll.CountDocuments(ctx, matchAll(filter))
	if err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", c.Name(), err)
	}
	return n, nil
}

func (c *collection[T]) InsertMany(ctx context.Context, docs []T) (ids []primitive.ObjectID, err error) {
	if len(docs) == 0 {
		return nil, nil
	}
	defer func(start time.Time) { c.observe("insert_many", start, err) }(time.Now())

	items := make([]interface{}, len(docs))
	for i := range docs {
		items[i] = docs[i]
	}

	res, err := c.coll.InsertMany(ctx, items)
	if err != nil {
		return nil, fmt.Errorf("failed to insert into %s: %w", c.Name(), err)
	}

	ids = make([]primitive.ObjectID, 0, len(res.InsertedIDs))
	for _, id := range res.InsertedIDs {
		if oid, ok := id.(primitive.ObjectID); ok {
			ids = append(ids, oid)
		}
	}
	return ids, nil
}

func (c *collection[T]) InsertOne(ctx context.Context, doc *T) (id primitive.ObjectID, err error) {
	defer func(start time.Time) { c.observe("insert_one", start, err) }(time.Now())

	res, err := c.coll.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to insert into %s: %w", c.Name(), err)
	}
	oid, _ := res.InsertedID.(primitive.ObjectID)
	return oid, nil
}

func (c *collection[T]) DeleteMany(ctx context.Context, filter repository.Filter) (n int64, err error) {
	defer func(start time.Time) { c.observe("delete_many", start, err) }(time.Now())

	res, err := c.coll.DeleteMany(ctx, matchAll(filter))
	if err != nil {
		return 0, fmt.Errorf("failed to delete from %s: %w", c.Name(), err)
	}
	return res.DeletedCount, nil
}

func (c *collection[T]) UpdateMany(ctx context.Context, filter repository.Filter, update repository.Update) (n int64, err error) {
	defer func(start time.Time) { c.observe("update_many", start, err) }(time.Now())

	res, err := c.coll.UpdateMany(ctx, matchAll(filter), update)
	if err != nil {
		return 0, fmt.Errorf("failed to update %s: %w", c.Name(), err)
	}
	return res.ModifiedCount, nil
}
