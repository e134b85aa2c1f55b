package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/sync/errgroup"

	"github.com/nivgold/shopping-list/internal/order/app"
	"github.com/nivgold/shopping-list/internal/order/domain"
)

const collectionName = "orders"

type itemDoc struct {
	Name     string `bson:"name"`
	Category string `bson:"category"`
	Quantity int    `bson:"quantity"`
}

type orderDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Items      []itemDoc          `bson:"items"`
	TotalItems int                `bson:"totalItems"`
	CreatedAt  time.Time          `bson:"createdAt"`
}

type OrderRepo struct {
	coll *mongo.Collection
}

func NewOrderRepo(db *mongo.Database) *OrderRepo {
	return &OrderRepo{coll: db.Collection(collectionName)}
}

func (r *OrderRepo) Insert(ctx context.Context, order domain.Order) (domain.Order, error) {
	doc := orderDoc{
		ID:         primitive.NewObjectID(),
		Items:      toItemDocs(order.Items),
		TotalItems: order.TotalItems,
		CreatedAt:  time.Now().UTC(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return domain.Order{}, err
	}
	return toDomain(doc), nil
}

// List fetches one page sorted newest-first. The page query and the
// total count are independent, so they run concurrently.
func (r *OrderRepo) List(ctx context.Context, skip, limit int) ([]domain.Order, int64, error) {
	var (
		orders []domain.Order
		total  int64
	)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		opts := options.Find().
			SetSort(bson.D{{Key: "createdAt", Value: -1}}).
			SetSkip(int64(skip)).
			SetLimit(int64(limit))

		cur, err := r.coll.Find(ctx, bson.D{}, opts)
		if err != nil {
			return err
		}
		defer cur.Close(ctx)

		var docs []orderDoc
		if err := cur.All(ctx, &docs); err != nil {
			return err
		}

		orders = make([]domain.Order, 0, len(docs))
		for _, d := range docs {
			orders = append(orders, toDomain(d))
		}
		return nil
	})

	g.Go(func() error {
		n, err := r.coll.CountDocuments(ctx, bson.D{})
		if err != nil {
			return err
		}
		total = n
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (r *OrderRepo) Get(ctx context.Context, id string) (domain.Order, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.Order{}, app.ErrInvalidID
	}

	var doc orderDoc
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.Order{}, app.ErrNotFound
	}
	if err != nil {
		return domain.Order{}, err
	}
	return toDomain(doc), nil
}

func (r *OrderRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return app.ErrInvalidID
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return app.ErrNotFound
	}
	return nil
}

func toItemDocs(items []domain.Item) []itemDoc {
	out := make([]itemDoc, 0, len(items))
	for _, it := range items {
		out = append(out, itemDoc(it))
	}
	return out
}

func toDomain(d orderDoc) domain.Order {
	items := make([]domain.Item, 0, len(d.Items))
	for _, it := range d.Items {
		items = append(items, domain.Item(it))
	}
	return domain.Order{
		ID:         d.ID.Hex(),
		Items:      items,
		TotalItems: d.TotalItems,
		CreatedAt:  d.CreatedAt,
	}
}
