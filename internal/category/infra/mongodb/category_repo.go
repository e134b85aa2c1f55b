package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nivgold/shopping-list/internal/category/app"
	"github.com/nivgold/shopping-list/internal/category/domain"
)

const collectionName = "categories"

type categoryDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	CreatedAt time.Time          `bson:"createdAt"`
}

type CategoryRepo struct {
	coll *mongo.Collection
}

func NewCategoryRepo(db *mongo.Database) *CategoryRepo {
	return &CategoryRepo{coll: db.Collection(collectionName)}
}

// EnsureIndexes creates the unique index on name. Duplicate
// registrations race through the service pre-check and are rejected
// here by the store.
func (r *CategoryRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *CategoryRepo) List(ctx context.Context) ([]domain.Category, error) {
	cur, err := r.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []categoryDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	out := make([]domain.Category, 0, len(docs))
	for _, d := range docs {
		out = append(out, toDomain(d))
	}
	return out, nil
}

func (r *CategoryRepo) Insert(ctx context.Context, name string) (domain.Category, error) {
	doc := categoryDoc{
		ID:        primitive.NewObjectID(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.Category{}, app.ErrDuplicateName
		}
		return domain.Category{}, err
	}

	return toDomain(doc), nil
}

func (r *CategoryRepo) FindByNames(ctx context.Context, names []string) ([]domain.Category, error) {
	if len(names) == 0 {
		return nil, nil
	}

	cur, err := r.coll.Find(ctx, bson.M{"name": bson.M{"$in": names}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []categoryDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	out := make([]domain.Category, 0, len(docs))
	for _, d := range docs {
		out = append(out, toDomain(d))
	}
	return out, nil
}

func toDomain(d categoryDoc) domain.Category {
	return domain.Category{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		CreatedAt: d.CreatedAt,
	}
}
