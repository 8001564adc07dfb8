package mongo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/petessence/clinic-api/internal/core/domain"
)

// CatalogRepository persists the reference-data collections. Species,
// breeds and brands share the same document shape, so one repository
// serves all three, keyed by kind.
type CatalogRepository struct {
	db *mongo.Database
}

func NewCatalogRepository(db *mongo.Database) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) collection(kind domain.CatalogKind) (*mongo.Collection, error) {
	switch kind {
	case domain.CatalogSpecies:
		return r.db.Collection("species"), nil
	case domain.CatalogBreed:
		return r.db.Collection("breeds"), nil
	case domain.CatalogBrand:
		return r.db.Collection("brands"), nil
	}
	return nil, fmt.Errorf("unknown catalog kind %q", kind)
}

func (r *CatalogRepository) Insert(ctx context.Context, kind domain.CatalogKind, item *domain.CatalogItem) error {
	col, err := r.collection(kind)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	_, err = col.InsertOne(ctx, item)
	return err
}

func (r *CatalogRepository) FindByID(ctx context.Context, kind domain.CatalogKind, id string) (*domain.CatalogItem, error) {
	col, err := r.collection(kind)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var item domain.CatalogItem
	if err := col.FindOne(ctx, bson.M{"_id": id}).Decode(&item); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCatalogItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *CatalogRepository) Find(ctx context.Context, kind domain.CatalogKind, activeOnly bool) ([]domain.CatalogItem, error) {
	col, err := r.collection(kind)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if activeOnly {
		filter["active"] = true
	}

	cur, err := col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []domain.CatalogItem
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CatalogRepository) SetActive(ctx context.Context, kind domain.CatalogKind, id string, active bool) error {
	col, err := r.collection(kind)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"active": active}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrCatalogItemNotFound
	}
	return nil
}
