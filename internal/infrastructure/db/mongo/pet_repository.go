package mongo

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/petessence/clinic-api/internal/core/domain"
	"github.com/petessence/clinic-api/internal/core/ports"
)

const collectionPets = "pets"

// PetRepository persists the pet registry.
type PetRepository struct {
	col *mongo.Collection
}

func NewPetRepository(db *mongo.Database) *PetRepository {
	return &PetRepository{col: db.Collection(collectionPets)}
}

func (r *PetRepository) Insert(ctx context.Context, p *domain.Pet) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	_, err := r.col.InsertOne(ctx, p)
	return err
}

func (r *PetRepository) Update(ctx context.Context, p *domain.Pet) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": p.ID}, p)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrPetNotFound
	}
	return nil
}

func (r *PetRepository) FindByID(ctx context.Context, id string) (*domain.Pet, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var p domain.Pet
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPetNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Find builds the list-screen query from the optional filters.
func (r *PetRepository) Find(ctx context.Context, f ports.PetFilter) ([]domain.Pet, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, petQuery(f))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []domain.Pet
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// petQuery turns the optional list filters into a bson query. The name
// filter is a case-insensitive substring match, so the user input is
// quoted before it becomes a regex pattern.
func petQuery(f ports.PetFilter) bson.M {
	filter := bson.M{}
	if f.Name != "" {
		filter["name"] = bson.M{"$regex": primitive.Regex{Pattern: regexp.QuoteMeta(f.Name), Options: "i"}}
	}
	if f.SpeciesID != "" {
		filter["species_id"] = f.SpeciesID
	}
	if f.BreedID != "" {
		filter["breed_id"] = f.BreedID
	}
	if f.OwnerID != "" {
		filter["owner_ids"] = f.OwnerID
	}
	if f.Active != nil {
		filter["active"] = *f.Active
	}
	return filter
}

func (r *PetRepository) SetActive(ctx context.Context, id string, active bool) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"active": active, "updated_at": time.Now().UTC()},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrPetNotFound
	}
	return nil
}

func (r *PetRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "owner_ids", Value: 1}}},
		{Keys: bson.D{{Key: "species_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
