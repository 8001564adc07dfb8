package mongo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/petessence/clinic-api/internal/core/domain"
)

const (
	collectionVaccines     = "vaccines"
	collectionVaccinations = "vaccination_records"
	collectionDewormings   = "deworming_records"
)

// VaccineRepository persists the vaccine catalog and per-pet dose records.
type VaccineRepository struct {
	vaccines     *mongo.Collection
	vaccinations *mongo.Collection
	dewormings   *mongo.Collection
}

func NewVaccineRepository(db *mongo.Database) *VaccineRepository {
	return &VaccineRepository{
		vaccines:     db.Collection(collectionVaccines),
		vaccinations: db.Collection(collectionVaccinations),
		dewormings:   db.Collection(collectionDewormings),
	}
}

func (r *VaccineRepository) InsertVaccine(ctx context.Context, v *domain.Vaccine) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	_, err := r.vaccines.InsertOne(ctx, v)
	return err
}

func (r *VaccineRepository) UpdateVaccine(ctx context.Context, v *domain.Vaccine) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.vaccines.ReplaceOne(ctx, bson.M{"_id": v.ID}, v)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrVaccineNotFound
	}
	return nil
}

func (r *VaccineRepository) FindVaccineByID(ctx context.Context, id string) (*domain.Vaccine, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var v domain.Vaccine
	if err := r.vaccines.FindOne(ctx, bson.M{"_id": id}).Decode(&v); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrVaccineNotFound
		}
		return nil, err
	}
	return &v, nil
}

func (r *VaccineRepository) FindVaccines(ctx context.Context, activeOnly bool) ([]domain.Vaccine, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if activeOnly {
		filter["active"] = true
	}

	cur, err := r.vaccines.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []domain.Vaccine
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *VaccineRepository) SetVaccineActive(ctx context.Context, id string, active bool) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.vaccines.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"active": active}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrVaccineNotFound
	}
	return nil
}

func (r *VaccineRepository) InsertVaccination(ctx context.Context, rec *domain.VaccinationRecord) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	_, err := r.vaccinations.InsertOne(ctx, rec)
	return err
}

func (r *VaccineRepository) FindVaccinationsByPet(ctx context.Context, petID string) ([]domain.VaccinationRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.vaccinations.Find(ctx, bson.M{"pet_id": petID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []domain.VaccinationRecord
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *VaccineRepository) InsertDeworming(ctx context.Context, rec *domain.DewormingRecord) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	_, err := r.dewormings.InsertOne(ctx, rec)
	return err
}

func (r *VaccineRepository) FindDewormingsByPet(ctx context.Context, petID string) ([]domain.DewormingRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.dewormings.Find(ctx, bson.M{"pet_id": petID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []domain.DewormingRecord
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *VaccineRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	byPet := []mongo.IndexModel{{Keys: bson.D{{Key: "pet_id", Value: 1}}}}
	if _, err := r.vaccinations.Indexes().CreateMany(ctx, byPet); err != nil {
		return err
	}
	_, err := r.dewormings.Indexes().CreateMany(ctx, byPet)
	return err
}
