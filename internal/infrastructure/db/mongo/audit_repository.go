package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/petessence/clinic-api/internal/core/ports"
)

const collectionAppointmentEvents = "appointment_events"

// AuditRepository appends appointment mutations to the audit collection.
type AuditRepository struct {
	col *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{col: db.Collection(collectionAppointmentEvents)}
}

func (r *AuditRepository) Record(ctx context.Context, event ports.AppointmentEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bson.M{
		"appointment_id":  event.AppointmentID,
		"veterinarian_id": event.VeterinarianID,
		"date":            event.Date,
		"kind":            event.Kind,
		"recorded_at":     time.Now().UTC(),
	}
	if event.ActorID != "" {
		doc["actor_id"] = event.ActorID
	}

	_, err := r.col.InsertOne(ctx, doc)
	return err
}
