package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hostelhub/hostel-api/internal/core/domain"
)

const eventsCollection = "event_registrations"

type EventRepository struct {
	coll *mongo.Collection
}

func NewEventRepository(db *mongo.Database) *EventRepository {
	return &EventRepository{coll: db.Collection(eventsCollection)}
}

type mongoRegistration struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	FullName  string             `bson:"full_name"`
	Email     string             `bson:"email"`
	Phone     string             `bson:"phone"`
	Gender    string             `bson:"gender"`
	EventType string             `bson:"event_type"`
	Comment   string             `bson:"comment,omitempty"`
	CreatedAt int64              `bson:"created_at"`
}

func (r *EventRepository) Create(ctx context.Context, reg *domain.EventRegistration) (*domain.EventRegistration, error) {
	doc := mongoRegistration{
		FullName:  reg.FullName,
		Email:     reg.Email,
		Phone:     reg.Phone,
		Gender:    reg.Gender,
		EventType: reg.EventType,
		Comment:   reg.Comment,
		CreatedAt: reg.CreatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert registration: %w", err)
	}

	created := *reg
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

// ListAll returns all registrations, newest first.
func (r *EventRepository) ListAll(ctx context.Context) ([]*domain.EventRegistration, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	defer cur.Close(ctx)

	var regs []*domain.EventRegistration
	for cur.Next(ctx) {
		var mr mongoRegistration
		if err := cur.Decode(&mr); err != nil {
			return nil, fmt.Errorf("decode registration: %w", err)
		}
		regs = append(regs, &domain.EventRegistration{
			ID:        mr.ID.Hex(),
			FullName:  mr.FullName,
			Email:     mr.Email,
			Phone:     mr.Phone,
			Gender:    mr.Gender,
			EventType: mr.EventType,
			Comment:   mr.Comment,
			CreatedAt: unixToTime(mr.CreatedAt),
		})
	}
	return regs, cur.Err()
}
