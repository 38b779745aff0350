package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hostelhub/hostel-api/internal/core/domain"
)

const (
	complaintsCollection = "complaints"
	contactsCollection   = "contacts"
)

type ComplaintRepository struct {
	coll *mongo.Collection
}

func NewComplaintRepository(db *mongo.Database) *ComplaintRepository {
	return &ComplaintRepository{coll: db.Collection(complaintsCollection)}
}

type mongoComplaint struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Name          string             `bson:"name"`
	Email         string             `bson:"email"`
	ComplaintType string             `bson:"complaint_type"`
	Description   string             `bson:"description"`
	CreatedAt     int64              `bson:"created_at"`
}

func (r *ComplaintRepository) Create(ctx context.Context, c *domain.Complaint) (*domain.Complaint, error) {
	doc := mongoComplaint{
		Name:          c.Name,
		Email:         c.Email,
		ComplaintType: c.ComplaintType,
		Description:   c.Description,
		CreatedAt:     c.CreatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert complaint: %w", err)
	}

	created := *c
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *ComplaintRepository) ListAll(ctx context.Context) ([]*domain.Complaint, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list complaints: %w", err)
	}
	defer cur.Close(ctx)

	var complaints []*domain.Complaint
	for cur.Next(ctx) {
		var mc mongoComplaint
		if err := cur.Decode(&mc); err != nil {
			return nil, fmt.Errorf("decode complaint: %w", err)
		}
		complaints = append(complaints, &domain.Complaint{
			ID:            mc.ID.Hex(),
			Name:          mc.Name,
			Email:         mc.Email,
			ComplaintType: mc.ComplaintType,
			Description:   mc.Description,
			CreatedAt:     unixToTime(mc.CreatedAt),
		})
	}
	return complaints, cur.Err()
}

type ContactRepository struct {
	coll *mongo.Collection
}

func NewContactRepository(db *mongo.Database) *ContactRepository {
	return &ContactRepository{coll: db.Collection(contactsCollection)}
}

type mongoContact struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Message   string             `bson:"message"`
	CreatedAt int64              `bson:"created_at"`
}

func (r *ContactRepository) Create(ctx context.Context, m *domain.ContactMessage) (*domain.ContactMessage, error) {
	doc := mongoContact{
		Name:      m.Name,
		Email:     m.Email,
		Message:   m.Message,
		CreatedAt: m.CreatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert contact message: %w", err)
	}

	created := *m
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *ContactRepository) ListAll(ctx context.Context) ([]*domain.ContactMessage, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	defer cur.Close(ctx)

	var msgs []*domain.ContactMessage
	for cur.Next(ctx) {
		var mc mongoContact
		if err := cur.Decode(&mc); err != nil {
			return nil, fmt.Errorf("decode contact message: %w", err)
		}
		msgs = append(msgs, &domain.ContactMessage{
			ID:        mc.ID.Hex(),
			Name:      mc.Name,
			Email:     mc.Email,
			Message:   mc.Message,
			CreatedAt: unixToTime(mc.CreatedAt),
		})
	}
	return msgs, cur.Err()
}
